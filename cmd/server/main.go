package main

import (
	"fmt"
	"log"
	"net/http"

	"filmboard/backend/internal/config"
	"filmboard/backend/internal/database"
	"filmboard/backend/internal/handler"
	"filmboard/backend/internal/service"
	"filmboard/backend/internal/store"
	"filmboard/backend/internal/store/memory"
	"filmboard/backend/internal/store/postgres"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "filmboard/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Filmboard API
// @version         1.0
// @description     Film catalogue with likes, friendships and genre/MPA reference data.
// @host            localhost:8080
// @BasePath        /
func main() {
	var (
		filmStore  store.FilmStore
		userStore  store.UserStore
		genreStore store.GenreStore
		mpaStore   store.MpaStore
	)

	switch config.AppConfig.Storage {
	case "memory":
		log.Println("Using in-memory storage")
		mem := memory.New()
		filmStore = mem.Films()
		userStore = mem.Users()
		genreStore = mem.Genres()
		mpaStore = mem.Mpa()
	default:
		db := database.Connect(config.AppConfig.DatabaseURL)
		filmStore = postgres.NewFilmStore(db)
		userStore = postgres.NewUserStore(db)
		genreStore = postgres.NewGenreStore(db)
		mpaStore = postgres.NewMpaStore(db)
	}

	h := handler.New(
		service.NewFilmService(filmStore, userStore, genreStore, mpaStore),
		service.NewUserService(userStore),
		service.NewGenreService(genreStore, filmStore),
		service.NewMpaService(mpaStore),
	)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Film routes
	films := router.Group("/films")
	{
		films.GET("", h.GetFilms)
		films.POST("", h.CreateFilm)
		films.PUT("", h.UpdateFilm)
		films.GET("/popular", h.GetPopularFilms) // Must be before /:id
		films.GET("/:id", h.GetFilmByID)
		films.DELETE("/:id", h.DeleteFilm)
		films.PUT("/:id/like/:userId", h.AddLike)
		films.DELETE("/:id/like/:userId", h.DeleteLike)
	}

	// User and friendship routes
	users := router.Group("/users")
	{
		users.GET("", h.GetUsers)
		users.POST("", h.CreateUser)
		users.PUT("", h.UpdateUser)
		users.GET("/:id", h.GetUserByID)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/:id/friends", h.GetFriends)
		users.GET("/:id/friends/common/:otherId", h.GetCommonFriends) // Must be before /:friendId
		users.PUT("/:id/friends/:friendId", h.AddFriend)
		users.DELETE("/:id/friends/:friendId", h.DeleteFriend)
	}

	// Genre reference data and film associations
	genres := router.Group("/genres")
	{
		genres.GET("", h.GetGenres)
		genres.GET("/:id", h.GetGenreByID)
		genres.PUT("/:id/film/:filmId", h.AddGenreToFilm)
		genres.DELETE("/:id/film/:filmId", h.DeleteGenreFromFilm)
	}

	// MPA rating reference data
	mpa := router.Group("/mpa")
	{
		mpa.GET("", h.GetMpaRatings)
		mpa.GET("/:id", h.GetMpaByID)
	}

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost" + addr + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
