package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmboard/backend/internal/models"
)

// defaultPopularCount is substituted when the popular-films query asks for
// zero films; the services themselves apply no default.
const defaultPopularCount = 10

// region --- DTOs ---

type MpaRef struct {
	ID uint `json:"id" binding:"required"`
}

type GenreRef struct {
	ID uint `json:"id" binding:"required"`
}

type FilmInput struct {
	ID          uint        `json:"id"` // required on PUT, ignored on POST
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ReleaseDate models.Date `json:"release_date"`
	Duration    int         `json:"duration"`
	Mpa         MpaRef      `json:"mpa" binding:"required"`
	Genres      []GenreRef  `json:"genres" binding:"dive"`
}

type FilmResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ReleaseDate models.Date     `json:"release_date"`
	Duration    int             `json:"duration"`
	Mpa         MpaResponse     `json:"mpa"`
	Genres      []GenreResponse `json:"genres"`
	Likes       []uint          `json:"likes"`
}

func (in FilmInput) toModel() *models.Film {
	genres := make([]models.Genre, 0, len(in.Genres))
	for _, ref := range in.Genres {
		genres = append(genres, models.Genre{ID: ref.ID})
	}
	return &models.Film{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		ReleaseDate: in.ReleaseDate,
		Duration:    in.Duration,
		MpaID:       in.Mpa.ID,
		Genres:      genres,
	}
}

func newFilmResponse(film models.Film) FilmResponse {
	genres := make([]GenreResponse, 0, len(film.Genres))
	for _, genre := range film.Genres {
		genres = append(genres, newGenreResponse(genre))
	}
	return FilmResponse{
		ID:          film.ID,
		Name:        film.Name,
		Description: film.Description,
		ReleaseDate: film.ReleaseDate,
		Duration:    film.Duration,
		Mpa:         newMpaResponse(film.Mpa),
		Genres:      genres,
		Likes:       film.LikeUserIDs(),
	}
}

func newFilmResponses(films []models.Film) []FilmResponse {
	responses := make([]FilmResponse, 0, len(films))
	for _, film := range films {
		responses = append(responses, newFilmResponse(film))
	}
	return responses
}

// endregion

// GetFilms godoc
// @Summary      List all films
// @Description  Retrieves every film with its rating, genres and likes.
// @Tags         films
// @Produce      json
// @Success      200  {array}   FilmResponse
// @Router       /films [get]
func (h *Handler) GetFilms(c *gin.Context) {
	films, err := h.films.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFilmResponses(films))
}

// CreateFilm godoc
// @Summary      Create a film
// @Description  Validates and stores a new film; the id is assigned by the store.
// @Tags         films
// @Accept       json
// @Produce      json
// @Param        input body FilmInput true "Film Info"
// @Success      201  {object}  FilmResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Unknown rating or genre id"
// @Router       /films [post]
func (h *Handler) CreateFilm(c *gin.Context) {
	var input FilmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	film := input.toModel()
	film.ID = 0
	if err := h.films.Create(c.Request.Context(), film); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFilmResponse(*film))
}

// UpdateFilm godoc
// @Summary      Update a film
// @Description  Validates and replaces a film's fields and genre set.
// @Tags         films
// @Accept       json
// @Produce      json
// @Param        input body FilmInput true "Film Info with id"
// @Success      200  {object}  FilmResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Film, rating or genre not found"
// @Router       /films [put]
func (h *Handler) UpdateFilm(c *gin.Context) {
	var input FilmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	film := input.toModel()
	if err := h.films.Update(c.Request.Context(), film); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFilmResponse(*film))
}

// GetFilmByID godoc
// @Summary      Get a film by id
// @Tags         films
// @Produce      json
// @Param        id path int true "Film ID"
// @Success      200  {object}  FilmResponse
// @Failure      404  {object}  ErrorResponse "Film not found"
// @Router       /films/{id} [get]
func (h *Handler) GetFilmByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	film, err := h.films.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFilmResponse(*film))
}

// DeleteFilm godoc
// @Summary      Delete a film
// @Tags         films
// @Produce      json
// @Param        id path int true "Film ID"
// @Success      200  {object}  map[string]string "{"message": "Film deleted"}"
// @Failure      404  {object}  ErrorResponse "Film not found"
// @Router       /films/{id} [delete]
func (h *Handler) DeleteFilm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.films.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Film deleted"})
}

// AddLike godoc
// @Summary      Like a film
// @Description  Records a like; liking the same film twice is a no-op.
// @Tags         films
// @Produce      json
// @Param        id     path int true "Film ID"
// @Param        userId path int true "User ID"
// @Success      200  {object}  map[string]string "{"message": "Like added"}"
// @Failure      404  {object}  ErrorResponse "Film or user not found"
// @Router       /films/{id}/like/{userId} [put]
func (h *Handler) AddLike(c *gin.Context) {
	filmID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	if err := h.films.AddLike(c.Request.Context(), filmID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Like added"})
}

// DeleteLike godoc
// @Summary      Remove a like from a film
// @Tags         films
// @Produce      json
// @Param        id     path int true "Film ID"
// @Param        userId path int true "User ID"
// @Success      200  {object}  map[string]string "{"message": "Like removed"}"
// @Failure      404  {object}  ErrorResponse "Film, user or like not found"
// @Router       /films/{id}/like/{userId} [delete]
func (h *Handler) DeleteLike(c *gin.Context) {
	filmID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	if err := h.films.DeleteLike(c.Request.Context(), filmID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Like removed"})
}

// GetPopularFilms godoc
// @Summary      List the most liked films
// @Description  Returns up to count films ordered by like count; ties go to the lower film id.
// @Tags         films
// @Produce      json
// @Param        count query int false "How many films to return" default(10)
// @Success      200  {array}   FilmResponse
// @Failure      400  {object}  ErrorResponse "Negative count"
// @Router       /films/popular [get]
func (h *Handler) GetPopularFilms(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultPopularCount)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid count"})
		return
	}
	if count == 0 {
		count = defaultPopularCount
	}

	films, err := h.films.ListPopular(c.Request.Context(), count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFilmResponses(films))
}
