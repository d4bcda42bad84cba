package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmboard/backend/internal/models"
)

type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newGenreResponse(genre models.Genre) GenreResponse {
	return GenreResponse{ID: genre.ID, Name: genre.Name}
}

// GetGenres godoc
// @Summary      List all genres
// @Tags         genres
// @Produce      json
// @Success      200  {array}   GenreResponse
// @Router       /genres [get]
func (h *Handler) GetGenres(c *gin.Context) {
	genres, err := h.genres.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]GenreResponse, 0, len(genres))
	for _, genre := range genres {
		responses = append(responses, newGenreResponse(genre))
	}
	c.JSON(http.StatusOK, responses)
}

// GetGenreByID godoc
// @Summary      Get a genre by id
// @Tags         genres
// @Produce      json
// @Param        id path int true "Genre ID"
// @Success      200  {object}  GenreResponse
// @Failure      404  {object}  ErrorResponse "Genre not found"
// @Router       /genres/{id} [get]
func (h *Handler) GetGenreByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	genre, err := h.genres.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGenreResponse(*genre))
}

// AddGenreToFilm godoc
// @Summary      Attach a genre to a film
// @Description  Attaching an already attached genre is a no-op.
// @Tags         genres
// @Produce      json
// @Param        id     path int true "Genre ID"
// @Param        filmId path int true "Film ID"
// @Success      200  {object}  map[string]string "{"message": "Genre added"}"
// @Failure      404  {object}  ErrorResponse "Film or genre not found"
// @Router       /genres/{id}/film/{filmId} [put]
func (h *Handler) AddGenreToFilm(c *gin.Context) {
	genreID, ok := parseID(c, "id")
	if !ok {
		return
	}
	filmID, ok := parseID(c, "filmId")
	if !ok {
		return
	}
	if err := h.genres.AddToFilm(c.Request.Context(), filmID, genreID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Genre added"})
}

// DeleteGenreFromFilm godoc
// @Summary      Detach a genre from a film
// @Tags         genres
// @Produce      json
// @Param        id     path int true "Genre ID"
// @Param        filmId path int true "Film ID"
// @Success      200  {object}  map[string]string "{"message": "Genre removed"}"
// @Failure      404  {object}  ErrorResponse "Film, genre or association not found"
// @Router       /genres/{id}/film/{filmId} [delete]
func (h *Handler) DeleteGenreFromFilm(c *gin.Context) {
	genreID, ok := parseID(c, "id")
	if !ok {
		return
	}
	filmID, ok := parseID(c, "filmId")
	if !ok {
		return
	}
	if err := h.genres.RemoveFromFilm(c.Request.Context(), filmID, genreID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Genre removed"})
}
