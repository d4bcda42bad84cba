// Package handler exposes the services over HTTP with gin. Each handler
// binds and converts the payload, delegates to a service, and maps the
// error class to a status code: validation failures become 400, missing
// entities and edges become 404, everything else is a 500.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/service"
)

// Handler carries the services the routes delegate to.
type Handler struct {
	films  *service.FilmService
	users  *service.UserService
	genres *service.GenreService
	mpa    *service.MpaService
}

func New(films *service.FilmService, users *service.UserService, genres *service.GenreService, mpa *service.MpaService) *Handler {
	return &Handler{films: films, users: users, genres: genres, mpa: mpa}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

func respondError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// parseID reads a path parameter as an id. On failure it writes the 400
// response itself and returns false.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + param})
		return 0, false
	}
	return uint(id), true
}
