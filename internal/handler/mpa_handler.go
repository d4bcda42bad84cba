package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmboard/backend/internal/models"
)

type MpaResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newMpaResponse(rating models.MpaRating) MpaResponse {
	return MpaResponse{ID: rating.ID, Name: rating.Name}
}

// GetMpaRatings godoc
// @Summary      List all MPA ratings
// @Tags         mpa
// @Produce      json
// @Success      200  {array}   MpaResponse
// @Router       /mpa [get]
func (h *Handler) GetMpaRatings(c *gin.Context) {
	ratings, err := h.mpa.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]MpaResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, newMpaResponse(rating))
	}
	c.JSON(http.StatusOK, responses)
}

// GetMpaByID godoc
// @Summary      Get an MPA rating by id
// @Tags         mpa
// @Produce      json
// @Param        id path int true "MPA Rating ID"
// @Success      200  {object}  MpaResponse
// @Failure      404  {object}  ErrorResponse "Rating not found"
// @Router       /mpa/{id} [get]
func (h *Handler) GetMpaByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rating, err := h.mpa.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMpaResponse(*rating))
}
