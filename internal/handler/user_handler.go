package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmboard/backend/internal/models"
)

// region --- DTOs ---

type UserInput struct {
	ID       uint        `json:"id"` // required on PUT, ignored on POST
	Email    string      `json:"email"`
	Login    string      `json:"login"`
	Name     string      `json:"name"` // empty name falls back to login
	Birthday models.Date `json:"birthday"`
}

type UserResponse struct {
	ID       uint        `json:"id"`
	Email    string      `json:"email"`
	Login    string      `json:"login"`
	Name     string      `json:"name"`
	Birthday models.Date `json:"birthday"`
}

func (in UserInput) toModel() *models.User {
	return &models.User{
		ID:       in.ID,
		Email:    in.Email,
		Login:    in.Login,
		Name:     in.Name,
		Birthday: in.Birthday,
	}
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Login:    user.Login,
		Name:     user.Name,
		Birthday: user.Birthday,
	}
}

func newUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, newUserResponse(user))
	}
	return responses
}

// endregion

// GetUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   UserResponse
// @Router       /users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponses(users))
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Validates and stores a new user. An empty name defaults to the login.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body UserInput true "User Info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user := input.toModel()
	user.ID = 0
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(*user))
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Validates and replaces a user's fields, re-applying the name default.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body UserInput true "User Info with id"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user := input.toModel()
	if err := h.users.Update(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// GetUserByID godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users/{id} [get]
func (h *Handler) GetUserByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Removes the user and every friendship and like edge referencing them.
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]string "{"message": "User deleted"}"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// AddFriend godoc
// @Summary      Add a friend
// @Description  Establishes the symmetric friendship between the two users.
// @Tags         friends
// @Produce      json
// @Param        id       path int true "User ID"
// @Param        friendId path int true "Friend ID"
// @Success      200  {object}  map[string]string "{"message": "Friend added"}"
// @Failure      404  {object}  ErrorResponse "Either user not found"
// @Router       /users/{id}/friends/{friendId} [put]
func (h *Handler) AddFriend(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	friendID, ok := parseID(c, "friendId")
	if !ok {
		return
	}
	if err := h.users.AddFriend(c.Request.Context(), userID, friendID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend added"})
}

// DeleteFriend godoc
// @Summary      Remove a friend
// @Description  Removes the friendship in both directions.
// @Tags         friends
// @Produce      json
// @Param        id       path int true "User ID"
// @Param        friendId path int true "Friend ID"
// @Success      200  {object}  map[string]string "{"message": "Friend removed"}"
// @Failure      404  {object}  ErrorResponse "User or friendship not found"
// @Router       /users/{id}/friends/{friendId} [delete]
func (h *Handler) DeleteFriend(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	friendID, ok := parseID(c, "friendId")
	if !ok {
		return
	}
	if err := h.users.DeleteFriend(c.Request.Context(), userID, friendID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

// GetFriends godoc
// @Summary      List a user's friends
// @Tags         friends
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {array}   UserResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users/{id}/friends [get]
func (h *Handler) GetFriends(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	friends, err := h.users.ListFriends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponses(friends))
}

// GetCommonFriends godoc
// @Summary      List friends two users have in common
// @Tags         friends
// @Produce      json
// @Param        id      path int true "User ID"
// @Param        otherId path int true "Other User ID"
// @Success      200  {array}   UserResponse
// @Failure      404  {object}  ErrorResponse "Either user not found"
// @Router       /users/{id}/friends/common/{otherId} [get]
func (h *Handler) GetCommonFriends(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	otherID, ok := parseID(c, "otherId")
	if !ok {
		return
	}
	common, err := h.users.ListCommonFriends(c.Request.Context(), userID, otherID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponses(common))
}
