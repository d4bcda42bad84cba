package service

import (
	"context"
	"strings"

	"filmboard/backend/internal/models"
	"filmboard/backend/internal/store"
	"filmboard/backend/internal/validation"
)

// UserService handles user CRUD and the friendship graph.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Create validates the user and stores it. An empty display name is
// replaced with the login at write time.
func (s *UserService) Create(ctx context.Context, user *models.User) error {
	if err := validation.ValidateUser(user); err != nil {
		return err
	}
	applyNameDefault(user)
	return s.users.Create(ctx, user)
}

// Update validates the user and replaces the stored fields, re-applying the
// name default.
func (s *UserService) Update(ctx context.Context, user *models.User) error {
	if err := validation.ValidateUser(user); err != nil {
		return err
	}
	applyNameDefault(user)
	return s.users.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// AddFriend establishes the symmetric friendship between the two users.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID uint) error {
	return s.users.AddFriend(ctx, userID, friendID)
}

// DeleteFriend removes the friendship in both directions.
func (s *UserService) DeleteFriend(ctx context.Context, userID, friendID uint) error {
	return s.users.DeleteFriend(ctx, userID, friendID)
}

// ListFriends returns the user's friends; unknown users are not-found and a
// known user with no friends gets an empty list.
func (s *UserService) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.users.ListFriends(ctx, userID)
}

// ListCommonFriends intersects the two users' friend lists. Each common
// friend appears exactly once, in the order of the first user's list.
func (s *UserService) ListCommonFriends(ctx context.Context, userID, otherID uint) ([]models.User, error) {
	friends, err := s.users.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	otherFriends, err := s.users.ListFriends(ctx, otherID)
	if err != nil {
		return nil, err
	}

	otherIDs := make(map[uint]struct{}, len(otherFriends))
	for _, friend := range otherFriends {
		otherIDs[friend.ID] = struct{}{}
	}

	common := []models.User{}
	seen := make(map[uint]struct{})
	for _, friend := range friends {
		if _, ok := otherIDs[friend.ID]; !ok {
			continue
		}
		if _, ok := seen[friend.ID]; ok {
			continue
		}
		seen[friend.ID] = struct{}{}
		common = append(common, friend)
	}
	return common, nil
}

func applyNameDefault(user *models.User) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
}
