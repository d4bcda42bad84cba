package memory

import (
	"context"
	"time"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
)

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Login == user.Login {
			return apperr.Validationf("login %q already taken", user.Login)
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.users[user.ID] = &stored
	s.friends[user.ID] = []uint{}
	return nil
}

func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return apperr.NotFoundf("user %d", user.ID)
	}
	existing.Email = user.Email
	existing.Login = user.Login
	existing.Name = user.Name
	existing.Birthday = user.Birthday
	existing.UpdatedAt = time.Now()

	*user = *existing
	return nil
}

// Delete removes the user together with every friendship and like edge
// referencing them, mirroring the relational variant's cascades.
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return apperr.NotFoundf("user %d", id)
	}
	delete(s.users, id)
	delete(s.friends, id)
	for userID, friendIDs := range s.friends {
		s.friends[userID] = removeID(friendIDs, id)
	}
	for _, userIDs := range s.likes {
		delete(userIDs, id)
	}
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFoundf("user %d", id)
	}
	snapshot := *user
	return &snapshot, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, id := range sortedKeys(s.users) {
		users = append(users, *s.users[id])
	}
	return users, nil
}

// AddFriend inserts both directions of the edge under one lock, so the
// relation is never observable half-formed.
func (s *UserStore) AddFriend(ctx context.Context, userID, friendID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return apperr.NotFoundf("user %d", userID)
	}
	if _, ok := s.users[friendID]; !ok {
		return apperr.NotFoundf("user %d", friendID)
	}
	s.friends[userID] = appendID(s.friends[userID], friendID)
	s.friends[friendID] = appendID(s.friends[friendID], userID)
	return nil
}

func (s *UserStore) DeleteFriend(ctx context.Context, userID, friendID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return apperr.NotFoundf("user %d", userID)
	}
	if !containsID(s.friends[userID], friendID) {
		return apperr.NotFoundf("user %d is not a friend of user %d", friendID, userID)
	}
	s.friends[userID] = removeID(s.friends[userID], friendID)
	s.friends[friendID] = removeID(s.friends[friendID], userID)
	return nil
}

func (s *UserStore) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, apperr.NotFoundf("user %d", userID)
	}
	friends := make([]models.User, 0, len(s.friends[userID]))
	for _, friendID := range s.friends[userID] {
		if friend, ok := s.users[friendID]; ok {
			friends = append(friends, *friend)
		}
	}
	return friends, nil
}

func appendID(ids []uint, id uint) []uint {
	if containsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

func removeID(ids []uint, id uint) []uint {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
