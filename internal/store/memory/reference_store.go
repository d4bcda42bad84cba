package memory

import (
	"context"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
)

func (s *GenreStore) List(ctx context.Context) ([]models.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genres := make([]models.Genre, 0, len(s.genres))
	for _, id := range sortedKeys(s.genres) {
		genres = append(genres, s.genres[id])
	}
	return genres, nil
}

func (s *GenreStore) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genre, ok := s.genres[id]
	if !ok {
		return nil, apperr.NotFoundf("genre %d", id)
	}
	return &genre, nil
}

func (s *MpaStore) List(ctx context.Context) ([]models.MpaRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ratings := make([]models.MpaRating, 0, len(s.mpa))
	for _, id := range sortedKeys(s.mpa) {
		ratings = append(ratings, s.mpa[id])
	}
	return ratings, nil
}

func (s *MpaStore) GetByID(ctx context.Context, id uint) (*models.MpaRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rating, ok := s.mpa[id]
	if !ok {
		return nil, apperr.NotFoundf("mpa rating %d", id)
	}
	return &rating, nil
}
