package service

import (
	"context"

	"filmboard/backend/internal/models"
	"filmboard/backend/internal/store"
)

// GenreService reads genre reference data and manages the film-genre
// association.
type GenreService struct {
	genres store.GenreStore
	films  store.FilmStore
}

func NewGenreService(genres store.GenreStore, films store.FilmStore) *GenreService {
	return &GenreService{genres: genres, films: films}
}

func (s *GenreService) List(ctx context.Context) ([]models.Genre, error) {
	return s.genres.List(ctx)
}

func (s *GenreService) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	return s.genres.GetByID(ctx, id)
}

// AddToFilm attaches the genre to the film; attaching it twice is a no-op.
func (s *GenreService) AddToFilm(ctx context.Context, filmID, genreID uint) error {
	return s.films.AddGenre(ctx, filmID, genreID)
}

// RemoveFromFilm detaches the genre; a missing association is not-found.
func (s *GenreService) RemoveFromFilm(ctx context.Context, filmID, genreID uint) error {
	return s.films.DeleteGenre(ctx, filmID, genreID)
}
