// Package service composes validation and the stores into the operations
// the HTTP layer invokes. Validation always runs before any mutating store
// call, so a rejected payload never partially applies.
package service

import (
	"context"
	"sort"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
	"filmboard/backend/internal/store"
	"filmboard/backend/internal/validation"
)

// FilmService handles film CRUD and the like/popularity relation.
type FilmService struct {
	films  store.FilmStore
	users  store.UserStore
	genres store.GenreStore
	mpa    store.MpaStore
}

func NewFilmService(films store.FilmStore, users store.UserStore, genres store.GenreStore, mpa store.MpaStore) *FilmService {
	return &FilmService{films: films, users: users, genres: genres, mpa: mpa}
}

// Create validates the film, resolves its rating and genre references and
// stores it. The assigned id is written back to the argument.
func (s *FilmService) Create(ctx context.Context, film *models.Film) error {
	if err := validation.ValidateFilm(film); err != nil {
		return err
	}
	if err := s.resolveReferences(ctx, film); err != nil {
		return err
	}
	return s.films.Create(ctx, film)
}

// Update validates the film and replaces the stored fields and genre set.
func (s *FilmService) Update(ctx context.Context, film *models.Film) error {
	if err := validation.ValidateFilm(film); err != nil {
		return err
	}
	if err := s.resolveReferences(ctx, film); err != nil {
		return err
	}
	return s.films.Update(ctx, film)
}

func (s *FilmService) Delete(ctx context.Context, id uint) error {
	return s.films.Delete(ctx, id)
}

func (s *FilmService) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	return s.films.GetByID(ctx, id)
}

func (s *FilmService) List(ctx context.Context) ([]models.Film, error) {
	return s.films.List(ctx)
}

// AddLike records that the user liked the film. Repeating the call is a
// no-op: likes are a set.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID uint) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.films.AddLike(ctx, filmID, userID)
}

// DeleteLike removes an existing like; removing a like that was never
// recorded is a not-found error.
func (s *FilmService) DeleteLike(ctx context.Context, filmID, userID uint) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.films.DeleteLike(ctx, filmID, userID)
}

// ListPopular returns up to count films ranked by like count. The caller is
// responsible for substituting its own default when count is zero.
func (s *FilmService) ListPopular(ctx context.Context, count int) ([]models.Film, error) {
	if count < 0 {
		return nil, apperr.Validationf("count must not be negative")
	}
	return s.films.ListPopular(ctx, count)
}

// resolveReferences replaces the film's rating and genre references with the
// stored reference rows, deduplicated and in ascending-id order. An unknown
// id fails with not-found, the same class a foreign-key violation maps to.
func (s *FilmService) resolveReferences(ctx context.Context, film *models.Film) error {
	mpa, err := s.mpa.GetByID(ctx, film.MpaID)
	if err != nil {
		return err
	}
	film.Mpa = *mpa

	seen := make(map[uint]struct{}, len(film.Genres))
	resolved := make([]models.Genre, 0, len(film.Genres))
	for _, genre := range film.Genres {
		if _, ok := seen[genre.ID]; ok {
			continue
		}
		seen[genre.ID] = struct{}{}
		full, err := s.genres.GetByID(ctx, genre.ID)
		if err != nil {
			return err
		}
		resolved = append(resolved, *full)
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].ID < resolved[j].ID })
	film.Genres = resolved
	return nil
}
