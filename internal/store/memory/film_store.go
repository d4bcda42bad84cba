package memory

import (
	"context"
	"sort"
	"time"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
)

func (s *FilmStore) Create(ctx context.Context, film *models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	film.ID = s.nextFilmID
	s.nextFilmID++
	now := time.Now()
	film.CreatedAt = now
	film.UpdatedAt = now
	sortGenres(film.Genres)

	stored := *film
	stored.Genres = append([]models.Genre(nil), film.Genres...)
	s.films[film.ID] = &stored
	s.likes[film.ID] = make(map[uint]struct{})
	film.Likes = []models.FilmLike{}
	return nil
}

func (s *FilmStore) Update(ctx context.Context, film *models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.films[film.ID]
	if !ok {
		return apperr.NotFoundf("film %d", film.ID)
	}
	existing.Name = film.Name
	existing.Description = film.Description
	existing.ReleaseDate = film.ReleaseDate
	existing.Duration = film.Duration
	existing.MpaID = film.MpaID
	existing.Mpa = film.Mpa
	existing.Genres = append([]models.Genre(nil), film.Genres...)
	sortGenres(existing.Genres)
	existing.UpdatedAt = time.Now()

	*film = s.snapshotFilm(existing)
	return nil
}

func (s *FilmStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[id]; !ok {
		return apperr.NotFoundf("film %d", id)
	}
	delete(s.films, id)
	delete(s.likes, id)
	return nil
}

func (s *FilmStore) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	film, ok := s.films[id]
	if !ok {
		return nil, apperr.NotFoundf("film %d", id)
	}
	snapshot := s.snapshotFilm(film)
	return &snapshot, nil
}

func (s *FilmStore) List(ctx context.Context) ([]models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]models.Film, 0, len(s.films))
	for _, id := range sortedKeys(s.films) {
		films = append(films, s.snapshotFilm(s.films[id]))
	}
	return films, nil
}

func (s *FilmStore) AddLike(ctx context.Context, filmID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[filmID]; !ok {
		return apperr.NotFoundf("film %d", filmID)
	}
	if _, ok := s.users[userID]; !ok {
		return apperr.NotFoundf("user %d", userID)
	}
	s.likes[filmID][userID] = struct{}{}
	return nil
}

func (s *FilmStore) DeleteLike(ctx context.Context, filmID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[filmID]; !ok {
		return apperr.NotFoundf("film %d", filmID)
	}
	if _, ok := s.likes[filmID][userID]; !ok {
		return apperr.NotFoundf("like by user %d on film %d", userID, filmID)
	}
	delete(s.likes[filmID], userID)
	return nil
}

func (s *FilmStore) ListPopular(ctx context.Context, count int) ([]models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]models.Film, 0, len(s.films))
	for _, id := range sortedKeys(s.films) {
		films = append(films, s.snapshotFilm(s.films[id]))
	}
	// Stable sort on a list already in ascending-id order gives the
	// deterministic tie-break the popularity contract requires.
	sort.SliceStable(films, func(i, j int) bool {
		return len(films[i].Likes) > len(films[j].Likes)
	})
	if count >= 0 && count < len(films) {
		films = films[:count]
	}
	return films, nil
}

func (s *FilmStore) AddGenre(ctx context.Context, filmID, genreID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	film, ok := s.films[filmID]
	if !ok {
		return apperr.NotFoundf("film %d", filmID)
	}
	genre, ok := s.genres[genreID]
	if !ok {
		return apperr.NotFoundf("genre %d", genreID)
	}
	for _, g := range film.Genres {
		if g.ID == genreID {
			return nil
		}
	}
	film.Genres = append(film.Genres, genre)
	sortGenres(film.Genres)
	return nil
}

func (s *FilmStore) DeleteGenre(ctx context.Context, filmID, genreID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	film, ok := s.films[filmID]
	if !ok {
		return apperr.NotFoundf("film %d", filmID)
	}
	for i, g := range film.Genres {
		if g.ID == genreID {
			film.Genres = append(film.Genres[:i], film.Genres[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("genre %d on film %d", genreID, filmID)
}

// snapshotFilm copies a stored film with its genre list and materialized
// like edges, so callers never alias internal state. Callers must hold mu.
func (s *Store) snapshotFilm(film *models.Film) models.Film {
	snapshot := *film
	snapshot.Genres = append([]models.Genre(nil), film.Genres...)
	snapshot.Likes = make([]models.FilmLike, 0, len(s.likes[film.ID]))
	for _, userID := range sortedKeys(s.likes[film.ID]) {
		snapshot.Likes = append(snapshot.Likes, models.FilmLike{FilmID: film.ID, UserID: userID})
	}
	return snapshot
}

func sortGenres(genres []models.Genre) {
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
}
