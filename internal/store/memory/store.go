// Package memory implements the stores over process-local maps. All state
// is guarded by a single mutex, so multi-step mutations such as the
// bidirectional friend write happen inside one critical section and are
// never observable half-applied.
package memory

import (
	"sort"
	"sync"

	"filmboard/backend/internal/models"
)

// Store holds the shared-map storage variant's state. The Films, Users,
// Genres and Mpa views over it satisfy the store interfaces.
type Store struct {
	mu sync.RWMutex

	films  map[uint]*models.Film
	users  map[uint]*models.User
	genres map[uint]models.Genre
	mpa    map[uint]models.MpaRating

	likes   map[uint]map[uint]struct{} // film id -> set of user ids
	friends map[uint][]uint            // user id -> friend ids, insertion order

	nextFilmID uint
	nextUserID uint
}

// New returns an empty store with the genre and MPA reference data seeded.
func New() *Store {
	s := &Store{
		films:      make(map[uint]*models.Film),
		users:      make(map[uint]*models.User),
		genres:     make(map[uint]models.Genre),
		mpa:        make(map[uint]models.MpaRating),
		likes:      make(map[uint]map[uint]struct{}),
		friends:    make(map[uint][]uint),
		nextFilmID: 1,
		nextUserID: 1,
	}
	for _, g := range models.SeedGenres() {
		s.genres[g.ID] = g
	}
	for _, m := range models.SeedMpaRatings() {
		s.mpa[m.ID] = m
	}
	return s
}

// FilmStore is the film view over a Store.
type FilmStore struct{ *Store }

// UserStore is the user view over a Store.
type UserStore struct{ *Store }

// GenreStore is the genre reference-data view over a Store.
type GenreStore struct{ *Store }

// MpaStore is the MPA reference-data view over a Store.
type MpaStore struct{ *Store }

// Films returns the store.FilmStore view.
func (s *Store) Films() *FilmStore { return &FilmStore{s} }

// Users returns the store.UserStore view.
func (s *Store) Users() *UserStore { return &UserStore{s} }

// Genres returns the store.GenreStore view.
func (s *Store) Genres() *GenreStore { return &GenreStore{s} }

// Mpa returns the store.MpaStore view.
func (s *Store) Mpa() *MpaStore { return &MpaStore{s} }

// sortedKeys returns map keys in ascending order. Ids are assigned
// monotonically, so this is also insertion order.
func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
