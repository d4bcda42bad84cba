// Package store defines the persistence contracts the services depend on.
// Two implementations exist: a process-local shared-map variant (memory)
// and a relational variant (postgres). Both report missing entities and
// edges through apperr.ErrNotFound so the services see one contract.
package store

import (
	"context"

	"filmboard/backend/internal/models"
)

// FilmStore persists films together with their like and genre edges.
type FilmStore interface {
	// Create inserts the film and assigns its id. Ids are monotonically
	// increasing and never reused within a store instance.
	Create(ctx context.Context, film *models.Film) error
	// Update replaces the film's fields and its genre set.
	Update(ctx context.Context, film *models.Film) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Film, error)
	List(ctx context.Context) ([]models.Film, error)

	// AddLike inserts a like edge; inserting an existing edge is a no-op.
	AddLike(ctx context.Context, filmID, userID uint) error
	// DeleteLike removes a like edge; a missing edge is a not-found error.
	DeleteLike(ctx context.Context, filmID, userID uint) error
	// ListPopular returns up to count films ordered by descending like
	// count, ties broken by ascending film id.
	ListPopular(ctx context.Context, count int) ([]models.Film, error)

	// AddGenre attaches a genre to a film; duplicates are ignored.
	AddGenre(ctx context.Context, filmID, genreID uint) error
	// DeleteGenre detaches a genre; a missing edge is a not-found error.
	DeleteGenre(ctx context.Context, filmID, genreID uint) error
}

// UserStore persists users and the symmetric friendship relation.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// Delete removes the user and every friendship and like edge that
	// references them.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)

	// AddFriend writes both directions of the friendship atomically.
	// Adding an existing friendship is a no-op.
	AddFriend(ctx context.Context, userID, friendID uint) error
	// DeleteFriend removes both directions; a missing edge is not-found.
	DeleteFriend(ctx context.Context, userID, friendID uint) error
	// ListFriends returns the friends of a known user in a stable order,
	// empty (never nil) when there are none. Unknown user is not-found.
	ListFriends(ctx context.Context, userID uint) ([]models.User, error)
}

// GenreStore reads genre reference data.
type GenreStore interface {
	List(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id uint) (*models.Genre, error)
}

// MpaStore reads MPA rating reference data.
type MpaStore interface {
	List(ctx context.Context) ([]models.MpaRating, error)
	GetByID(ctx context.Context, id uint) (*models.MpaRating, error)
}
