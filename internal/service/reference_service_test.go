package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/store/memory"
)

func TestGenreService_ListReturnsSeedDataInOrder(t *testing.T) {
	mem := memory.New()
	svc := NewGenreService(mem.Genres(), mem.Films())

	genres, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 6)
	assert.Equal(t, "Comedy", genres[0].Name)
	assert.Equal(t, "Action", genres[5].Name)
	for i, genre := range genres {
		assert.Equal(t, uint(i+1), genre.ID)
	}
}

func TestGenreService_GetByID(t *testing.T) {
	mem := memory.New()
	svc := NewGenreService(mem.Genres(), mem.Films())

	genre, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Drama", genre.Name)

	_, err = svc.GetByID(context.Background(), 99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGenreService_AddAndRemoveFromFilm(t *testing.T) {
	mem := memory.New()
	films := NewFilmService(mem.Films(), mem.Users(), mem.Genres(), mem.Mpa())
	svc := NewGenreService(mem.Genres(), mem.Films())
	ctx := context.Background()

	film := mustCreateFilm(t, films, "Alien")

	require.NoError(t, svc.AddToFilm(ctx, film.ID, 4))
	require.NoError(t, svc.AddToFilm(ctx, film.ID, 4)) // no-op

	stored, err := films.GetByID(ctx, film.ID)
	require.NoError(t, err)
	require.Len(t, stored.Genres, 1)
	assert.Equal(t, "Thriller", stored.Genres[0].Name)

	require.NoError(t, svc.RemoveFromFilm(ctx, film.ID, 4))
	err = svc.RemoveFromFilm(ctx, film.ID, 4)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGenreService_AddToFilmUnknownIDs(t *testing.T) {
	mem := memory.New()
	films := NewFilmService(mem.Films(), mem.Users(), mem.Genres(), mem.Mpa())
	svc := NewGenreService(mem.Genres(), mem.Films())
	ctx := context.Background()

	err := svc.AddToFilm(ctx, 99, 1)
	assert.True(t, apperr.IsNotFound(err))

	film := mustCreateFilm(t, films, "Alien")
	err = svc.AddToFilm(ctx, film.ID, 99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestMpaService_ListReturnsSeedDataInOrder(t *testing.T) {
	mem := memory.New()
	svc := NewMpaService(mem.Mpa())

	ratings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ratings, 5)
	assert.Equal(t, "G", ratings[0].Name)
	assert.Equal(t, "NC-17", ratings[4].Name)
}

func TestMpaService_GetByID(t *testing.T) {
	mem := memory.New()
	svc := NewMpaService(mem.Mpa())

	rating, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "PG-13", rating.Name)

	_, err = svc.GetByID(context.Background(), 99)
	assert.True(t, apperr.IsNotFound(err))
}
