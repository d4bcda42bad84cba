package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
	"filmboard/backend/internal/store/memory"
)

func newFilmService() (*FilmService, *UserService) {
	mem := memory.New()
	films := NewFilmService(mem.Films(), mem.Users(), mem.Genres(), mem.Mpa())
	users := NewUserService(mem.Users())
	return films, users
}

func newTestFilm(name string) *models.Film {
	return &models.Film{
		Name:        name,
		Description: "test film",
		ReleaseDate: models.NewDate(2000, time.January, 1),
		Duration:    120,
		MpaID:       1,
	}
}

func mustCreateFilm(t *testing.T, svc *FilmService, name string) *models.Film {
	t.Helper()
	film := newTestFilm(name)
	require.NoError(t, svc.Create(context.Background(), film))
	return film
}

func TestFilmService_CreateResolvesReferences(t *testing.T) {
	svc, _ := newFilmService()
	ctx := context.Background()

	film := newTestFilm("Alien")
	film.MpaID = 4
	film.Genres = []models.Genre{{ID: 4}, {ID: 1}, {ID: 4}}
	require.NoError(t, svc.Create(ctx, film))

	assert.Equal(t, uint(1), film.ID)
	assert.Equal(t, "R", film.Mpa.Name)

	stored, err := svc.GetByID(ctx, film.ID)
	require.NoError(t, err)
	require.Len(t, stored.Genres, 2)
	assert.Equal(t, "Comedy", stored.Genres[0].Name)
	assert.Equal(t, "Thriller", stored.Genres[1].Name)
}

func TestFilmService_CreateUnknownMpa(t *testing.T) {
	svc, _ := newFilmService()

	film := newTestFilm("Alien")
	film.MpaID = 99
	err := svc.Create(context.Background(), film)

	assert.True(t, apperr.IsNotFound(err))
}

func TestFilmService_CreateUnknownGenre(t *testing.T) {
	svc, _ := newFilmService()

	film := newTestFilm("Alien")
	film.Genres = []models.Genre{{ID: 99}}
	err := svc.Create(context.Background(), film)

	assert.True(t, apperr.IsNotFound(err))
}

func TestFilmService_CreateRejectsInvalidFilm(t *testing.T) {
	svc, _ := newFilmService()

	film := newTestFilm(" ")
	err := svc.Create(context.Background(), film)

	assert.True(t, apperr.IsValidation(err))

	films, listErr := svc.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, films)
}

func TestFilmService_UpdateReplacesGenreSet(t *testing.T) {
	svc, _ := newFilmService()
	ctx := context.Background()

	film := newTestFilm("Alien")
	film.Genres = []models.Genre{{ID: 1}, {ID: 2}}
	require.NoError(t, svc.Create(ctx, film))

	film.Genres = []models.Genre{{ID: 6}}
	require.NoError(t, svc.Update(ctx, film))

	stored, err := svc.GetByID(ctx, film.ID)
	require.NoError(t, err)
	require.Len(t, stored.Genres, 1)
	assert.Equal(t, "Action", stored.Genres[0].Name)
}

func TestFilmService_UpdateUnknownFilm(t *testing.T) {
	svc, _ := newFilmService()

	film := newTestFilm("Ghost")
	film.ID = 42
	err := svc.Update(context.Background(), film)

	assert.True(t, apperr.IsNotFound(err))
}

func TestFilmService_AddLikeIsIdempotent(t *testing.T) {
	films, users := newFilmService()
	ctx := context.Background()
	film := mustCreateFilm(t, films, "Alien")
	user := mustCreateUser(t, users, "ada")

	require.NoError(t, films.AddLike(ctx, film.ID, user.ID))
	require.NoError(t, films.AddLike(ctx, film.ID, user.ID))

	stored, err := films.GetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{user.ID}, stored.LikeUserIDs())
}

func TestFilmService_AddLikeUnknownUser(t *testing.T) {
	films, _ := newFilmService()
	film := mustCreateFilm(t, films, "Alien")

	err := films.AddLike(context.Background(), film.ID, 99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestFilmService_DeleteLikeMissing(t *testing.T) {
	films, users := newFilmService()
	ctx := context.Background()
	film := mustCreateFilm(t, films, "Alien")
	user := mustCreateUser(t, users, "ada")

	err := films.DeleteLike(ctx, film.ID, user.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestFilmService_DeleteLikeRemovesIt(t *testing.T) {
	films, users := newFilmService()
	ctx := context.Background()
	film := mustCreateFilm(t, films, "Alien")
	user := mustCreateUser(t, users, "ada")
	require.NoError(t, films.AddLike(ctx, film.ID, user.ID))

	require.NoError(t, films.DeleteLike(ctx, film.ID, user.ID))

	stored, err := films.GetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.LikeUserIDs())
}

func TestFilmService_ListPopularOrdersByLikes(t *testing.T) {
	films, users := newFilmService()
	ctx := context.Background()

	first := mustCreateFilm(t, films, "First")
	second := mustCreateFilm(t, films, "Second")
	third := mustCreateFilm(t, films, "Third")

	ada := mustCreateUser(t, users, "ada")
	bob := mustCreateUser(t, users, "bob")
	carol := mustCreateUser(t, users, "carol")

	// second: 3 likes, third: 2 likes, first: none.
	require.NoError(t, films.AddLike(ctx, second.ID, ada.ID))
	require.NoError(t, films.AddLike(ctx, second.ID, bob.ID))
	require.NoError(t, films.AddLike(ctx, second.ID, carol.ID))
	require.NoError(t, films.AddLike(ctx, third.ID, ada.ID))
	require.NoError(t, films.AddLike(ctx, third.ID, bob.ID))

	popular, err := films.ListPopular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, second.ID, popular[0].ID)
	assert.Equal(t, third.ID, popular[1].ID)
	assert.Equal(t, first.ID, popular[2].ID)
}

func TestFilmService_ListPopularTiesGoToLowerID(t *testing.T) {
	films, _ := newFilmService()
	ctx := context.Background()

	first := mustCreateFilm(t, films, "First")
	second := mustCreateFilm(t, films, "Second")

	popular, err := films.ListPopular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, first.ID, popular[0].ID)
	assert.Equal(t, second.ID, popular[1].ID)
}

func TestFilmService_ListPopularHonorsCount(t *testing.T) {
	films, _ := newFilmService()
	ctx := context.Background()

	mustCreateFilm(t, films, "First")
	mustCreateFilm(t, films, "Second")
	mustCreateFilm(t, films, "Third")

	popular, err := films.ListPopular(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, popular, 2)
}

func TestFilmService_ListPopularNegativeCount(t *testing.T) {
	films, _ := newFilmService()

	_, err := films.ListPopular(context.Background(), -1)
	assert.True(t, apperr.IsValidation(err))
}

func TestFilmService_DeleteFilm(t *testing.T) {
	films, _ := newFilmService()
	ctx := context.Background()
	film := mustCreateFilm(t, films, "Alien")

	require.NoError(t, films.Delete(ctx, film.ID))

	_, err := films.GetByID(ctx, film.ID)
	assert.True(t, apperr.IsNotFound(err))

	err = films.Delete(ctx, film.ID)
	assert.True(t, apperr.IsNotFound(err))
}
