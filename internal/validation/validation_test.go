package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
)

func validFilm() *models.Film {
	return &models.Film{
		Name:        "Interstellar",
		Description: "A team travels through a wormhole in space.",
		ReleaseDate: models.NewDate(2014, time.November, 7),
		Duration:    169,
	}
}

func TestValidateFilm(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Film)
		wantErr string
	}{
		{
			name:   "valid film passes",
			mutate: func(f *models.Film) {},
		},
		{
			name:    "blank name",
			mutate:  func(f *models.Film) { f.Name = "   " },
			wantErr: "invalid name",
		},
		{
			name:    "description over 200 runes",
			mutate:  func(f *models.Film) { f.Description = strings.Repeat("x", 201) },
			wantErr: "description too long",
		},
		{
			name:   "description of exactly 200 runes passes",
			mutate: func(f *models.Film) { f.Description = strings.Repeat("я", 200) },
		},
		{
			name:    "release before first screening",
			mutate:  func(f *models.Film) { f.ReleaseDate = models.NewDate(1895, time.December, 27) },
			wantErr: "release date too early",
		},
		{
			name:   "release on the first screening date passes",
			mutate: func(f *models.Film) { f.ReleaseDate = models.NewDate(1895, time.December, 28) },
		},
		{
			name:    "negative duration",
			mutate:  func(f *models.Film) { f.Duration = -1 },
			wantErr: "invalid duration",
		},
		{
			name:   "zero duration passes",
			mutate: func(f *models.Film) { f.Duration = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			film := validFilm()
			tt.mutate(film)
			err := ValidateFilm(film)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperr.IsValidation(err))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidateFilm_NameCheckedBeforeDescription(t *testing.T) {
	film := validFilm()
	film.Name = ""
	film.Description = strings.Repeat("x", 300)

	err := ValidateFilm(film)
	assert.EqualError(t, err, "invalid name")
}

func validUser() *models.User {
	return &models.User{
		Email:    "ada@example.com",
		Login:    "ada",
		Name:     "Ada",
		Birthday: models.NewDate(1990, time.March, 14),
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.User)
		wantErr string
	}{
		{
			name:   "valid user passes",
			mutate: func(u *models.User) {},
		},
		{
			name:   "empty display name passes",
			mutate: func(u *models.User) { u.Name = "" },
		},
		{
			name:    "blank login",
			mutate:  func(u *models.User) { u.Login = " " },
			wantErr: "invalid login",
		},
		{
			name:    "email without at sign",
			mutate:  func(u *models.User) { u.Email = "ada.example.com" },
			wantErr: "invalid email",
		},
		{
			name:    "birthday in the future",
			mutate:  func(u *models.User) { u.Birthday = models.Date{Time: time.Now().AddDate(1, 0, 0)} },
			wantErr: "birthday in future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(user)
			err := ValidateUser(user)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperr.IsValidation(err))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
