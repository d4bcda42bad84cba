// Package validation holds the pure entity rules checked before any
// mutating store call. Rules run in a fixed order and the first failing
// rule produces the reported message.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
)

const maxDescriptionLength = 200

// earliestReleaseDate is the date of the first public film screening;
// no film can predate it.
var earliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// ValidateFilm checks a candidate film before creation or update.
func ValidateFilm(film *models.Film) error {
	if strings.TrimSpace(film.Name) == "" {
		return apperr.Validationf("invalid name")
	}
	if utf8.RuneCountInString(film.Description) > maxDescriptionLength {
		return apperr.Validationf("description too long")
	}
	if film.ReleaseDate.Before(earliestReleaseDate) {
		return apperr.Validationf("release date too early")
	}
	if film.Duration < 0 {
		return apperr.Validationf("invalid duration")
	}
	return nil
}

// ValidateUser checks a candidate user before creation or update. The
// birthday rule is evaluated against the clock at call time.
func ValidateUser(user *models.User) error {
	if strings.TrimSpace(user.Login) == "" {
		return apperr.Validationf("invalid login")
	}
	if !strings.Contains(user.Email, "@") {
		return apperr.Validationf("invalid email")
	}
	if user.Birthday.After(time.Now()) {
		return apperr.Validationf("birthday in future")
	}
	return nil
}
