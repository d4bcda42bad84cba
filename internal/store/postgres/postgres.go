// Package postgres implements the stores over a relational database through
// GORM. Multi-statement mutations (bidirectional friend edges, genre
// replacement) run inside transactions so no intermediate state survives a
// failure. GORM's translated errors map onto the apperr classes: missing
// rows and foreign-key violations both become the not-found class, keeping
// the client-visible contract identical to the in-memory variant.
package postgres

import (
	"errors"

	"gorm.io/gorm"

	"filmboard/backend/internal/apperr"
)

// translate converts GORM errors to the application error classes.
// Requires the connection to be opened with TranslateError enabled.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFoundf("record")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.NotFoundf("referenced entity")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Validationf("already exists")
	default:
		return err
	}
}
