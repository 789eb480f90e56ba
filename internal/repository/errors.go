package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a write breaks a uniqueness or referential
// constraint, or when a delete is blocked by dependent records such as the
// shows booked at a venue.
var ErrConflict = errors.New("conflict")

// ErrMissingReference is returned when a show names an artist or venue that
// does not exist.
var ErrMissingReference = errors.New("referenced record does not exist")

// translateError maps driver errors onto the sentinels above. Anything else
// is returned unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"constraint failed", "duplicate key", "violates foreign key", "violates unique"} {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}
	return err
}
