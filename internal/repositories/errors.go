package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by every repository. Callers pick status codes with
// errors.Is instead of matching error strings.
var (
	// ErrNotFound means no row matched the requested id or filter.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique constraint (email, username) rejected the write.
	ErrConflict = errors.New("duplicate value for unique field")
)

// translate maps GORM errors onto the repository sentinels. Requires the
// gorm.Config{TranslateError: true} option so unique violations surface as
// gorm.ErrDuplicatedKey on both the postgres and sqlite drivers.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}
