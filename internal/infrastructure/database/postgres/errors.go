package postgres

import (
	"errors"
	"fmt"

	appErrors "logistics-backoffice/pkg/errors"

	"gorm.io/gorm"
)

// ErrReferenceNotFound is returned when a write points at a parent row that does not exist.
var ErrReferenceNotFound = appErrors.NewNotFound("Referenced record not found")

// translateWriteError maps gorm's translated constraint errors onto domain errors.
// duplicate may be nil for tables without a unique business key.
func translateWriteError(err error, op string, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferenceNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
