package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper for PostgreSQL constraint error checking. Relies on GORM's
// TranslateError session option being enabled on the shared *gorm.DB.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
