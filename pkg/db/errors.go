package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
)

// IsUniqueViolation reports whether the provided error references a unique
// constraint failure. When constraintName is provided, the helper looks for
// the constraint text in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" && !strings.Contains(msg, constraintName) {
		return false
	}
	// Postgres and sqlite phrase the failure differently.
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation reports whether err is a referential integrity failure.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		errors.Is(err, gorm.ErrForeignKeyViolated)
}

// Translate maps storage-level failures onto the domain error taxonomy.
// Unrecognized errors come back wrapped as dependency failures so callers
// never leak raw driver errors.
func Translate(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	case IsUniqueViolation(err, ""):
		return pkgerrors.Wrap(pkgerrors.CodeUniqueConstraint, err, message)
	case IsForeignKeyViolation(err):
		return pkgerrors.Wrap(pkgerrors.CodeReferentialIntegrity, err, message)
	default:
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, message)
	}
}
