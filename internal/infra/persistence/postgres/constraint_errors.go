package postgres

import (
	domainerrors "storeradar/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation
}

// translateError classifies a write failure. Integrity violations become
// constraint errors, everything else a database execute error.
func translateError(err error, op, msg string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.New(domainerrors.KindConstraint, op, msg, err).WithCode("UNIQUE_VIOLATION")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.New(domainerrors.KindConstraint, op, msg, err).WithCode("FOREIGN_KEY_VIOLATION")
	case isNotNullConstraintViolation(err):
		return domainerrors.New(domainerrors.KindConstraint, op, msg, err).WithCode("NOT_NULL_VIOLATION")
	case isCheckConstraintViolation(err):
		return domainerrors.New(domainerrors.KindConstraint, op, msg, err).WithCode("CHECK_VIOLATION")
	default:
		return domainerrors.NewDatabaseExecuteError(err, msg)
	}
}
