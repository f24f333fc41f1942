package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/shop-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// MapError maps a database error to a store error.
//
// sql.ErrNoRows becomes store.ErrNotFound. A *pgconn.PgError becomes a
// *store.DBError that keeps the vendor code and detail and is classified by
// code (23505 as store.ErrDuplicate and so on). Anything else is returned
// unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &store.DBError{
			Kind:   kindForCode(pgErr.Code),
			Code:   pgErr.Code,
			Detail: pgErr.Detail,
			Err:    err,
		}
	}

	return err
}

func kindForCode(code string) error {
	switch code {
	case uniqueViolationCode:
		return store.ErrDuplicate
	case foreignKeyViolationCode:
		return store.ErrForeignKey
	case checkViolationCode:
		return store.ErrCheckViolation
	case notNullViolationCode:
		return store.ErrNotNull
	}
	return nil
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// MapUniqueViolation maps a unique violation to a *store.DBError whose kind
// is specific, e.g. store.ErrEmailExists. Other errors go through MapError.
func MapUniqueViolation(err error, specific error) error {
	mapped := MapError(err)
	var dbErr *store.DBError
	if IsUniqueViolation(err) && errors.As(mapped, &dbErr) {
		dbErr.Kind = specific
	}
	return mapped
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns notFound.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
