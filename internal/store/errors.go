package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific variants wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness
	// constraint (an email, a product title or slug).
	ErrDuplicate = errors.New("entity already exists")

	// ErrForeignKey is returned when a referenced row is missing.
	ErrForeignKey = errors.New("referenced entity does not exist")

	// ErrCheckViolation is returned when a row violates a CHECK constraint.
	ErrCheckViolation = errors.New("check constraint violated")

	// ErrNotNull is returned when a required column was left empty.
	ErrNotNull = errors.New("required value missing")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrProductNotFound indicates that no product matched the id or search term.
	ErrProductNotFound = fmt.Errorf("%w: product", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// DBError carries the vendor error code and detail of a failed statement
// alongside the store error kind it was classified as. Both Kind and the
// original driver error are reachable through errors.Is/errors.As.
type DBError struct {
	Kind   error  // ErrDuplicate, ErrForeignKey, ... or nil when unclassified
	Code   string // vendor error code, e.g. "23505"
	Detail string // vendor detail message, may be empty
	Err    error  // original driver error
}

// Error implements the error interface for DBError.
func (e *DBError) Error() string {
	msg := "database error"
	if e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s (code %s)", msg, e.Code)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// Unwrap exposes both the kind and the driver error.
func (e *DBError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
