package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to HTTP
// status codes in one place.
var (
	// ErrDuplicateResource indicates a write collided with a uniqueness
	// constraint (email, product title or slug). It is client-correctable.
	// API layer should map this to HTTP 400 Bad Request.
	ErrDuplicateResource = errors.New("duplicate resource")

	// ErrInternal indicates an unexpected storage failure. The details are
	// logged, never shown to the client.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrInternal = errors.New("internal error")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("credentials are not valid")

	// ErrInactiveUser indicates the account exists but has been disabled.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInactiveUser = errors.New("user is inactive, talk with an admin")

	// ErrSeedDisabled indicates the seed operation is switched off by configuration.
	// API layer should map this to HTTP 403 Forbidden.
	ErrSeedDisabled = errors.New("seeding is disabled")
)

// OperationError is the translated form of a storage failure. Kind is one of
// ErrDuplicateResource or ErrInternal; Code and Detail carry what the
// database reported.
type OperationError struct {
	Kind   error
	Op     string
	Code   string
	Detail string
	Err    error
}

// Error implements the error interface for OperationError.
func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Op, e.Kind)
	if e.Code != "" {
		msg = fmt.Sprintf("%s (code %s)", msg, e.Code)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// Unwrap exposes both the kind and the original error.
func (e *OperationError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NotFoundError reports that no product matched a client-supplied term.
// It unwraps to the store's not-found error.
type NotFoundError struct {
	Term string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found id %s", e.Term)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// translateStoreError turns a store error into the error a service returns.
//
// Not-found and validation errors pass through unchanged, as do errors that
// were already translated. A uniqueness violation becomes an OperationError
// of kind ErrDuplicateResource carrying the database detail. Everything else
// becomes an OperationError of kind ErrInternal and is logged at ERROR.
func translateStoreError(log *slog.Logger, op string, err error) error {
	if err == nil {
		return nil
	}

	var opErr *OperationError
	if errors.As(err, &opErr) ||
		errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) {
		return err
	}

	translated := &OperationError{Kind: ErrInternal, Op: op, Err: err}
	var dbErr *store.DBError
	if errors.As(err, &dbErr) {
		translated.Code = dbErr.Code
		translated.Detail = dbErr.Detail
	}

	if errors.Is(err, store.ErrDuplicate) {
		translated.Kind = ErrDuplicateResource
		if translated.Detail == "" {
			translated.Detail = err.Error()
		}
		log.Debug("write rejected by uniqueness constraint",
			slog.String("op", op),
			slog.String("detail", translated.Detail))
		return translated
	}

	log.Error("unexpected storage failure",
		slog.String("op", op),
		slog.String("code", translated.Code),
		slog.String("detail", translated.Detail),
		slog.String("error", err.Error()))
	return translated
}
