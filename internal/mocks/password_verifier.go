package mocks

import (
	"errors"

	"github.com/phrazzld/shop-api/internal/service/auth"
)

// ErrPasswordMismatch is returned by MockPasswordVerifier when it is told to fail.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordVerifier is an auth.PasswordVerifier whose outcome is fixed by
// the test. It records the last comparison.
type MockPasswordVerifier struct {
	ShouldSucceed bool
	CompareFn     func(hashedPassword, password string) error

	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}
	CompareCallCount int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password
	m.CompareCallCount++

	switch {
	case m.CompareFn != nil:
		return m.CompareFn(hashedPassword, password)
	case m.ShouldSucceed:
		return nil
	default:
		return ErrPasswordMismatch
	}
}
