package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("  Test@Example.COM ", " Jane Doe ", "Abc123")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.FullName)
	assert.True(t, user.IsActive)
	assert.Equal(t, []Role{RoleUser}, user.Roles)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestNewUser_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		fullName string
		password string
		wantErr  error
	}{
		{"empty email", "", "Jane", "Abc123", ErrEmptyEmail},
		{"bad email", "not-an-email", "Jane", "Abc123", ErrInvalidEmail},
		{"no domain dot", "a@bcd", "Jane", "Abc123", ErrInvalidEmail},
		{"empty full name", "a@b.co", "  ", "Abc123", ErrEmptyFullName},
		{"short password", "a@b.co", "Jane", "Ab1", ErrPasswordTooShort},
		{"long password", "a@b.co", "Jane", "Abc123" + string(make([]byte, 50)), ErrPasswordTooLong},
		{"no upper", "a@b.co", "Jane", "abc123", ErrPasswordTooWeak},
		{"no digit", "a@b.co", "Jane", "Abcdef", ErrPasswordTooWeak},
		{"empty password", "a@b.co", "Jane", "", ErrEmptyHashedPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, tt.fullName, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidate_ExistingUser(t *testing.T) {
	t.Parallel()

	u := User{
		ID:             uuid.New(),
		Email:          "stored@example.com",
		FullName:       "Stored",
		HashedPassword: "$2a$10$hash",
		Roles:          []Role{RoleAdmin},
	}
	assert.NoError(t, u.Validate())

	u.Roles = []Role{"root"}
	err := u.Validate()
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserRoles(t *testing.T) {
	t.Parallel()

	u := &User{Roles: []Role{RoleUser, RoleSuperUser}}

	assert.True(t, u.HasRole(RoleUser))
	assert.False(t, u.HasRole(RoleAdmin))
	assert.True(t, u.HasAnyRole())
	assert.True(t, u.HasAnyRole(RoleAdmin, RoleSuperUser))
	assert.False(t, u.HasAnyRole(RoleAdmin))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("id", "has invalid format", ErrInvalidID)
	assert.Equal(t, "id has invalid format", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidID))
	assert.True(t, errors.Is(err, ErrValidation))

	plain := NewValidationError("limit", "must be positive", nil)
	assert.True(t, errors.Is(plain, ErrValidation))
}
