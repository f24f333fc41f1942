package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrEmptyFullName       = fmt.Errorf("%w: full name cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 50 characters long", ErrValidation)
	ErrPasswordTooWeak     = fmt.Errorf("%w: password must have an uppercase letter, a lowercase letter and a number", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// Role is an authorization tag carried by a user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "super-user"
	RoleUser      Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperUser, RoleUser:
		return true
	}
	return false
}

// User represents a registered user of the shop.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"isActive"`
	Roles          []Role    `json:"roles"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// NewUser creates an active User with the default role. The email is
// normalized (trimmed, lower-cased) before validation.
//
// NOTE: the plaintext password is kept on the struct; the user store hashes
// it before the row is written.
func NewUser(email, fullName, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     NormalizeEmail(email),
		FullName:  strings.TrimSpace(fullName),
		Password:  password,
		IsActive:  true,
		Roles:     []Role{RoleUser},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.FullName == "" {
		return ErrEmptyFullName
	}

	for _, r := range u.Roles {
		if !r.Valid() {
			return NewValidationError("roles", "contains unknown role "+string(r), ErrInvalidRole)
		}
	}

	if u.Password != "" {
		return validatePassword(u.Password)
	}

	// Existing users loaded from the database only carry the hash.
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user holds at least one of roles. An empty
// list is satisfied by every user.
func (u *User) HasAnyRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

// validateEmailFormat performs basic validation of email format: a non-empty
// local part, an @, and a domain with a dot that is neither first nor last.
// Request DTOs are validated more strictly by the API layer.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	if len(domainPart) < 3 {
		return false
	}

	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}

// validatePassword enforces 6..50 characters with at least one upper-case
// letter, one lower-case letter and one digit.
func validatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	if len(password) > 50 {
		return ErrPasswordTooLong
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return ErrPasswordTooWeak
	}
	return nil
}
