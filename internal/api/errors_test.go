package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/shop-api/internal/api/shared"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/phrazzld/shop-api/internal/service/auth"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	duplicate := &service.OperationError{
		Kind:   service.ErrDuplicateResource,
		Op:     "create product",
		Detail: "Key (slug)=(cap) already exists.",
	}

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
		{"bad credentials", fmt.Errorf("%w (email)", service.ErrInvalidCredentials), http.StatusUnauthorized, "Credentials are not valid"},
		{"inactive", service.ErrInactiveUser, http.StatusUnauthorized, "User is inactive, talk with an admin"},
		{"seed disabled", service.ErrSeedDisabled, http.StatusForbidden, "Seeding is disabled"},
		{"product not found", &service.NotFoundError{Term: "cap", Err: store.ErrProductNotFound}, http.StatusNotFound, "not found id cap"},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"duplicate", duplicate, http.StatusBadRequest, "Key (slug)=(cap) already exists."},
		{"validation error type", domain.NewValidationError("id", "must be a UUID", domain.ErrInvalidID), http.StatusBadRequest, "id must be a UUID"},
		{"validation sentinel", domain.ErrProductStockNeg, http.StatusBadRequest, "product stock cannot be negative"},
		{"internal", &service.OperationError{Kind: service.ErrInternal, Err: errors.New("pq: secret")}, http.StatusInternalServerError, internalErrorMessage},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, internalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.wantMessage, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_Nil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, internalErrorMessage, GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	req := CreateProductRequest{Title: "", Sizes: []string{""}, Gender: "x"}
	err := shared.ValidateRequest(req)

	assert.Equal(t,
		"title is required; sizes[0] is required; gender must be one of men, women, kid, unisex",
		SanitizeValidationError(err))
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
