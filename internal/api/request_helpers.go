package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/api/shared"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/phrazzld/shop-api/internal/store"
)

// getPathUUID extracts a canonical UUID from the URL path parameters.
//
// Returns:
//   - (uuid.UUID, nil): The parsed UUID if valid
//   - (uuid.UUID{}, error): A validation error if the parameter is missing or not a UUID
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, ok := service.ParseCanonicalUUID(pathParam)
	if !ok {
		return uuid.Nil, domain.NewValidationError(paramName, "must be a UUID", domain.ErrInvalidID)
	}
	return id, nil
}

// parsePagination reads the limit and offset query parameters and fills in
// the defaults for absent ones. A limit must be positive and an offset must
// not be negative.
func parsePagination(r *http.Request) (store.Page, error) {
	var q PaginationQuery

	params := []struct {
		name string
		dst  **int
	}{
		{"limit", &q.Limit},
		{"offset", &q.Offset},
	}
	for _, p := range params {
		raw := r.URL.Query().Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return store.Page{}, domain.NewValidationError(p.name, "must be an integer", domain.ErrInvalidFormat)
		}
		*p.dst = &n
	}

	if err := shared.ValidateRequest(q); err != nil {
		return store.Page{}, fmt.Errorf("%w: %s", domain.ErrValidation, SanitizeValidationError(err))
	}

	return store.NormalizePage(q.Limit, q.Offset), nil
}
