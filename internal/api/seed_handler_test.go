package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/shop-api/internal/api/shared"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/mocks"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedRouter(t *testing.T, enabled bool, user *domain.User) (http.Handler, *mocks.ProductStore) {
	t.Helper()

	log, _ := logger.NewBufferLogger()
	products := mocks.NewProductStore()
	svc, err := service.NewProductService(products, log)
	require.NoError(t, err)

	h := NewSeedHandler(service.NewSeedService(svc, new(mocks.UserStore), enabled, log), log)
	r := chi.NewRouter()
	r.Use(withUser(user))
	r.Get("/api/seed", h.Run)
	return r, products
}

func TestSeedHandler_Run(t *testing.T) {
	t.Parallel()

	h, products := newSeedRouter(t, true, testAdmin())

	rr := doRequest(t, h, http.MethodGet, "/api/seed", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	first := decodeBody[service.SeedResult](t, rr)
	assert.Zero(t, first.Deleted)
	assert.Equal(t, len(service.SeedCatalog()), first.Inserted)
	assert.Equal(t, first.Inserted, products.Len())

	rr = doRequest(t, h, http.MethodGet, "/api/seed", "")
	require.Equal(t, http.StatusOK, rr.Code)
	second := decodeBody[service.SeedResult](t, rr)
	assert.Equal(t, int64(first.Inserted), second.Deleted)
	assert.Equal(t, first.Inserted, products.Len())
}

func TestSeedHandler_Disabled(t *testing.T) {
	t.Parallel()

	h, products := newSeedRouter(t, false, testAdmin())

	rr := doRequest(t, h, http.MethodGet, "/api/seed", "")

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Seeding is disabled", decodeBody[shared.ErrorResponse](t, rr).Message)
	assert.Equal(t, 0, products.Len())
}
