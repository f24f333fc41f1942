package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/shop-api/internal/api/shared"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/service"
)

// SeedHandler exposes the catalog seed operation.
type SeedHandler struct {
	seeder *service.SeedService
	logger *slog.Logger
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seeder *service.SeedService, logger *slog.Logger) *SeedHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeedHandler{
		seeder: seeder,
		logger: logger.With(slog.String("component", "seed_handler")),
	}
}

// Run handles GET /api/seed. The catalog is replaced and owned by the
// calling admin.
func (h *SeedHandler) Run(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.seeder.Run(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("seed executed",
		slog.Int64("deleted", res.Deleted),
		slog.Int("inserted", res.Inserted))

	shared.RespondWithJSON(w, r, http.StatusOK, res)
}
