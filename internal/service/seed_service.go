package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/store"
)

// SeedResult reports what a seed run changed.
type SeedResult struct {
	Deleted  int64 `json:"deleted"`
	Inserted int   `json:"inserted"`
}

// SeedService wipes the catalog and re-populates it with a fixed set of
// products. It is a maintenance operation for non-production environments.
type SeedService struct {
	products ProductService
	users    store.UserStore
	catalog  []ProductInput
	enabled  bool
	logger   *slog.Logger
}

// NewSeedService creates a SeedService that writes the built-in catalog.
func NewSeedService(
	products ProductService,
	users store.UserStore,
	enabled bool,
	logger *slog.Logger,
) *SeedService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeedService{
		products: products,
		users:    users,
		catalog:  SeedCatalog(),
		enabled:  enabled,
		logger:   logger.With(slog.String("component", "seed_service")),
	}
}

// Run deletes every product and inserts the seed catalog owned by actor.
// A nil actor means the earliest registered admin.
func (s *SeedService) Run(ctx context.Context, actor *domain.User) (*SeedResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !s.enabled {
		return nil, ErrSeedDisabled
	}

	if actor == nil {
		admin, err := s.users.FirstWithRole(ctx, domain.RoleAdmin)
		if err != nil {
			if store.IsNotFoundError(err) {
				return nil, fmt.Errorf("seeding requires an admin user: %w", err)
			}
			return nil, translateStoreError(log, "seed", err)
		}
		actor = admin
	}

	deleted, err := s.products.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{Deleted: deleted}
	for _, input := range s.catalog {
		if _, err := s.products.Create(ctx, input, actor); err != nil {
			log.Error("seed insert failed",
				slog.Int("inserted", result.Inserted),
				slog.String("error", err.Error()))
			return nil, err
		}
		result.Inserted++
	}

	log.Info("seed executed",
		slog.Int64("deleted", result.Deleted),
		slog.Int("inserted", result.Inserted),
		slog.String("owner_id", actor.ID.String()))

	return result, nil
}
