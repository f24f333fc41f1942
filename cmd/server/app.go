package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/shop-api/internal/config"
	"github.com/phrazzld/shop-api/internal/platform/postgres"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/phrazzld/shop-api/internal/service/auth"
	"github.com/phrazzld/shop-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	productStore store.ProductStore

	jwtService     auth.JWTService
	userService    service.UserService
	productService service.ProductService
	seedService    *service.SeedService
}

// newApplication wires stores, services and auth around an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger)
	app.productStore = postgres.NewPostgresProductStore(db, logger)

	app.userService = service.NewUserService(app.userStore, app.jwtService, auth.NewBcryptVerifier(), logger)

	app.productService, err = service.NewProductService(
		service.NewProductRepositoryAdapter(app.productStore, db),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}

	app.seedService = service.NewSeedService(app.productService, app.userStore, cfg.Seed.Enabled, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	shutdownTimeout := time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	if err := app.startHTTPServer(ctx, app.setupRouter(), shutdownTimeout); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}
