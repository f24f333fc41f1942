// Command seed replaces the product catalog with the built-in seed data,
// owned by the earliest registered admin. It honours the same configuration
// as the server, including the seed.enabled switch.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/shop-api/internal/config"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/platform/postgres"
	"github.com/phrazzld/shop-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.OpenDB(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Error("error closing database connection", "error", err)
		}
	}()

	users := postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, l)
	products, err := service.NewProductService(
		service.NewProductRepositoryAdapter(postgres.NewPostgresProductStore(db, l), db),
		l,
	)
	if err != nil {
		return err
	}

	res, err := service.NewSeedService(products, users, cfg.Seed.Enabled, l).Run(ctx, nil)
	if err != nil {
		return err
	}

	fmt.Printf("seed executed: %d deleted, %d inserted\n", res.Deleted, res.Inserted)
	return nil
}
