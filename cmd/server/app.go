package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/almanac-api/internal/bootstrap"
	"github.com/phrazzld/almanac-api/internal/config"
	"github.com/phrazzld/almanac-api/internal/platform/logger"
	"github.com/phrazzld/almanac-api/internal/platform/memory"
	"github.com/phrazzld/almanac-api/internal/service"
)

// application holds the shared dependencies of the server.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	registry   *memory.Registry
	controller *service.Controller
}

// initializeApp loads configuration, sets up logging, builds the
// in-memory registry (seeding it from the accounts file when one is
// configured) and wires the session controller.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	registry := memory.NewRegistry()

	if cfg.Bootstrap.AccountsFile != "" {
		count, err := bootstrap.LoadAccounts(ctx, cfg.Bootstrap.AccountsFile, registry, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to load bootstrap accounts: %w", err)
		}
		appLogger.Info("bootstrap accounts loaded",
			"file", cfg.Bootstrap.AccountsFile,
			"count", count)
	}

	controller := service.NewController(registry, registry, appLogger)

	return &application{
		config:     cfg,
		logger:     appLogger,
		registry:   registry,
		controller: controller,
	}, nil
}
