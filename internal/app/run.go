package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"tempmanager/internal/config"
	"tempmanager/internal/console"
	db "tempmanager/internal/db"
	"tempmanager/internal/menu"
	"tempmanager/internal/migrate"
	temperature "tempmanager/internal/modules/temperature"
	"tempmanager/internal/modules/temperature/repository"
	"tempmanager/internal/modules/temperature/views"
)

const menuTitle = "Temperature Data Manager"

// Run wires the store, views and menu, then drives one console session over
// in/out until the user exits.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"storeBackend", cfg.StoreBackend,
	)

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			slog.Error("store close", "error", closeErr)
		}
	}()

	renderer, err := views.LoadTemplates()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	m := menu.New(menuTitle, slog.Default().With("module", "menu"))
	temperature.RegisterFeature(m, repo, renderer)
	m.HandleExit(6, "Exit", "Exiting program.")

	err = m.Run(ctx, console.New(in, out))
	slog.Info("session ended", "state", m.State().String())
	return err
}

func openRepository(ctx context.Context, cfg config.Config) (repository.TemperatureRepository, func() error, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		return repository.NewMemoryRepository(), func() error { return nil }, nil
	case config.BackendSQLite:
		dbConn, err := db.Open(ctx, cfg.SQLiteDSN, slog.Default().With("module", "db"))
		if err != nil {
			return nil, nil, err
		}
		n, err := migrate.Run(ctx, dbConn, slog.Default())
		if err != nil {
			_ = db.Close(dbConn)
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		slog.Info("sqlite store ready", "migrationsApplied", n)
		return repository.NewSQLiteRepository(dbConn), func() error { return db.Close(dbConn) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
