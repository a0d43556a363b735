package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tempmanager/internal/config"
	"tempmanager/internal/logging"
	"tempmanager/internal/menu"
)

// Default version is "dev" if not set with -ldflags "-X main.version=..."
var version = "dev"

const appName = "tempmanager"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	slog.Info("starting",
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
		"log_level", cfg.LogLevel.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt kills the process the default way.
		<-ctx.Done()
		stop()
	}()

	os.Exit(exitCode(newRootCmd(cfg).ExecuteContext(ctx)))
}

// exitCode maps the session result to a process status. A canceled context or
// closed stdin are ordinary ways for a console session to end.
func exitCode(err error) int {
	switch {
	case err == nil:
		slog.Info("shutting down")
		return 0
	case errors.Is(err, context.Canceled):
		slog.Info("interrupted")
		return 0
	case errors.Is(err, menu.ErrInputClosed):
		slog.Warn("input closed before exit was chosen")
		return 0
	default:
		slog.Error("run failed", "err", err)
		return 1
	}
}
