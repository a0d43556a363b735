package menu

import (
	"context"
	"log/slog"
	"time"

	"tempmanager/internal/console"
)

func dispatchLogger(logger *slog.Logger, choice int, label string, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, c *console.Console) error {
		start := time.Now()

		err := next(ctx, c)

		logger.Debug("menu dispatch",
			"choice", choice,
			"label", label,
			"ok", err == nil,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}
