package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"

	// DefaultSQLiteDSN names a shared-cache in-memory database; it disappears
	// when the last connection closes.
	DefaultSQLiteDSN = "file:tempmanager?mode=memory&cache=shared"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// StoreBackend selects where readings are held for the session:
	// BackendMemory (a slice) or BackendSQLite (an in-memory SQLite database).
	StoreBackend string
	SQLiteDSN    string
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	// The console is interactive, so only warnings and errors are shown unless asked.
	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "warn"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_BACKEND")))
	if backend == "" {
		backend = BackendMemory
	}
	switch backend {
	case BackendMemory, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND %q (allowed: %s, %s)", backend, BackendMemory, BackendSQLite)
	}

	dsn := strings.TrimSpace(os.Getenv("SQLITE_DSN"))
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}

	return Config{
		AppEnv:       appEnv,
		LogLevel:     level,
		StoreBackend: backend,
		SQLiteDSN:    dsn,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
