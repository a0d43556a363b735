package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Open returns a *sql.DB for dsn whose statements are logged at debug level.
//
// The pool is pinned to a single long-lived connection: an in-memory SQLite
// database exists only while a connection to it is open.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*sql.DB, error) {
	connector, err := NewLoggingConnector(dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("db connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Validate connectivity early
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
