package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"slices"

	"tempmanager/internal/modules/temperature/types"
)

//go:embed sql/insert-reading.sql
var insertReadingSQL string

//go:embed sql/get-readings.sql
var getReadingsSQL string

//go:embed sql/get-readings-count.sql
var getReadingsCountSQL string

// TemperatureRepository holds the readings of one session in arrival order.
type TemperatureRepository interface {
	Append(ctx context.Context, r types.Reading) error
	// All returns a copy of every reading in insertion order.
	All(ctx context.Context) ([]types.Reading, error)
	Count(ctx context.Context) (int, error)
}

type memoryRepository struct {
	readings []types.Reading
}

func NewMemoryRepository() TemperatureRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Append(_ context.Context, reading types.Reading) error {
	r.readings = append(r.readings, reading)
	return nil
}

func (r *memoryRepository) All(_ context.Context) ([]types.Reading, error) {
	return slices.Clone(r.readings), nil
}

func (r *memoryRepository) Count(_ context.Context) (int, error) {
	return len(r.readings), nil
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository expects the readings table to exist (see package migrate).
func NewSQLiteRepository(db *sql.DB) TemperatureRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Append(ctx context.Context, reading types.Reading) error {
	if _, err := r.db.ExecContext(ctx, insertReadingSQL, float64(reading)); err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}

func (r *sqliteRepository) All(ctx context.Context) ([]types.Reading, error) {
	rows, err := r.db.QueryContext(ctx, getReadingsSQL)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close readings rows", "error", err)
		}
	}()

	var out []types.Reading
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		out = append(out, types.Reading(v))
	}
	return out, rows.Err()
}

func (r *sqliteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, getReadingsCountSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count readings: %w", err)
	}
	return n, nil
}
