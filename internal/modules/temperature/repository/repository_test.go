package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempmanager/internal/migrate"
	"tempmanager/internal/modules/temperature/types"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "open db")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close db: %v", closeErr)
		}
	})
	_, err = migrate.Run(context.Background(), db, nil)
	require.NoError(t, err, "migrate")
	return db
}

// backends runs fn against every repository implementation.
func backends(t *testing.T, fn func(t *testing.T, repo TemperatureRepository)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryRepository())
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, NewSQLiteRepository(setupTestDB(t)))
	})
}

func TestRepository_emptyStore(t *testing.T) {
	backends(t, func(t *testing.T, repo TemperatureRepository) {
		ctx := context.Background()

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestRepository_preservesInsertionOrderAndDuplicates(t *testing.T) {
	backends(t, func(t *testing.T, repo TemperatureRepository) {
		ctx := context.Background()
		in := []types.Reading{72.5, 68.0, 70.0, 68.0, -3.75}
		for _, r := range in {
			require.NoError(t, repo.Append(ctx, r))
		}

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, in, all)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(in), n)
	})
}

func TestRepository_AllReturnsCopy(t *testing.T) {
	backends(t, func(t *testing.T, repo TemperatureRepository) {
		ctx := context.Background()
		require.NoError(t, repo.Append(ctx, 1))
		require.NoError(t, repo.Append(ctx, 2))

		first, err := repo.All(ctx)
		require.NoError(t, err)
		first[0] = 100

		second, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Reading{1, 2}, second)
	})
}

func TestSQLiteRepository_missingTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	assert.Error(t, repo.Append(ctx, 1))
	_, err = repo.All(ctx)
	assert.Error(t, err)
	_, err = repo.Count(ctx)
	assert.Error(t, err)
}

func TestSQLiteRepository_canceledContext(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Append(ctx, 1), context.Canceled)
}
