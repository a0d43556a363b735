package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"

	"tempmanager/internal/config"
	"tempmanager/internal/menu"
)

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

// requireTranscript fails with a readable diff when got differs from want.
func requireTranscript(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("transcript mismatch (-want +got):\n%s", dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs)))
}

func testConfig(backend string) config.Config {
	return config.Config{
		AppEnv:       "dev",
		LogLevel:     slog.LevelWarn,
		StoreBackend: backend,
		SQLiteDSN:    ":memory:",
	}
}

func TestRun_goldenSession(t *testing.T) {
	in := readTestdata(t, "session.input")
	want := readTestdata(t, "session.golden")

	for _, backend := range []string{config.BackendMemory, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(context.Background(), testConfig(backend), strings.NewReader(in), &out)
			require.NoError(t, err)
			requireTranscript(t, want, out.String())
		})
	}
}

func TestRun_immediateExit(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), testConfig(config.BackendMemory), strings.NewReader("6\n"), &out)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out.String(), "Enter your choice: Exiting program.\n"))
}

func TestRun_inputClosedWithoutExit(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), testConfig(config.BackendMemory), strings.NewReader("2\n"), &out)
	require.ErrorIs(t, err, menu.ErrInputClosed)
}

func TestRun_unknownBackend(t *testing.T) {
	err := Run(context.Background(), testConfig("redis"), strings.NewReader("6\n"), &bytes.Buffer{})
	require.Error(t, err)
}

func TestRun_badSQLiteDSN(t *testing.T) {
	cfg := testConfig(config.BackendSQLite)
	cfg.SQLiteDSN = "file:/nonexistent-dir/sub/app.db?mode=ro"
	err := Run(context.Background(), cfg, strings.NewReader("6\n"), &bytes.Buffer{})
	require.Error(t, err)
}

func TestRun_canceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, testConfig(config.BackendMemory), strings.NewReader("6\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
}
