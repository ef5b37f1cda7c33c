// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/sfat-model/sfat/internal/cli/config"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Context returns a command context carrying cfg and a test logger, the way
// the root command prepares it before running a subcommand.
func Context(t testing.TB, cfg *config.Config) context.Context {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	ctx := config.WithConfig(context.Background(), cfg)
	return context.WithValue(ctx, config.LoggerKey(), NewTestLogger(t))
}
