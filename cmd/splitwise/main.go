package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/splitwise/internal/app"
	"github.com/mmynk/splitwise/internal/config"
	"github.com/mmynk/splitwise/internal/metrics"
	"github.com/mmynk/splitwise/internal/middleware"
	"github.com/mmynk/splitwise/internal/storage/sqlite"
	"github.com/mmynk/splitwise/internal/tui"
	"github.com/mmynk/splitwise/pkg/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	closeLog, err := logging.SetupFile(cfg.LogFile, logging.LevelFromString(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	store, err := sqlite.New(config.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		fmt.Fprintf(os.Stderr, "failed to initialize database: %v\n", err)
		return 1
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", config.DBPath)

	m := metrics.New()
	a := app.New(middleware.WithLogging(store), m)
	if err := a.Load(ctx); err != nil {
		slog.Error("Failed to load ledger", "error", err)
		fmt.Fprintf(os.Stderr, "failed to load ledger: %v\n", err)
		return 1
	}

	if err := tui.Run(ctx, a); err != nil {
		slog.Error("UI failed", "error", err)
		return 1
	}

	logSession(m)
	return 0
}

// logSession writes the session counters to the log on exit.
func logSession(m *metrics.Metrics) {
	samples, err := m.Snapshot()
	if err != nil {
		slog.Warn("Failed to gather session metrics", "error", err)
		return
	}
	for _, s := range samples {
		args := []any{"metric", s.Name, "value", s.Value}
		for k, v := range s.Labels {
			args = append(args, k, v)
		}
		slog.Info("Session metric", args...)
	}
	slog.Info("Session ended")
}
