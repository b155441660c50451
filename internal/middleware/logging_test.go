package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/splitwise/internal/models"
	"github.com/mmynk/splitwise/internal/storage"
	"github.com/mmynk/splitwise/internal/storage/sqlite"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggingStorePassesThrough(t *testing.T) {
	logs := captureLogs(t)

	inner, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	store := WithLogging(inner)
	defer store.Close()

	ctx := context.Background()
	id, err := store.AddUser(ctx, "Bob")
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	if err := store.AddPayment(ctx, "Lunch", 10, id); err != nil {
		t.Fatalf("AddPayment failed: %v", err)
	}
	if err := store.SettlePayment(ctx, "Bob", 10); err != nil {
		t.Fatalf("SettlePayment failed: %v", err)
	}

	payments, err := store.GetAllPayments(ctx)
	if err != nil || len(payments) != 2 {
		t.Fatalf("GetAllPayments = %d payments, err %v", len(payments), err)
	}
	balances, err := store.GetBalances(ctx)
	if err != nil || len(balances) != 1 || balances[0].Amount != 0 {
		t.Fatalf("GetBalances = %+v, err %v", balances, err)
	}

	out := logs.String()
	for _, want := range []string{`op="add user"`, `op="add payment"`, `op="settle payment"`, `op="get balances"`, "duration_ms="} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in logs:\n%s", want, out)
		}
	}
	if strings.Contains(out, "level=ERROR") {
		t.Errorf("unexpected error records:\n%s", out)
	}
}

type brokenStore struct {
	storage.Store
}

func (brokenStore) GetBalances(context.Context) ([]models.Balance, error) {
	return nil, storage.Wrap("get balances", errors.New("database is locked"))
}

func TestLoggingStoreLogsFailures(t *testing.T) {
	logs := captureLogs(t)

	store := WithLogging(brokenStore{})
	_, err := store.GetBalances(context.Background())
	if err == nil {
		t.Fatal("expected error to be passed through")
	}

	out := logs.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "database is locked") {
		t.Errorf("expected error record, got:\n%s", out)
	}
}
