package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := LevelFromString(tt.in); got != tt.want {
			t.Errorf("LevelFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupWithWriter(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	SetupWithWriter(&buf, slog.LevelInfo, true)

	slog.Debug("hidden")
	slog.Info("Payment split", "friend", "Bob")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered at info level")
	}
	for _, want := range []string{"Payment split", "friend=Bob", "session_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output: %s", want, out)
		}
	}
}

func TestSetupFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "splitwise.log")
	closeLog, err := SetupFile(path, slog.LevelDebug)
	if err != nil {
		t.Fatalf("SetupFile failed: %v", err)
	}
	slog.Debug("Ledger loaded")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Ledger loaded") {
		t.Errorf("expected record in log file, got %q", data)
	}
}
