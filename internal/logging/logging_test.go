package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCallerAnnotations tests that both the package helpers and named child
// loggers report the calling file
func TestCallerAnnotations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	if err := Initialize(Config{Level: "debug", Format: "json", Output: path}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := Initialize(DefaultConfig()); err != nil {
			t.Error(err)
		}
	})

	Debug("from helper")
	Named("component").Debug("from child")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), data)
	}
	for _, line := range lines {
		if !strings.Contains(line, `"caller":"logging/logging_test.go:`) {
			t.Errorf("caller does not point at the test: %s", line)
		}
	}
	if !strings.Contains(lines[1], `"logger":"component"`) {
		t.Errorf("child logger name missing: %s", lines[1])
	}
}

// TestBuildLevelFallback tests that an unknown level falls back to warn
func TestBuildLevelFallback(t *testing.T) {
	logger, err := Build(Config{Level: "chatty", Output: "stderr"})
	if err != nil {
		t.Fatal(err)
	}
	if logger.Core().Enabled(-1) {
		t.Error("debug should be disabled")
	}
	if !logger.Core().Enabled(1) {
		t.Error("warn should be enabled")
	}
}
