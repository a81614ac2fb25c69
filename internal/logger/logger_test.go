package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initFileLogger(t *testing.T, level string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxel.log")
	cfg := FileConfig{Path: path, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1}
	if err := InitWithFileConfig(level, cfg, false); err != nil { // No console output
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	return string(data)
}

func logAllLevels() {
	Debug("debug line")
	Info("info line")
	Warn("warn line")
	Error("error line")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantLines int
	}{
		{"debug", 4},
		{"info", 3},
		{"warn", 2},
		{"error", 1},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := initFileLogger(t, tt.level)
			logAllLevels()

			content := strings.TrimSpace(readLog(t, path))
			lines := len(strings.Split(content, "\n"))
			if lines != tt.wantLines {
				t.Errorf("level %s wrote %d lines, want %d:\n%s", tt.level, lines, tt.wantLines, content)
			}
		})
	}
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	path := initFileLogger(t, "chatty")
	logAllLevels()

	content := readLog(t, path)
	if strings.Contains(content, "DEBUG") {
		t.Error("debug output present, unknown level should fall back to info")
	}
	if !strings.Contains(content, "INFO") {
		t.Error("info output missing")
	}
}

func TestInitCreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "voxel.log")

	if err := InitWithFileConfig("info", FileConfig{Path: path, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}
	Info("hello")
	Sync()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestRotationProducesBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotate.log")

	cfg := FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig("info", cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}

	// Write past the 1MB limit to force at least one rotation.
	payload := strings.Repeat("v", 256)
	for i := 0; i < 6000; i++ {
		Sugar.Infow("fill", "n", i, "payload", payload)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading log dir: %v", err)
	}
	if len(entries) < 2 {
		t.Errorf("expected current plus rotated log files, found %d entries", len(entries))
	}
}

func TestDefaultFileConfig(t *testing.T) {
	got := DefaultFileConfig("game.log")
	want := FileConfig{Path: "game.log", MaxSizeMB: 50, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if got != want {
		t.Errorf("DefaultFileConfig() = %+v, want %+v", got, want)
	}
}

func TestSyncWithoutInit(t *testing.T) {
	old := Log
	Log = nil
	defer func() { Log = old }()

	Sync() // must not panic
}
