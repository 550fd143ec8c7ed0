package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/chessheat/internal/board"
)

func TestLoadDefaults(t *testing.T) {
	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Position != board.StartPosition {
		t.Errorf("Position = %q, want the start position", opts.Position)
	}
	if opts.CellSize != DefaultCellSize {
		t.Errorf("CellSize = %d, want %d", opts.CellSize, DefaultCellSize)
	}
	if opts.Level() != slog.LevelInfo {
		t.Errorf("Level() = %v, want info", opts.Level())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	data := `
position = "8/8/8/8/4N3/8/8/8 w - - 0 1"
cell-size = 64
data-dir = "/tmp/heat"
log-level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write options: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Options{
		Position: "8/8/8/8/4N3/8/8/8 w - - 0 1",
		CellSize: 64,
		DataDir:  "/tmp/heat",
		LogLevel: "debug",
	}
	if opts != want {
		t.Errorf("Load = %+v, want %+v", opts, want)
	}
	if opts.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", opts.Level())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "position = "},
		{"unknown key", "colour = \"red\""},
		{"small cell", "cell-size = 4"},
		{"bad level", "log-level = \"chatty\""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".toml")
			if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
				t.Fatalf("write options: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) succeeded", tc.data)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
