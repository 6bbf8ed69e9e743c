package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsLoad(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if cfg.World.Width != 96 || cfg.World.Height != 64 {
		t.Fatalf("world = %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Derived.Sites != 96*64 || cfg.Derived.TilesX != 3 || cfg.Derived.TilesY != 2 {
		t.Fatalf("derived = %+v", cfg.Derived)
	}
	if cfg.Params["Antenna.length"] != 5 {
		t.Fatalf("Antenna.length = %d", cfg.Params["Antenna.length"])
	}
	if len(cfg.Placements) == 0 {
		t.Fatal("defaults carry no placements")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "array.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestUserFileMergesOverDefaults(t *testing.T) {
	path := writeFile(t, `
world:
  width: 20
params:
  Antenna.length: 9
placements:
  - element: Box
    x: 1
    y: 2
run:
  log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 20 || cfg.World.Height != 64 {
		t.Fatalf("world = %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Params["Antenna.length"] != 9 || cfg.Params["Lens.length"] != 5 {
		t.Fatalf("params = %v", cfg.Params)
	}
	if len(cfg.Placements) != 1 || cfg.Placements[0].Element != "Box" {
		t.Fatalf("placements = %+v", cfg.Placements)
	}
	if cfg.Derived.LogLevel != slog.LevelDebug {
		t.Fatalf("level = %v", cfg.Derived.LogLevel)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "world:\n  width: 0\n"},
		{"dead tile outside", "world:\n  dead_tiles:\n    - {x: 9, y: 0}\n"},
		{"unnamed placement", "placements:\n  - x: 1\n"},
		{"log level", "run:\n  log_level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATA_ARRAY_SEED", "42")
	t.Setenv("DATA_ARRAY_WIDTH", "10")
	t.Setenv("DATA_ARRAY_OUTPUT_DIR", "out")

	cfg, err := LoadWithEnv("")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Seed != 42 || cfg.World.Width != 10 || cfg.Run.OutputDir != "out" {
		t.Fatalf("cfg = seed %d width %d out %q", cfg.Seed, cfg.World.Width, cfg.Run.OutputDir)
	}
	if cfg.World.Height != 64 {
		t.Fatalf("unset variable changed height to %d", cfg.World.Height)
	}
	if cfg.Derived.Sites != 640 {
		t.Fatalf("sites = %d", cfg.Derived.Sites)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("DATA_ARRAY_TICKS", "lots")
	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	err = cfg.ApplyEnv()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("err = %v, want parse env error", err)
	}
}

func TestWriteYAMLSnapshotReloads(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	cfg.Seed = 7
	cfg.Params["Antenna.length"] = 3

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if back.Seed != 7 || back.Params["Antenna.length"] != 3 {
		t.Fatalf("snapshot = seed %d params %v", back.Seed, back.Params)
	}
}
