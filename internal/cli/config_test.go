package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("loadConfig() on a missing file returned an error: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("loadConfig() on a missing file should return the zero Config, got %+v", cfg)
	}
}

func TestLoadConfig_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	src := "max_work = 2.5\nverbose = true\nemit_dot = true\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.MaxWork != 2.5 || !cfg.Verbose || !cfg.DOT {
		t.Fatalf("loadConfig() = %+v, want MaxWork=2.5 Verbose=true DOT=true", cfg)
	}
}
