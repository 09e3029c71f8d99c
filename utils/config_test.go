package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"rows": 20, "cols": 30, "workers": 4, "pattern_file": "glider.rle", "frame_rate": 1000000}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Rows != 20 || config.Cols != 30 || config.Workers != 4 {
		t.Fatalf("unexpected dimensions: %+v", config)
	}
	if config.PatternFile != "glider.rle" || config.FrameRate != time.Millisecond {
		t.Fatalf("unexpected values: %+v", config)
	}
	// Unset keys keep their defaults.
	if config.Generations != DefaultConfig().Generations {
		t.Fatalf("Generations = %d, want default", config.Generations)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{rows:"), 0o644); err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(bad)
	if err == nil {
		t.Fatal("expected unmarshal error")
	}
	if config.Rows != DefaultConfig().Rows {
		t.Fatalf("failed load should return defaults, got %+v", config)
	}
}

func TestBindOverridesValues(t *testing.T) {
	config := DefaultConfig()
	config.Rows = 12

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.Bind(fs)
	if err := fs.Parse([]string{"-cols", "7", "-pattern", "p.rle", "-print"}); err != nil {
		t.Fatal(err)
	}
	if config.Rows != 12 || config.Cols != 7 || config.PatternFile != "p.rle" || !config.PrintGrid {
		t.Fatalf("unexpected config after Bind: %+v", config)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := map[string]func(*Config){
		"zero rows":            func(c *Config) { c.Rows = 0 },
		"negative cols":        func(c *Config) { c.Cols = -3 },
		"no workers":           func(c *Config) { c.Workers = 0 },
		"negative generations": func(c *Config) { c.Generations = -1 },
	}
	for name, mutate := range tests {
		config := DefaultConfig()
		mutate(&config)
		if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}
