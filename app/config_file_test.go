//go:build !tinygo

package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.toml")
	data := `
debounce = "250ms"
threshold = 500

[calibration]
raw_x_min = 250
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadConfigFile(path, &cfg); err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Debounce != 250*time.Millisecond || cfg.Threshold != 500 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Calibration.RawXMin != 250 || cfg.Calibration.RawXMax != 3700 {
		t.Fatalf("Calibration = %+v", cfg.Calibration)
	}
	if cfg.Feedback != 1500*time.Millisecond {
		t.Fatalf("Feedback = %v, want default", cfg.Feedback)
	}
}

func TestLoadConfigFileRejectsTypos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.toml")
	if err := os.WriteFile(path, []byte(`debonce = "1s"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := LoadConfigFile(path, &cfg); err == nil {
		t.Fatal("LoadConfigFile() = nil, want unknown key error")
	}
}
