package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/cfrs-studio/internal/lang"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Canvas.Width != 256 || cfg.Canvas.Height != 256 {
		t.Errorf("default canvas = %dx%d, expected 256x256", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Background != lang.Black {
		t.Errorf("default background = %v, expected Black", cfg.Background)
	}
	if cfg.IntervalMS != 100 {
		t.Errorf("default interval = %d, expected 100", cfg.IntervalMS)
	}
	if cfg.Scale != 1 {
		t.Errorf("default scale = %d, expected 1", cfg.Scale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPreset(t *testing.T) {
	preset := `
canvas:
  width: 64
  height: 32
background: cyan
interval_ms: 40
scale: 8
`
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(preset), 0o644); err != nil {
		t.Fatalf("cannot write preset: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Canvas.Width != 64 || cfg.Canvas.Height != 32 {
		t.Errorf("canvas = %dx%d, expected 64x32", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Background != lang.Cyan {
		t.Errorf("background = %v, expected Cyan", cfg.Background)
	}
	if cfg.IntervalMS != 40 {
		t.Errorf("interval = %d, expected 40", cfg.IntervalMS)
	}
	if cfg.Scale != 8 {
		t.Errorf("scale = %d, expected 8", cfg.Scale)
	}
}

func TestLoadPartialPresetKeepsDefaults(t *testing.T) {
	preset := `
background: white
`
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(preset), 0o644); err != nil {
		t.Fatalf("cannot write preset: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Background != lang.White {
		t.Errorf("background = %v, expected White", cfg.Background)
	}
	if cfg.Canvas.Width != 256 {
		t.Errorf("width = %d, expected default 256", cfg.Canvas.Width)
	}
}

func TestLoadInvalidColor(t *testing.T) {
	preset := `
background: chartreuse
`
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte(preset), 0o644); err != nil {
		t.Fatalf("cannot write preset: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with unknown color should fail")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit preset should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Render)
		wantErr bool
	}{
		{"valid", func(r *Render) {}, false},
		{"zero width", func(r *Render) { r.Canvas.Width = 0 }, true},
		{"negative height", func(r *Render) { r.Canvas.Height = -3 }, true},
		{"zero interval", func(r *Render) { r.IntervalMS = 0 }, true},
		{"zero scale", func(r *Render) { r.Scale = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}
