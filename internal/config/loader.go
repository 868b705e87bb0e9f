package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cfrs-studio/internal/lang"
)

// renderYAML is the on-disk preset shape. Colors are names; decode
// parses them so missing fields fall back to the defaults.
type renderYAML struct {
	Canvas     Canvas `yaml:"canvas"`
	Background string `yaml:"background"`
	IntervalMS int    `yaml:"interval_ms"`
	Scale      int    `yaml:"scale"`
}

// decode applies a preset document on top of cfg. Absent fields keep
// their current values.
func decode(data []byte, cfg *Render) error {
	var raw renderYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Canvas.Width != 0 {
		cfg.Canvas.Width = raw.Canvas.Width
	}
	if raw.Canvas.Height != 0 {
		cfg.Canvas.Height = raw.Canvas.Height
	}
	if raw.Background != "" {
		bg, err := lang.ParseColor(raw.Background)
		if err != nil {
			return err
		}
		cfg.Background = bg
	}
	if raw.IntervalMS != 0 {
		cfg.IntervalMS = raw.IntervalMS
	}
	if raw.Scale != 0 {
		cfg.Scale = raw.Scale
	}
	return nil
}

// Load loads render settings.
// Search order: customPath -> ~/.cfrs/render.yaml -> ./configs/render.yaml -> embedded default
func Load(customPath string) (Render, error) {
	cfg := Default()

	// Try custom path first; a broken explicit preset is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read preset %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse preset %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("render.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/render.yaml"); err == nil {
		if err := decode(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg = Default()
	if err := decode(defaultRenderYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to a user config file, or empty string
// if the home directory can't be determined.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cfrs", filename)
}
