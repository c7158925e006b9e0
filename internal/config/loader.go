package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// LoadAcorns loads Acorn Drop configuration.
// Search order: customPath -> ~/.arcade/configs/acorns.yaml -> ./configs/acorns.yaml -> embedded default
func LoadAcorns(customPath string) (AcornsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AcornsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseAcorns(data)
		if err != nil {
			return AcornsConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("acorns.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAcorns(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/acorns.yaml"); err == nil {
		if cfg, err := parseAcorns(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseAcorns(defaultAcornsYAML)
	if err != nil {
		return DefaultAcornsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseAcorns decodes YAML over the hardcoded defaults, so a partial file
// only overrides the keys it names, then validates the result.
func parseAcorns(data []byte) (AcornsConfig, error) {
	cfg := DefaultAcornsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AcornsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AcornsConfig{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the game cannot run with.
func (c AcornsConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("world.cell_size must be positive, got %d", c.World.CellSize))
	}
	if c.Player.FrameWidth <= 0 || c.Player.FrameHeight <= 0 {
		errs = append(errs, errors.New("player frame size must be positive"))
	}
	if c.Platform.Width <= 0 || c.Platform.Height <= 0 || c.Platform.Scale <= 0 {
		errs = append(errs, errors.New("platform size and scale must be positive"))
	}
	if c.Acorns.Count < 1 {
		errs = append(errs, fmt.Errorf("acorns.count must be at least 1, got %d", c.Acorns.Count))
	}
	if c.Acorns.Width <= 0 || c.Acorns.Height <= 0 {
		errs = append(errs, errors.New("acorn size must be positive"))
	}
	if c.Acorns.MinX > c.Acorns.MaxX {
		errs = append(errs, fmt.Errorf("acorns.min_x (%d) exceeds max_x (%d)", c.Acorns.MinX, c.Acorns.MaxX))
	}
	if _, ok := core.ParseColor(c.Player.DefeatTint); !ok {
		errs = append(errs, fmt.Errorf("unknown player.defeat_tint %q", c.Player.DefeatTint))
	}
	if _, ok := core.ParseColor(c.HUD.Color); !ok {
		errs = append(errs, fmt.Errorf("unknown hud.color %q", c.HUD.Color))
	}
	if c.Input.HoldMillis < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMillis))
	}

	for _, key := range []string{"left", "turn", "right"} {
		if _, ok := c.Animation(key); !ok {
			errs = append(errs, fmt.Errorf("missing animation %q", key))
		}
	}
	for _, a := range c.Animations {
		if a.Start < 0 || a.End >= PlayerFrames || a.Start > a.End {
			errs = append(errs, fmt.Errorf("animation %q frames %d-%d outside spritesheet", a.Key, a.Start, a.End))
		}
		if a.FrameRate <= 0 {
			errs = append(errs, fmt.Errorf("animation %q frame_rate must be positive", a.Key))
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
