// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import "time"

// AcornsConfig contains all configuration for the Acorn Drop game.
// Positions and sizes are world units; the world is projected onto the
// terminal at render time.
type AcornsConfig struct {
	World      WorldConfig     `yaml:"world"`
	Player     PlayerConfig    `yaml:"player"`
	Platform   PlatformConfig  `yaml:"platform"`
	Acorns     AcornConfig     `yaml:"acorns"`
	Animations []AnimationSpec `yaml:"animations"`
	HUD        HUDConfig       `yaml:"hud"`
	Input      InputConfig     `yaml:"input"`
}

// WorldConfig defines the play field and global physics.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Gravity  float64 `yaml:"gravity"`   // Downward acceleration, units/s²
	CellSize int     `yaml:"cell_size"` // Broad-phase cell size of the collision space
}

// PlayerConfig defines the player sprite and its movement.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"` // Center of the sprite
	StartY       float64 `yaml:"start_y"`
	FrameWidth   float64 `yaml:"frame_width"`
	FrameHeight  float64 `yaml:"frame_height"`
	Bounce       float64 `yaml:"bounce"`
	Speed        float64 `yaml:"speed"`         // Horizontal speed while a direction is held
	JumpVelocity float64 `yaml:"jump_velocity"` // Vertical velocity applied on jump (negative = up)
	DefeatTint   string  `yaml:"defeat_tint"`
}

// PlatformConfig defines the static ground.
type PlatformConfig struct {
	X      float64 `yaml:"x"` // Center of the sprite
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"` // Unscaled image size
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// AcornConfig defines the collectible batch.
type AcornConfig struct {
	Count  int     `yaml:"count"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinX   int     `yaml:"min_x"` // Inclusive range for the random spawn X
	MaxX   int     `yaml:"max_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// AnimationSpec declares a named frame sequence of the player spritesheet.
type AnimationSpec struct {
	Key       string `yaml:"key"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	FrameRate int    `yaml:"frame_rate"`
	Repeat    int    `yaml:"repeat"` // -1 loops forever
}

// HUDConfig defines the score label.
type HUDConfig struct {
	ScoreX   float64 `yaml:"score_x"`
	ScoreY   float64 `yaml:"score_y"`
	FontSize int     `yaml:"font_size"`
	Color    string  `yaml:"color"`
}

// InputConfig defines how terminal key presses become held keys.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"`
}

// HoldWindow returns hold_ms as a duration. Zero means the platform default.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMillis) * time.Millisecond
}

// Animation returns the spec with the given key.
func (c AcornsConfig) Animation(key string) (AnimationSpec, bool) {
	for _, a := range c.Animations {
		if a.Key == key {
			return a, true
		}
	}
	return AnimationSpec{}, false
}
