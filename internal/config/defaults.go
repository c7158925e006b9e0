package config

import (
	_ "embed"
)

//go:embed defaults/acorns.yaml
var defaultAcornsYAML []byte

// PlayerFrames is the number of frames in the player spritesheet.
const PlayerFrames = 9

// DefaultAcornsConfig returns the default Acorn Drop configuration.
func DefaultAcornsConfig() AcornsConfig {
	return AcornsConfig{
		World: WorldConfig{
			Width:    800,
			Height:   600,
			Gravity:  300,
			CellSize: 16,
		},
		Player: PlayerConfig{
			StartX:       400,
			StartY:       510,
			FrameWidth:   32,
			FrameHeight:  48,
			Bounce:       0.2,
			Speed:        300,
			JumpVelocity: -330,
			DefeatTint:   "red",
		},
		Platform: PlatformConfig{
			X:      400,
			Y:      568,
			Width:  400,
			Height: 32,
			Scale:  2,
		},
		Acorns: AcornConfig{
			Count:  1, // a group created from a single key holds one child
			Width:  24,
			Height: 24,
			MinX:   12,
			MaxX:   700,
			SpawnY: 0,
		},
		Animations: []AnimationSpec{
			{Key: "left", Start: 0, End: 3, FrameRate: 10, Repeat: -1},
			{Key: "turn", Start: 4, End: 4, FrameRate: 20, Repeat: 0},
			{Key: "right", Start: 5, End: 8, FrameRate: 10, Repeat: -1},
		},
		HUD: HUDConfig{
			ScoreX:   16,
			ScoreY:   500,
			FontSize: 32,
			Color:    "default",
		},
		Input: InputConfig{
			HoldMillis: 200,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "acorns":
		return defaultAcornsYAML
	default:
		return nil
	}
}
