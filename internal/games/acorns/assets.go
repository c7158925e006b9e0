package acorns

import (
	"github.com/vovakirdan/acorn-drop/internal/config"
	"github.com/vovakirdan/acorn-drop/internal/core"
	"github.com/vovakirdan/acorn-drop/internal/engine"
)

// Texture keys.
const (
	keySky    = "sky"
	keyGround = "ground"
	keyDude   = "dude"
	keyAcorn  = "acorn"
)

// skyTexture is a sparse star field tiled over the whole world.
func skyTexture(cfg config.AcornsConfig) engine.Texture {
	return engine.Texture{
		FrameW: cfg.World.Width,
		FrameH: cfg.World.Height,
		Frames: [][]string{{
			"            .                   ",
			"                        .       ",
			"   .                            ",
			"                 .              ",
			"                             .  ",
			"       .                        ",
		}},
		Color: core.ColorGray,
		Tile:  true,
	}
}

// groundTexture is the unscaled platform image.
func groundTexture(cfg config.AcornsConfig) engine.Texture {
	return engine.Texture{
		FrameW: cfg.Platform.Width,
		FrameH: cfg.Platform.Height,
		Frames: [][]string{{
			"▀",
			"█",
		}},
		Color: core.ColorGreen,
		Tile:  true,
	}
}

// dudeTexture is the player spritesheet: walk left 0-3, idle 4, walk
// right 5-8.
func dudeTexture(cfg config.AcornsConfig) engine.Texture {
	return engine.Texture{
		FrameW: cfg.Player.FrameWidth,
		FrameH: cfg.Player.FrameHeight,
		Frames: [][]string{
			{"<o ", "/|\\"},
			{"<o ", " |\\"},
			{"<o ", "/| "},
			{"<o ", " | "},
			{" o ", "/|\\"},
			{" o>", "/|\\"},
			{" o>", "/| "},
			{" o>", " |\\"},
			{" o>", " | "},
		},
		Color: core.ColorMagenta,
	}
}

func acornTexture(cfg config.AcornsConfig) engine.Texture {
	return engine.Texture{
		FrameW: cfg.Acorns.Width,
		FrameH: cfg.Acorns.Height,
		Frames: [][]string{{"ô"}},
		Color:  core.ColorBrown,
	}
}
