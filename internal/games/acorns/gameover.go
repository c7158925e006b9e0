package acorns

import (
	"fmt"

	"github.com/vovakirdan/acorn-drop/internal/config"
	"github.com/vovakirdan/acorn-drop/internal/core"
	"github.com/vovakirdan/acorn-drop/internal/engine"
)

// GameOver shows the final score of an ended session and waits for a
// restart.
type GameOver struct {
	cfg  config.AcornsConfig
	data GameOverData
}

func newGameOver(cfg config.AcornsConfig) *GameOver {
	return &GameOver{cfg: cfg}
}

// Key implements engine.Scene.
func (g *GameOver) Key() string {
	return GameOverKey
}

// Preload implements engine.Scene.
func (g *GameOver) Preload(*engine.Loader) {}

// Create implements engine.Scene.
func (g *GameOver) Create(sys *engine.Systems, data any) {
	switch d := data.(type) {
	case GameOverData:
		g.data = d
	case *GameOverData:
		g.data = *d
	}

	midX := g.cfg.World.Width / 2
	midY := g.cfg.World.Height / 2
	lines := []struct {
		text  string
		dy    float64
		color core.Color
	}{
		{"GAME OVER", -75, core.ColorBrightRed},
		{fmt.Sprintf("Score: %d", g.data.Score), 0, core.ColorBrightWhite},
		{"Press R or Enter to play again", 75, core.ColorGray},
	}
	for _, l := range lines {
		t := sys.AddText(midX, midY+l.dy, l.text, engine.TextStyle{Color: l.color})
		t.Centered = true
	}
}

// Update implements engine.Scene.
func (g *GameOver) Update(sys *engine.Systems, in core.InputFrame) {
	if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		sys.Start(SessionKey, nil)
	}
}

// Score returns the score handed over by the session.
func (g *GameOver) Score() int {
	return g.data.Score
}
