// Package acorns implements Acorn Drop, a platformer where the player
// catches acorns falling from the sky. The run ends as soon as an acorn
// reaches the ground.
package acorns

import (
	"github.com/vovakirdan/acorn-drop/internal/config"
	"github.com/vovakirdan/acorn-drop/internal/core"
	"github.com/vovakirdan/acorn-drop/internal/engine"
	"github.com/vovakirdan/acorn-drop/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "acorns"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game hosts the session and game-over scenes behind the arcade's game
// interface. One Game is created per player and owns everything the
// scenes share.
type Game struct {
	runtime     core.RuntimeConfig
	cfg         config.AcornsConfig
	fixedConfig bool // Set by NewWithConfig; Reset keeps cfg
	director    *engine.Director
	err         error
	paused      bool
}

// New creates a new Acorn Drop game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.AcornsConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Acorn Drop"
}

// Reset builds a fresh director and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedConfig {
		cfg, err := config.LoadAcorns(configPath)
		if err != nil {
			cfg = config.DefaultAcornsConfig()
		}
		g.cfg = cfg
	}
	cfg := g.cfg

	g.director = engine.NewDirector(runtime, engine.WorldSpec{
		Width:    cfg.World.Width,
		Height:   cfg.World.Height,
		CellSize: cfg.World.CellSize,
	})
	g.director.Add(SessionKey, func() engine.Scene { return newSession(cfg) })
	g.director.Add(GameOverKey, func() engine.Scene { return newGameOver(cfg) })

	g.paused = false
	g.err = g.director.Start(SessionKey, nil)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.director == nil || g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.State().GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.director.Step(in)
	if err := g.director.Err(); err != nil {
		g.err = err
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.director.DrainEvents(),
	}
}

// Render draws the running scene to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		return
	}
	if g.director == nil {
		return
	}
	g.director.Render(dst)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
		dst.DrawTextCentered(dst.Height()/2+1, " Press P to resume ")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{Paused: g.paused}
	if g.director == nil {
		return state
	}

	switch sc := g.director.Current().(type) {
	case *Session:
		state.Score = sc.Score()
		state.GameOver = sc.Ended()
		state.RunID = sc.RunID()
		if sys := g.director.Systems(); sys != nil {
			state.Ticks = sys.Ticks()
		}
	case *GameOver:
		state.Score = sc.Score()
		state.GameOver = true
		state.RunID = sc.data.RunID
		state.Ticks = sc.data.Ticks
	}
	return state
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.AcornsConfig {
	return g.cfg
}

// Scene returns the running scene.
func (g *Game) Scene() engine.Scene {
	if g.director == nil {
		return nil
	}
	return g.director.Current()
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
