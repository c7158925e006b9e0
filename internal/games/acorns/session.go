package acorns

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/acorn-drop/internal/config"
	"github.com/vovakirdan/acorn-drop/internal/core"
	"github.com/vovakirdan/acorn-drop/internal/engine"
)

// Scene keys.
const (
	SessionKey  = "session"
	GameOverKey = "gameover"
)

// Animation keys of the player spritesheet.
const (
	animLeft  = "left"
	animTurn  = "turn"
	animRight = "right"
)

// sessionState is Running until the first acorn lands, then Ended for
// the rest of the instance.
type sessionState int

const (
	stateRunning sessionState = iota
	stateEnded
)

func (s sessionState) String() string {
	if s == stateEnded {
		return "ended"
	}
	return "running"
}

// GameOverData is handed from an ended session to the game-over scene.
type GameOverData struct {
	Score int
	RunID string
	Ticks int
}

// Session is one run of the game: the player catches falling acorns
// until one of them reaches the platform.
type Session struct {
	cfg config.AcornsConfig
	sys *engine.Systems

	runID     string
	player    *engine.Sprite
	platforms *engine.Group
	acorns    *engine.Group
	scoreText *engine.Text

	score     int
	state     sessionState
	handedOff bool
}

func newSession(cfg config.AcornsConfig) *Session {
	return &Session{cfg: cfg}
}

// Key implements engine.Scene.
func (s *Session) Key() string {
	return SessionKey
}

// Preload implements engine.Scene.
func (s *Session) Preload(l *engine.Loader) {
	l.Image(keySky, skyTexture(s.cfg))
	l.Image(keyGround, groundTexture(s.cfg))
	l.Image(keyAcorn, acornTexture(s.cfg))
	l.Spritesheet(keyDude, dudeTexture(s.cfg))
}

// Create implements engine.Scene.
func (s *Session) Create(sys *engine.Systems, _ any) {
	cfg := s.cfg
	s.sys = sys
	s.runID = uuid.NewString()
	s.score = 0
	s.state = stateRunning

	sys.AddImage(cfg.World.Width/2, cfg.World.Height/2, keySky)

	s.platforms = sys.AddStaticGroup()
	s.platforms.Create(cfg.Platform.X, cfg.Platform.Y, keyGround).
		SetScale(cfg.Platform.Scale).
		RefreshBody()

	s.player = sys.AddSprite(cfg.Player.StartX, cfg.Player.StartY, keyDude)
	s.player.Bounce = cfg.Player.Bounce
	s.player.CollideWorldBounds = true
	sys.World.Gravity = cfg.World.Gravity

	for _, a := range cfg.Animations {
		// Duplicate keys keep the first declaration
		_ = sys.Anims.Create(engine.Animation{
			Key:       a.Key,
			Frames:    engine.GenerateFrameNumbers(a.Start, a.End),
			FrameRate: a.FrameRate,
			Repeat:    a.Repeat,
		})
	}

	s.acorns = sys.AddGroup()
	for range cfg.Acorns.Count {
		s.acorns.Create(s.spawnX(), cfg.Acorns.SpawnY, keyAcorn)
	}

	hudColor, _ := core.ParseColor(cfg.HUD.Color)
	s.scoreText = sys.AddText(cfg.HUD.ScoreX, cfg.HUD.ScoreY, "Score: 0", engine.TextStyle{
		Color:    hudColor,
		FontSize: cfg.HUD.FontSize,
	})

	sys.Collider(s.player, s.platforms, nil)
	sys.Collider(s.acorns, s.platforms, s.itemLands)
	sys.Overlap(s.player, s.acorns, s.collect)
}

// Update implements engine.Scene.
func (s *Session) Update(sys *engine.Systems, in core.InputFrame) {
	if s.state == stateEnded {
		if !s.handedOff {
			s.handedOff = true
			sys.Start(GameOverKey, GameOverData{Score: s.score, RunID: s.runID, Ticks: sys.Ticks()})
		}
		return
	}

	keys := engine.Cursors(in)
	switch {
	case keys.Left:
		s.player.SetVelocityX(-s.cfg.Player.Speed)
		s.player.Anims.Play(animLeft, true)
	case keys.Right:
		s.player.SetVelocityX(s.cfg.Player.Speed)
		s.player.Anims.Play(animRight, true)
	default:
		s.player.SetVelocityX(0)
		s.player.Anims.Play(animTurn, false)
	}

	if keys.Up && s.player.Grounded() {
		s.player.SetVelocityY(s.cfg.Player.JumpVelocity)
	}
}

// collect runs when the player overlaps an active acorn.
func (s *Session) collect(_, item *engine.Body) {
	if !item.Enabled() {
		return
	}
	item.Owner().DisableBody(true, true)

	s.score++
	s.scoreText.SetText(fmt.Sprintf("Score: %d", s.score))
	s.sys.Emit(core.Event{Kind: core.EventCollect, Score: s.score})

	if s.acorns.CountActive() == 0 {
		for _, child := range s.acorns.Children() {
			child.EnableBody(true, s.spawnX(), s.cfg.Acorns.SpawnY, true, true)
		}
		s.sys.Emit(core.Event{
			Kind:   core.EventBatchReset,
			Score:  s.score,
			Detail: fmt.Sprintf("%d acorns", len(s.acorns.Children())),
		})
	}
}

// itemLands runs when an acorn touches the platform. Physics stays
// paused for the rest of this session instance.
func (s *Session) itemLands(_, _ *engine.Body) {
	if s.state == stateEnded {
		return
	}
	s.sys.World.Pause()
	if tint, ok := core.ParseColor(s.cfg.Player.DefeatTint); ok {
		s.player.SetTint(tint)
	}
	s.player.Anims.Play(animTurn, false)
	s.state = stateEnded
	s.sys.Emit(core.Event{Kind: core.EventItemLanded, Score: s.score})
}

func (s *Session) spawnX() float64 {
	return float64(s.sys.Rand.Between(s.cfg.Acorns.MinX, s.cfg.Acorns.MaxX))
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Ended reports whether an acorn has landed.
func (s *Session) Ended() bool {
	return s.state == stateEnded
}

// RunID returns the identifier assigned when the session was created.
func (s *Session) RunID() string {
	return s.runID
}
