package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/acorn-drop/internal/core"
	"github.com/vovakirdan/acorn-drop/internal/registry"
	"github.com/vovakirdan/acorn-drop/internal/storage"
)

//go:generate go tool mockgen -destination=mocks/score_recorder_mock.go -package=mocks . ScoreRecorder

// ScoreRecorder persists finished runs.
type ScoreRecorder interface {
	SaveRun(rec storage.RunRecord) (int64, error)
}

// recorderOf avoids wrapping a nil store in a non-nil interface.
func recorderOf(store *storage.Store) ScoreRecorder {
	if store == nil {
		return nil
	}
	return store
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	recorder  ScoreRecorder
	logger    *log.Logger
	config    core.RuntimeConfig
	player    string
	keyMapper *KeyMapper
	hold      *HoldTracker
	now       func() time.Time

	pressed   core.InputFrame // One-shot actions since the last tick
	gameState core.GameState
	savedRun  string // Run ID of the last run handed to the recorder

	quitting       bool
	wantScoreboard bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger game events and save failures go to.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithPlayer sets the player name stored with each run.
func WithPlayer(name string) Option {
	return func(m *Model) { m.player = name }
}

// WithHoldWindow sets how long a key press counts as held.
func WithHoldWindow(d time.Duration) Option {
	return func(m *Model) { m.hold = NewHoldTracker(d) }
}

// WithClock replaces time.Now for held-key bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates a new Bubble Tea model for the given game.
// recorder may be nil, in which case runs are not saved.
func NewModel(game registry.Game, recorder ScoreRecorder, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:  recorder,
		logger:    log.New(io.Discard),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(DefaultHoldWindow),
		now:       time.Now,
		pressed:   core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case "tab":
		if m.gameState.GameOver {
			m.wantScoreboard = true
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHoldable(action):
		m.hold.Press(action, m.now())
	default:
		m.pressed.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step with the keys held at this instant.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pressed.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	in := m.hold.Frame(m.now())
	for _, a := range []core.Action{core.ActionConfirm, core.ActionBack, core.ActionPause, core.ActionRestart} {
		if m.pressed.Has(a) {
			in.Set(a)
		}
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.logEvents(result.Events)

	if m.gameState.GameOver {
		m.saveRun()
	}

	m.pressed.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.hold.Reset()
	m.pressed.Clear()
	m.logger.Info("run restarted", "game", m.game.ID(), "run", m.gameState.RunID)
}

// saveRun hands a finished run to the recorder once per run ID.
func (m *Model) saveRun() {
	state := m.gameState
	if state.RunID == "" || state.RunID == m.savedRun {
		return
	}
	m.savedRun = state.RunID

	m.logger.Info("game over",
		"game", m.game.ID(),
		"run", state.RunID,
		"score", state.Score,
		"ticks", state.Ticks,
	)

	if m.recorder == nil || state.Score <= 0 {
		return
	}
	_, err := m.recorder.SaveRun(storage.RunRecord{
		GameID: m.game.ID(),
		RunID:  state.RunID,
		Player: m.player,
		Score:  state.Score,
		Ticks:  state.Ticks,
	})
	if err != nil && !errors.Is(err, storage.ErrDuplicateRun) {
		m.logger.Error("could not save run", "run", state.RunID, "error", err)
	}
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		kv := []any{"run", m.gameState.RunID, "score", e.Score}
		if e.Detail != "" {
			kv = append(kv, "detail", e.Detail)
		}
		m.logger.Debug(string(e.Kind), kv...)
	}
}

// saveScreenshot writes the current screen under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m Model) WantsScoreboard() bool {
	return m.wantScoreboard
}

// Run starts a local session for game with the alternate screen.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewSessionModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
