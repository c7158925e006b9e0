package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/acorn-drop/internal/core"
	"github.com/vovakirdan/acorn-drop/internal/registry"
	"github.com/vovakirdan/acorn-drop/internal/storage"
)

// SessionModel is the top-level model of one player's session. It runs
// the game and switches to the scoreboard on request after a game over.
type SessionModel struct {
	game    Model
	board   ScoreboardModel
	reader  ScoreReader
	gameID  string
	title   string
	width   int
	height  int
	inBoard bool
}

// NewSessionModel creates a session for game. store may be nil.
func NewSessionModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) SessionModel {
	return newSessionModel(game, recorderOf(store), readerOf(store), cfg, opts...)
}

func newSessionModel(game registry.Game, recorder ScoreRecorder, reader ScoreReader, cfg core.RuntimeConfig, opts ...Option) SessionModel {
	return SessionModel{
		game:   NewModel(game, recorder, cfg, opts...),
		reader: reader,
		gameID: game.ID(),
		title:  game.Title(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the game or the scoreboard. Ticks always go
// to the game so its loop keeps running behind the scoreboard.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		var cmd tea.Cmd
		m.game, cmd = updateModel(m.game, msg)
		if m.inBoard {
			m.board, _ = updateBoard(m.board, msg)
		}
		return m, cmd
	}

	if _, ok := msg.(tea.KeyMsg); ok && m.inBoard {
		var cmd tea.Cmd
		m.board, cmd = updateBoard(m.board, msg)
		if m.board.IsGoingBack() {
			m.inBoard = false
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.game, cmd = updateModel(m.game, msg)
	if m.game.WantsScoreboard() {
		m.game.wantScoreboard = false
		m.board = NewScoreboardModel(m.reader, m.gameID, m.title, m.width, m.height)
		m.inBoard = true
	}
	return m, cmd
}

func updateModel(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	if gm, ok := next.(Model); ok {
		m = gm
	}
	return m, cmd
}

func updateBoard(b ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	next, cmd := b.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		b = sb
	}
	return b, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.inBoard {
		return m.board.View()
	}
	return m.game.View()
}

// InScoreboard reports whether the scoreboard is showing.
func (m SessionModel) InScoreboard() bool {
	return m.inBoard
}
