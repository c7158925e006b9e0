package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	game := &scriptedGame{}
	m := newSessionModel(game, nil, sampleReader(), testConfig())
	m.Init()

	game.endWith(3)
	m = updateSession(m, TickMsg(time.Now()))

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.InScoreboard() {
		t.Fatal("tab at game over should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Errorf("scoreboard view expected:\n%s", m.View())
	}

	steps := game.steps
	m = updateSession(m, TickMsg(time.Now()))
	if game.steps != steps+1 {
		t.Error("ticks should keep reaching the game behind the scoreboard")
	}

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InScoreboard() {
		t.Error("esc should return to the game")
	}
	if !strings.Contains(m.View(), "score 3") {
		t.Errorf("game view expected after returning:\n%s", m.View())
	}

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.InScoreboard() {
		t.Error("the scoreboard should open again")
	}
}

func TestSessionKeysGoToGameWhilePlaying(t *testing.T) {
	game := &scriptedGame{}
	m := newSessionModel(game, nil, nil, testConfig())
	m.Init()

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.InScoreboard() {
		t.Error("tab should not open the scoreboard mid-run")
	}

	m = updateSession(m, runeKey('p'))
	updateSession(m, TickMsg(time.Now()))
	if game.steps != 1 {
		t.Errorf("expected one step, got %d", game.steps)
	}
}

func TestSessionWindowSize(t *testing.T) {
	m := newSessionModel(&scriptedGame{}, nil, nil, testConfig())
	m.Init()

	m = updateSession(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 100 || m.height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.width, m.height)
	}
	if m.game.screen.Width() != 100 {
		t.Error("window size should reach the game model")
	}
}
