package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/acorn-drop/internal/storage"
)

type fakeReader struct {
	runs    []storage.RunRecord
	stats   *storage.GameStats
	err     error
	queries int
}

func (r *fakeReader) TopScores(gameID string, limit int) ([]storage.RunRecord, error) {
	r.queries++
	if r.err != nil {
		return nil, r.err
	}
	return r.runs, nil
}

func (r *fakeReader) GetGameStats(gameID string) (*storage.GameStats, error) {
	if r.stats == nil {
		return nil, errors.New("no stats")
	}
	return r.stats, nil
}

func sampleReader() *fakeReader {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakeReader{
		runs: []storage.RunRecord{
			{GameID: "acorns", RunID: "a", Player: "alice", Score: 12, Ticks: 3600, CreatedAt: at},
			{GameID: "acorns", RunID: "b", Player: "", Score: 4, Ticks: 90, CreatedAt: at},
		},
		stats: &storage.GameStats{GamesCount: 2, HighScore: 12, AvgScore: 8, LastPlayed: at},
	}
}

func TestScoreboardLoadsRuns(t *testing.T) {
	reader := sampleReader()
	m := NewScoreboardModel(reader, "acorns", "Acorn Drop", 80, 24)

	if len(m.Runs()) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(m.Runs()))
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Acorn Drop", "alice", "1:00", "2 runs"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestScoreboardEmptyStates(t *testing.T) {
	tests := []struct {
		name   string
		reader ScoreReader
		want   string
	}{
		{"no store", nil, "Scores are not being saved."},
		{"no runs", &fakeReader{}, "No scores recorded yet."},
		{"load error", &fakeReader{err: errors.New("locked")}, "locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.reader, "acorns", "Acorn Drop", 80, 24)
			if view := m.View(); !strings.Contains(view, tt.want) {
				t.Errorf("view should contain %q:\n%s", tt.want, view)
			}
		})
	}
}

func TestScoreboardRefresh(t *testing.T) {
	reader := sampleReader()
	m := NewScoreboardModel(reader, "acorns", "Acorn Drop", 80, 24)

	updateBoard(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if reader.queries != 2 {
		t.Errorf("refresh should reload, queries = %d", reader.queries)
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(sampleReader(), "acorns", "Acorn Drop", 80, 24)

	m, cmd := updateBoard(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}
	if cmd != nil {
		t.Error("an embedded scoreboard should not quit the program on back")
	}

	standalone := NewScoreboardModel(sampleReader(), "acorns", "Acorn Drop", 80, 24)
	standalone.standalone = true
	if _, cmd := updateBoard(standalone, tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("a standalone scoreboard should quit on back")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(sampleReader(), "acorns", "Acorn Drop", 80, 24)

	m, cmd := updateBoard(m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60, "0:01"},
		{3600, "1:00"},
		{3660 * 2, "2:02"},
	}
	for _, tt := range tests {
		if got := formatTicks(tt.ticks); got != tt.want {
			t.Errorf("formatTicks(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("text wider than width should be unchanged, got %q", got)
	}
}
