package tui

import (
	"testing"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.Clear()
	s.DrawTextColor(0, 0, "Score: 3", core.ColorBrown)
	s.DrawText(2, 1, "ok")

	// Tests run without a colour profile, so styles render as plain text
	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown colour should render unstyled, got %q", got)
	}
}
