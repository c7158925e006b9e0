package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// palette holds the terminal colour of each core.Color, indexed by value.
// ColorDefault stays empty and renders unstyled.
var palette = [...]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
}

var styles = buildStyles()

func buildStyles() []lipgloss.Style {
	out := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		out[i] = lipgloss.NewStyle()
		if c != "" {
			out[i] = out[i].Foreground(c)
		}
	}
	return out
}

// styleFor returns the style of c; unknown colours render unstyled.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(styles) {
		return styles[c]
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes row y as runs of same-coloured cells, one escape
// sequence per run.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	runColor := core.ColorDefault
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
