package tui

import (
	"time"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// DefaultHoldWindow is how long a single key press counts as held.
const DefaultHoldWindow = 200 * time.Millisecond

// HoldTracker turns key presses into held keys. Terminals report only
// presses and auto-repeats, never releases, so a key counts as held until
// the window after its latest press has passed.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker; a non-positive window uses the default.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press marks a as held from now. Pressing one horizontal direction
// releases the other.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// Release forgets a held action.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.until, a)
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.until)
}

// Held reports whether a is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Frame returns the actions held at now and drops the expired ones.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return frame
}

// Window returns the hold duration.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}
