package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "up", "w", "k", " ":
		return core.ActionJump, false
	case "down", "s", "j":
		return core.ActionDuck, false
	case "enter":
		return core.ActionConfirm, false
	case "esc", "b":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// IsHoldable reports whether an action models a key that stays down,
// as opposed to a one-shot command.
func IsHoldable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionDuck:
		return true
	}
	return false
}
