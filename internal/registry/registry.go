// Package registry keeps the games the arcade platform can run.
// Games register a factory from init(), so commands look them up by ID
// instead of importing each one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/acorn-drop/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic;
// the platform owns timing, key mapping, rendering to the terminal and
// score persistence.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a fresh run. Called once before the first Step and
	// again whenever the player restarts from the platform.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the keys held during it.
	// Events in the result describe what happened in that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen the platform has already cleared.
	Render(dst *core.Screen)

	// State reports score, run ID and game over / pause flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on a duplicate id, which
// can only happen through a programming error in an init function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
