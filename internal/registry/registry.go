// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the platform can
// instantiate them by ID without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/amirjavarsineh/WARMUP/internal/core"
)

// Game is the interface the platform drives. Implementations contain
// pure simulation logic with no terminal dependencies; the platform owns
// input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "coins").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game: loads configuration and the persisted
	// high score, seeds the RNG, and puts the game in its initial mode.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using the input
	// snapshot collected since the previous tick. Signals that make no
	// sense in the current mode are ignored.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer,
	// the explicit render context. The game holds no reference to it
	// between calls.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Probe the title once so List never has to build instances
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
