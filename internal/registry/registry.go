// Package registry maps game ids to factories. Game packages register in
// init, and hosts look them up by id so the CLI and the SSH server need no
// compile-time list of games.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is a playable session driven by a host at a fixed tick rate.
// Implementations hold pure game logic; input mapping, timing and
// terminal output belong to the host.
type Game interface {
	// ID is the registry key, e.g. "2048".
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the input collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the game may clear first.
	Render(dst *core.Screen)

	// State reports score, game over and pause status.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on a duplicate id, since
// that is a programming error caught at init.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns the registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
