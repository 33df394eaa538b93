// Package registry provides a global registry of playable modes. Modes
// register themselves in init() functions, allowing the platform and CLI
// to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Mode describes one selectable way to play. All modes share the same
// engine and rules; they differ only in how the session seed is derived,
// which is what makes a run reproducible or shared.
type Mode struct {
	// ID is the unique identifier used for CLI commands and result
	// storage (e.g., "classic", "daily").
	ID string

	// Title is a human-readable name for display.
	Title string

	// Tagline is a one-line description shown in menus.
	Tagline string

	// Seed derives the engine seed for a new run. The requested value
	// comes from the user (0 means none requested); modes are free to
	// ignore it.
	Seed func(now time.Time, requested int64) int64
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

// Register adds a mode to the registry. Typically called from an init()
// function. Panics if the mode is incomplete or the ID is already taken.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	if m.ID == "" || m.Seed == nil {
		panic(fmt.Sprintf("registry: mode %q is incomplete", m.ID))
	}
	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}

	modes[m.ID] = m
}

// List returns all registered modes, sorted by ID.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Mode, 0, len(modes))
	for _, m := range modes {
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the mode with the given ID.
// Returns an error if no such mode is registered.
func Lookup(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("registry: unknown mode %q", id)
	}

	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
