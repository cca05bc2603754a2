// Package registry provides a global registry of named board setups.
// Built-in setups register themselves in init(); setups from the YAML
// config are added at startup with RegisterConfig.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/config"
)

// SetupInfo contains metadata about a registered setup.
type SetupInfo struct {
	ID     string
	Title  string
	Pieces int
}

// Factory returns a fresh copy of a setup.
type Factory func() board.Setup

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a setup factory to the registry.
// Typically called from an init() function.
// Panics if a setup with the same ID is already registered.
func Register(id, title string, f Factory) {
	if err := add(id, title, f); err != nil {
		panic(err)
	}
}

// RegisterConfig adds the user-defined setups of cfg.
// Unlike Register it reports clashes as errors, since they come from user input.
func RegisterConfig(cfg config.ChessboardConfig) error {
	for _, sc := range cfg.Setups {
		setup, err := sc.ToSetup()
		if err != nil {
			return err
		}
		title := sc.Title
		if title == "" {
			title = sc.ID
		}
		if err := add(sc.ID, title, func() board.Setup { return setup.With() }); err != nil {
			return err
		}
	}
	return nil
}

func add(id, title string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		return fmt.Errorf("registry: setup %q already registered", id)
	}
	entries[id] = entry{title: title, factory: f}
	return nil
}

// List returns information about all registered setups, sorted by ID.
func List() []SetupInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SetupInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, SetupInfo{
			ID:     id,
			Title:  e.title,
			Pieces: len(e.factory()),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a fresh copy of the setup with the given ID.
func Create(id string) (board.Setup, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown setup %q", id)
	}
	return e.factory(), nil
}

// Title returns the display name of a setup, or the ID when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}

// Exists checks if a setup with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Suggest returns the registered ID closest to id by edit distance, or ""
// when nothing is reasonably close.
func Suggest(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	best, bestDist := "", 0
	for candidate := range entries {
		d := levenshtein.ComputeDistance(id, candidate)
		if best == "" || d < bestDist || (d == bestDist && candidate < best) {
			best, bestDist = candidate, d
		}
	}
	if best == "" || bestDist > len(best)/2 {
		return ""
	}
	return best
}
