// Package demos provides a registry of built-in example programs.
// Programs register themselves in init() functions, allowing the CLI
// and the playground to discover them without hardcoded lists.
package demos

import (
	"fmt"
	"sort"
	"sync"
)

// Demo is a named, ready-to-run program.
type Demo struct {
	ID     string // Short identifier used on the command line.
	Title  string // Human-readable name for listings.
	Source string // The program itself.
}

var (
	registry = make(map[string]Demo)
	mu       sync.RWMutex
)

// Register adds a demo to the registry.
// Panics if a demo with the same ID is already registered.
func Register(d Demo) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[d.ID]; exists {
		panic(fmt.Sprintf("demos: %q already registered", d.ID))
	}
	registry[d.ID] = d
}

// List returns all registered demos, sorted by ID.
func List() []Demo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Demo, 0, len(registry))
	for _, d := range registry {
		result = append(result, d)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the demo with the given ID.
func Get(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := registry[id]
	if !ok {
		return Demo{}, fmt.Errorf("demos: unknown demo %q", id)
	}
	return d, nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registry[id]
	return ok
}
