// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Factory creates a new Target with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Target, error)

// RegistryEntry represents a registered output format.
type RegistryEntry struct {
	// Name is the unique identifier for this format, also used as the file
	// extension ("png", "svg").
	Name string

	// Priority determines the default format (higher = preferred).
	Priority int

	// Factory creates target instances.
	Factory Factory
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered output formats.
//
// Format packages register themselves from init, following the
// database/sql driver pattern:
//
//	import (
//	    "github.com/gogpu/statsring/surface"
//	    _ "github.com/gogpu/statsring/surface/raster" // Registers "png"
//	    _ "github.com/gogpu/statsring/surface/svg"    // Registers "svg"
//	)
//
//	t, err := surface.New("svg", surface.Options{Width: 400, Height: 400})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a format to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Unregister removes a format from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered format names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// New creates a target using a named format.
func New(name string, opts Options) (Target, error) {
	return globalRegistry.New(name, opts)
}

// NewDefault creates a target using the highest priority format.
func NewDefault(opts Options) (Target, error) {
	return globalRegistry.NewDefault(opts)
}

// FormatForPath returns the registered format named by the extension of
// path, or "" when none matches.
func FormatForPath(path string) string {
	return globalRegistry.FormatForPath(path)
}

// Register adds a format to this registry.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	r.entries[name] = &RegistryEntry{
		Name:     name,
		Priority: priority,
		Factory:  factory,
	}
}

// Unregister removes a format from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered format names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

// Get returns information about a specific format.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// New creates a target using a specific format.
func (r *Registry) New(name string, opts Options) (Target, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidSize
	}

	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &FormatNotFoundError{Name: name}
	}
	return entry.Factory(opts)
}

// NewDefault creates a target using the highest priority format.
func (r *Registry) NewDefault(opts Options) (Target, error) {
	r.mu.RLock()
	names := r.sortedNames()
	r.mu.RUnlock()

	if len(names) == 0 {
		return nil, ErrNoFormat
	}
	return r.New(names[0], opts)
}

// FormatForPath returns the format named by the extension of path.
func (r *Registry) FormatForPath(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	ext := strings.ToLower(path[i+1:])

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.entries[ext]; ok {
		return ext
	}
	return ""
}

// sortedNames returns format names sorted by priority (highest first), then
// by name. Must be called with lock held.
func (r *Registry) sortedNames() []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Errors.
var (
	// ErrNoFormat is returned when no output formats are registered.
	ErrNoFormat = errors.New("surface: no format registered")

	// ErrInvalidSize is returned for non-positive target dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")
)

// FormatNotFoundError indicates a named format is not registered.
type FormatNotFoundError struct {
	Name string
}

func (e *FormatNotFoundError) Error() string {
	return "surface: format not found: " + e.Name
}
