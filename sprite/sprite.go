// Package sprite holds the ASCII-art frame tables for every animated
// actor. Frames are authored in YAML, embedded at build time, and loaded
// once into an immutable registry; preview tooling may overlay an
// external pack on top of the embedded one.
package sprite

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed sprites.yaml
var embedded []byte

// pack is the on-disk shape of a sprite pack: a flat map from frame key
// to rows of monospace art. Spaces are transparent when blitted.
type pack struct {
	Sprites map[string][]string `yaml:"sprites"`
}

var (
	mu     sync.RWMutex
	frames map[string][]string
)

func init() {
	p, err := parse(embedded)
	if err != nil {
		// Embedded data is part of the build; failing to parse it is a
		// programmer error, not a runtime condition.
		panic(fmt.Sprintf("sprite: embedded pack: %v", err))
	}
	frames = p.Sprites
}

func parse(data []byte) (*pack, error) {
	var p pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if len(p.Sprites) == 0 {
		return nil, fmt.Errorf("pack defines no sprites")
	}
	return &p, nil
}

// Get returns the art rows for a frame key, or nil if the key is unknown.
// Callers must not mutate the returned slice.
func Get(key string) []string {
	mu.RLock()
	defer mu.RUnlock()
	return frames[key]
}

// Has reports whether a frame key exists in the registry.
func Has(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := frames[key]
	return ok
}

// Keys returns all registered frame keys, sorted.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()

	keys := make([]string, 0, len(frames))
	for k := range frames {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadPack overlays an external YAML pack onto the registry. Existing
// keys are replaced, new keys added; keys absent from the pack keep
// their embedded art. Used by the preview tool for art iteration.
func LoadPack(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sprite pack: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return fmt.Errorf("parse sprite pack %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	for k, v := range p.Sprites {
		frames[k] = v
	}
	return nil
}

// Reset restores the registry to the embedded pack only, discarding any
// overlaid entries.
func Reset() {
	p, err := parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("sprite: embedded pack: %v", err))
	}

	mu.Lock()
	defer mu.Unlock()
	frames = p.Sprites
}
