package presets

import (
	"errors"
	"math/rand"
)

// DefaultID names the preset used when none is requested.
const DefaultID = "default"

// Registry holds loaded presets and provides weighted selection.
type Registry struct {
	presets     []PresetDef
	totalWeight int
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []PresetDef) *Registry {
	totalWeight := 0
	for _, p := range presets {
		totalWeight += p.Weight
	}
	return &Registry{
		presets:     presets,
		totalWeight: totalWeight,
	}
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Pick selects a random preset using weighted probability.
// Returns nil if the registry is empty or has no weight.
func (r *Registry) Pick(rng *rand.Rand) *PresetDef {
	if r.totalWeight <= 0 || len(r.presets) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.presets {
		cumulative += r.presets[i].Weight
		if roll < cumulative {
			return &r.presets[i]
		}
	}

	// Unreachable while weights are non-negative
	return &r.presets[0]
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *PresetDef {
	for i := range r.presets {
		if r.presets[i].ID == id {
			return &r.presets[i]
		}
	}
	return nil
}

// All returns all preset definitions.
func (r *Registry) All() []PresetDef {
	return r.presets
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.presets)
}
