package presets

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeonleap/internal/world"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	expectedIDs := map[string]bool{"default": false, "sparse": false, "dense": false, "labyrinth": false}
	for _, p := range presets {
		if _, ok := expectedIDs[p.ID]; ok {
			expectedIDs[p.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected preset %q not found", id)
		}
	}
}

func TestPresetsProduceValidParams(t *testing.T) {
	registry := MustLoadRegistry()

	for _, def := range registry.All() {
		t.Run(def.ID, func(t *testing.T) {
			p := def.Apply(world.DefaultParams())
			if err := p.Validate(); err != nil {
				t.Fatalf("Preset %s yields invalid params: %v", def.ID, err)
			}
			layout, err := world.GenerateSeeded(context.Background(), p, 11)
			if err != nil {
				t.Fatalf("Generate with preset %s failed: %v", def.ID, err)
			}
			if len(layout.Rooms()) == 0 {
				t.Errorf("Preset %s produced no rooms", def.ID)
			}
		})
	}
}

func TestApplyOverridesOnlySetFields(t *testing.T) {
	base := world.DefaultParams()
	def := PresetDef{ID: "t", CellCount: 5, LoopRatio: 0.5}

	p := def.Apply(base)

	if p.CellCount != 5 || p.LoopRatio != 0.5 {
		t.Errorf("Overrides not applied: %+v", p)
	}
	if p.Neighbors != base.Neighbors || p.ScatterRadius != base.ScatterRadius {
		t.Errorf("Unset fields should keep their value: %+v", p)
	}

	var empty PresetDef
	if empty.Apply(base) != base {
		t.Error("An empty preset should not change anything")
	}
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 presets, got %d", registry.Count())
	}

	def := registry.GetByID(DefaultID)
	if def == nil {
		t.Fatal("Default preset not found by ID")
	}
	if def.Name != "Catacombs" {
		t.Errorf("Expected name 'Catacombs', got %q", def.Name)
	}
	if registry.GetByID("missing") != nil {
		t.Error("Unknown ID should return nil")
	}

	// Weighted picks are deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		a, b := registry.Pick(rng1).ID, registry.Pick(rng2).ID
		if a != b {
			t.Errorf("Pick %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestPickWeights(t *testing.T) {
	registry := NewRegistry([]PresetDef{
		{ID: "never", Weight: 0},
		{ID: "always", Weight: 3},
	})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if got := registry.Pick(rng).ID; got != "always" {
			t.Fatalf("Zero-weight preset picked: %s", got)
		}
	}

	if NewRegistry(nil).Pick(rng) != nil {
		t.Error("Empty registry should pick nothing")
	}
}
