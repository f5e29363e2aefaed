package world

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestGenerateCellsWithinBounds(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(12345))

	cells := GenerateCells(p, rng)
	if len(cells) != p.CellCount {
		t.Fatalf("Expected %d cells, got %d", p.CellCount, len(cells))
	}

	mapCenter := Point{X: p.MapWidth / 2, Y: p.MapHeight / 2}
	for i, c := range cells {
		if c.W < p.MinCellW || c.W > p.MaxCellW {
			t.Errorf("Cell %d width %d outside [%d, %d]", i, c.W, p.MinCellW, p.MaxCellW)
		}
		if c.H < p.MinCellH || c.H > p.MaxCellH {
			t.Errorf("Cell %d height %d outside [%d, %d]", i, c.H, p.MinCellH, p.MaxCellH)
		}
		if d := distance(c.Center(), mapCenter); d > float64(p.ScatterRadius) {
			t.Errorf("Cell %d center %v is %.1f from map center, radius %d", i, c.Center(), d, p.ScatterRadius)
		}
		ratio := math.Max(float64(c.W)/float64(c.H), float64(c.H)/float64(c.W))
		if ratio > p.AspectLimit {
			t.Errorf("Cell %d aspect %.2f exceeds limit %.2f", i, ratio, p.AspectLimit)
		}
	}
}

func TestSkewedRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := skewed(rng, 1000, 1800)
		if v < 1000 || v > 1800 {
			t.Fatalf("skewed value %d outside [1000, 1800]", v)
		}
	}
	if v := skewed(rng, 500, 500); v != 500 {
		t.Errorf("Empty range should return min, got %d", v)
	}
}

func TestClampAspect(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		limit        float64
		wantW, wantH int
	}{
		{"wide clamped", 1800, 800, 2.2, 1760, 800},
		{"tall clamped", 800, 1800, 2.2, 800, 1760},
		{"square untouched", 1000, 1000, 2.2, 1000, 1000},
		{"within limit", 1500, 800, 2.2, 1500, 800},
		{"forced square", 500, 100, 1.0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := clampAspect(tt.w, tt.h, tt.limit)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("clampAspect(%d, %d, %.1f) = (%d, %d), want (%d, %d)",
					tt.w, tt.h, tt.limit, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResolveOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Point
	}{
		{"push along x", Rect{0, 0, 100, 100}, Rect{80, 10, 100, 100}, Point{X: 10}},
		{"push along y", Rect{0, 0, 100, 100}, Rect{5, 70, 100, 100}, Point{Y: 15}},
		{"push left", Rect{100, 0, 100, 100}, Rect{80, 0, 100, 100}, Point{X: -40}},
		{"concentric", Rect{0, 0, 100, 100}, Rect{0, 0, 100, 100}, Point{Y: 50}},
		{"sub-unit overlap", Rect{0, 0, 100, 100}, Rect{99, 0, 100, 100}, Point{}},
		{"apart", Rect{0, 0, 100, 100}, Rect{300, 0, 100, 100}, Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("resolveOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeparateResolvesPair(t *testing.T) {
	cells := []Rect{{0, 0, 100, 100}, {80, 10, 100, 100}}
	original := append([]Rect(nil), cells...)

	out := Separate(cells, 10)

	if !reflect.DeepEqual(cells, original) {
		t.Errorf("Separate modified its input: %v", cells)
	}
	if n := ResidualOverlaps(out); n != 0 {
		t.Errorf("Expected no overlaps after separation, got %d: %v", n, out)
	}
	if out[0].W != 100 || out[1].H != 100 {
		t.Errorf("Separation must only move cells, got %v", out)
	}
}

func TestSeparateZeroBudget(t *testing.T) {
	cells := []Rect{{0, 0, 100, 100}, {50, 50, 100, 100}}
	out := Separate(cells, 0)
	if !reflect.DeepEqual(out, cells) {
		t.Errorf("Zero iterations should return the cells unchanged, got %v", out)
	}
	if ResidualOverlaps(out) != 1 {
		t.Errorf("Expected the overlap to remain")
	}
}

func TestSeparateReducesOverlapAtDensity(t *testing.T) {
	p := DefaultParams()
	cells := GenerateCells(p, rand.New(rand.NewSource(2024)))

	before := ResidualOverlaps(cells)
	after := ResidualOverlaps(Separate(cells, p.SeparationIterations))

	if before == 0 {
		t.Fatal("Scattered cells should start out overlapping")
	}
	if after >= before {
		t.Errorf("Separation should reduce overlaps: before %d, after %d", before, after)
	}
}

func TestSelectRooms(t *testing.T) {
	cells := []Rect{
		{0, 0, 1000, 800},
		{0, 0, 500, 800},
		{0, 0, 1000, 300},
		{0, 0, 900, 700},
	}

	rooms, fallback := SelectRooms(cells, 900, 700)
	if fallback {
		t.Error("Fallback should not be used when cells qualify")
	}
	want := []Rect{cells[0], cells[3]}
	if !reflect.DeepEqual(rooms, want) {
		t.Errorf("SelectRooms = %v, want %v", rooms, want)
	}

	rooms, fallback = SelectRooms(cells, 5000, 5000)
	if !fallback {
		t.Error("Expected fallback when no cell qualifies")
	}
	if len(rooms) != 1 || rooms[0] != cells[2] {
		t.Errorf("Expected middle cell %v as fallback, got %v", cells[2], rooms)
	}
}
