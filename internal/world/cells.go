package world

import (
	"math"
	"math/rand"
)

// GenerateCells scatters p.CellCount candidate rectangles around the map center.
// Cells may overlap; Separate spreads them apart.
func GenerateCells(p Params, rng *rand.Rand) []Rect {
	cx, cy := p.MapWidth/2, p.MapHeight/2
	cells := make([]Rect, 0, p.CellCount)

	for i := 0; i < p.CellCount; i++ {
		// Uniform in the disk: sqrt keeps density flat toward the rim
		dist := float64(p.ScatterRadius) * math.Sqrt(rng.Float64())
		angle := 2 * math.Pi * rng.Float64()
		x := cx + int(dist*math.Cos(angle))
		y := cy + int(dist*math.Sin(angle))

		w := skewed(rng, p.MinCellW, p.MaxCellW)
		h := skewed(rng, p.MinCellH, p.MaxCellH)
		w, h = clampAspect(w, h, p.AspectLimit)

		cells = append(cells, Rect{X: x - w/2, Y: y - h/2, W: w, H: h})
	}
	return cells
}

// skewed maps the mean of three uniform draws into [lo, hi].
func skewed(rng *rand.Rand, lo, hi int) int {
	t := (rng.Float64() + rng.Float64() + rng.Float64()) / 3
	return lo + int(t*float64(hi-lo))
}

// clampAspect shrinks the longer side until long/short <= limit.
func clampAspect(w, h int, limit float64) (int, int) {
	if float64(max(w, h))/float64(min(w, h)) <= limit {
		return w, h
	}
	if w > h {
		return int(float64(h) * limit), h
	}
	return w, int(float64(w) * limit)
}

// Separate relaxes overlapping cells apart for the given number of iterations.
// The input slice is not modified. Overlaps may remain if the budget is too small.
func Separate(cells []Rect, iterations int) []Rect {
	arena := make([]Rect, len(cells))
	copy(arena, cells)
	for it := 0; it < iterations; it++ {
		arena = separateStep(arena)
	}
	return arena
}

// separateStep runs one relaxation pass and returns the new positions.
// Pairs are visited in index order, each seeing the moves made before it.
func separateStep(in []Rect) []Rect {
	out := make([]Rect, len(in))
	copy(out, in)
	for a := 0; a < len(out); a++ {
		for b := a + 1; b < len(out); b++ {
			if !out[a].Intersects(out[b]) {
				continue
			}
			push := resolveOverlap(out[a], out[b])
			out[a] = out[a].Translate(-push.X, -push.Y)
			out[b] = out[b].Translate(push.X, push.Y)
		}
	}
	return out
}

// resolveOverlap returns how far b should move (and a the opposite way) to
// halve their overlap along the axis where it is smaller.
func resolveOverlap(a, b Rect) Point {
	ca, cb := a.Center(), b.Center()
	dx := cb.X - ca.X
	dy := cb.Y - ca.Y

	overlapX := (a.W+b.W)/2 - abs(dx)
	overlapY := (a.H+b.H)/2 - abs(dy)
	if overlapX <= 0 || overlapY <= 0 {
		return Point{}
	}

	if overlapX < overlapY {
		return Point{X: sign(dx) * overlapX / 2}
	}
	return Point{Y: sign(dy) * overlapY / 2}
}

// ResidualOverlaps counts intersecting pairs.
func ResidualOverlaps(rects []Rect) int {
	count := 0
	for a := 0; a < len(rects); a++ {
		for b := a + 1; b < len(rects); b++ {
			if rects[a].Intersects(rects[b]) {
				count++
			}
		}
	}
	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign treats zero as positive so concentric cells still get pushed apart.
func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
