package world

import (
	"math"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// EdgeKey identifies an undirected edge between two rooms. A < B always.
type EdgeKey struct {
	A, B int
}

// Edge connects two rooms, weighted by the distance between their centers.
type Edge struct {
	A, B   int // Room indices, A < B
	Weight float64
}

// NewEdge returns the canonical edge between rooms a and b.
func NewEdge(a, b int, weight float64) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b, Weight: weight}
}

// Key returns the edge's identity, independent of weight.
func (e Edge) Key() EdgeKey {
	return EdgeKey{A: e.A, B: e.B}
}

func distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// NearestNeighborEdges links every room to its k nearest rooms by center distance.
// A mutual neighbor relationship yields one edge.
func NearestNeighborEdges(rooms []Rect, k int) []Edge {
	centers := make([]Point, len(rooms))
	for i, r := range rooms {
		centers[i] = r.Center()
	}

	seen := mapset.New[EdgeKey]()
	var edges []Edge

	for i := range centers {
		others := make([]int, 0, len(centers)-1)
		for j := range centers {
			if j != i {
				others = append(others, j)
			}
		}
		sort.SliceStable(others, func(x, y int) bool {
			return distance(centers[i], centers[others[x]]) < distance(centers[i], centers[others[y]])
		})

		for _, j := range others[:min(k, len(others))] {
			e := NewEdge(i, j, distance(centers[i], centers[j]))
			if seen.Has(e.Key()) {
				continue
			}
			seen.Put(e.Key())
			edges = append(edges, e)
		}
	}
	return edges
}

// SpanningTree grows a minimum spanning tree from room 0 using only the given
// candidate edges. If the candidates do not connect every room, the tree
// covers only the rooms reachable from room 0; reached lists them in the
// order they joined.
func SpanningTree(n int, edges []Edge) (tree []Edge, reached []int) {
	if n == 0 {
		return nil, nil
	}

	inTree := mapset.New[int]()
	inTree.Put(0)
	reached = append(reached, 0)

	for inTree.Size() < n {
		best := -1
		bestWeight := math.MaxFloat64
		for i, e := range edges {
			// Exactly one endpoint inside grows the tree by one room
			if inTree.Has(e.A) != inTree.Has(e.B) && e.Weight < bestWeight {
				best = i
				bestWeight = e.Weight
			}
		}
		if best < 0 {
			break // candidate graph is disconnected
		}

		e := edges[best]
		tree = append(tree, e)
		next := e.A
		if inTree.Has(e.A) {
			next = e.B
		}
		inTree.Put(next)
		reached = append(reached, next)
	}
	return tree, reached
}

// Unreached returns the room indices in [0, n) missing from reached.
func Unreached(n int, reached []int) []int {
	in := mapset.New[int]()
	for _, r := range reached {
		in.Put(r)
	}
	var out []int
	for i := 0; i < n; i++ {
		if !in.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// AddLoops returns the tree plus a shuffled ratio of the remaining candidate
// edges. These extra edges are the only source of cycles.
func AddLoops(all, tree []Edge, ratio float64, rng *rand.Rand) []Edge {
	inTree := mapset.New[EdgeKey]()
	for _, e := range tree {
		inTree.Put(e.Key())
	}

	var remaining []Edge
	for _, e := range all {
		if !inTree.Has(e.Key()) {
			remaining = append(remaining, e)
		}
	}
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	count := int(float64(len(remaining)) * ratio)
	final := make([]Edge, 0, len(tree)+count)
	final = append(final, tree...)
	final = append(final, remaining[:count]...)
	return final
}
