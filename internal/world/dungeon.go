package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonleap/internal/telemetry"
)

// Generate runs the full pipeline and returns a new layout.
// All randomness comes from rng, so equal seeds give equal layouts.
func Generate(ctx context.Context, p Params, rng *rand.Rand) (*Layout, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	startTime := time.Now()

	// Scatter and spread out candidate cells
	cells := GenerateCells(p, rng)
	cells = Separate(cells, p.SeparationIterations)
	residual := ResidualOverlaps(cells)

	rooms, fallback := SelectRooms(cells, p.RoomMinW, p.RoomMinH)
	if fallback {
		span.AddEvent("rooms.fallback", trace.WithAttributes(
			attribute.Int("cells", len(cells)),
		))
	}

	// Connect rooms: sparse candidate graph, spanning tree, then a few loops
	candidates := NearestNeighborEdges(rooms, p.Neighbors)
	tree, reached := SpanningTree(len(rooms), candidates)
	isolated := Unreached(len(rooms), reached)
	if len(isolated) > 0 {
		span.AddEvent("graph.disconnected", trace.WithAttributes(
			attribute.Int("reached", len(reached)),
			attribute.Int("isolated", len(isolated)),
		))
	}
	edges := AddLoops(candidates, tree, p.LoopRatio, rng)

	// Carve geometry; openings only once every wall exists
	corridors := CarveCorridors(rooms, edges, p.CorridorThickness, p.CorridorPad)
	walls := RoomWalls(rooms, p.WallThickness, p.WallSegment)
	walls = append(walls, CorridorWalls(corridors, p.WallThickness)...)
	walls = CarveOpenings(walls, corridors)

	layout := Assemble(Stages{
		Rooms:     rooms,
		Edges:     edges,
		Corridors: corridors,
		Walls:     walls,
		Isolated:  isolated,
		Fallback:  fallback,
		Residual:  residual,
	}, p)

	// Record telemetry
	span.SetAttributes(
		attribute.Int("layout.cells", len(cells)),
		attribute.Int("layout.residual_overlaps", residual),
		attribute.Int("layout.room_count", len(rooms)),
		attribute.Bool("layout.fallback", fallback),
		attribute.Int("layout.candidate_edges", len(candidates)),
		attribute.Int("layout.tree_edges", len(tree)),
		attribute.Int("layout.edge_count", len(edges)),
		attribute.Int("layout.isolated_rooms", len(isolated)),
		attribute.Int("layout.corridor_count", len(corridors)),
		attribute.Int("layout.wall_count", len(walls)),
		attribute.String("layout.id", layout.ID().String()),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return layout, nil
}

// GenerateSeeded is Generate with a fresh source seeded by seed.
func GenerateSeeded(ctx context.Context, p Params, seed int64) (*Layout, error) {
	layout, err := Generate(ctx, p, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("generate layout (seed %d): %w", seed, err)
	}
	return layout, nil
}
