package world

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is wrapped by every Params validation failure.
var ErrInvalidParams = errors.New("invalid generation parameters")

const (
	// Default map dimensions
	DefaultMapWidth  = 12000
	DefaultMapHeight = 12000
)

// Params controls every stage of layout generation.
type Params struct {
	CellCount     int // Candidate cells scattered before separation
	MapWidth      int
	MapHeight     int
	ScatterRadius int // Max distance of a cell center from the map center

	MinCellW, MaxCellW int
	MinCellH, MaxCellH int
	AspectLimit        float64 // Max long/short side ratio of a cell

	SeparationIterations int // Relaxation budget

	RoomMinW, RoomMinH int // Cells smaller than this are not rooms

	Neighbors int     // k in the k-nearest-neighbor graph
	LoopRatio float64 // Fraction of non-tree edges reinstated as loops

	CorridorThickness int
	CorridorPad       int // Added on every side of a corridor strip to avoid seams

	WallThickness int
	WallSegment   int // Length of one room wall chunk

	ExitWidth  int
	ExitHeight int
	ExitInset  int // Distance of the exit's left edge from the room's right edge
}

// DefaultParams returns the tuning used by the game.
func DefaultParams() Params {
	return Params{
		CellCount:            30,
		MapWidth:             DefaultMapWidth,
		MapHeight:            DefaultMapHeight,
		ScatterRadius:        1500,
		MinCellW:             1000,
		MaxCellW:             1800,
		MinCellH:             800,
		MaxCellH:             1400,
		AspectLimit:          2.2,
		SeparationIterations: 600,
		RoomMinW:             900,
		RoomMinH:             700,
		Neighbors:            3,
		LoopRatio:            0.15,
		CorridorThickness:    120,
		CorridorPad:          10,
		WallThickness:        60,
		WallSegment:          80,
		ExitWidth:            80,
		ExitHeight:           100,
		ExitInset:            120,
	}
}

// Validate reports the first parameter that would break a layout invariant.
func (p Params) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{p.CellCount >= 1, "cell count must be at least 1"},
		{p.MapWidth > 0 && p.MapHeight > 0, "map dimensions must be positive"},
		{p.ScatterRadius >= 0, "scatter radius must not be negative"},
		{p.MinCellW > 0 && p.MaxCellW >= p.MinCellW, "cell width range must be positive and ordered"},
		{p.MinCellH > 0 && p.MaxCellH >= p.MinCellH, "cell height range must be positive and ordered"},
		{p.AspectLimit >= 1, "aspect limit must be at least 1"},
		{p.SeparationIterations >= 0, "separation iterations must not be negative"},
		{p.RoomMinW >= 0 && p.RoomMinH >= 0, "room minimums must not be negative"},
		{p.Neighbors >= 1, "neighbor count must be at least 1"},
		{p.LoopRatio >= 0 && p.LoopRatio <= 1, "loop ratio must be within [0, 1]"},
		{p.CorridorThickness > 0, "corridor thickness must be positive"},
		{p.CorridorPad > 0, "corridor pad must be positive"},
		{p.WallThickness > 0, "wall thickness must be positive"},
		{p.WallSegment > 0, "wall segment must be positive"},
		{p.ExitWidth > 0 && p.ExitHeight > 0, "exit dimensions must be positive"},
		{p.ExitInset >= 0, "exit inset must not be negative"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidParams, c.msg)
		}
	}
	return nil
}
