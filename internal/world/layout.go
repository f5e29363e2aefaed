package world

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Kind distinguishes generated layouts from hand-authored ones.
type Kind int

const (
	// KindDungeon is a procedurally generated layout.
	KindDungeon Kind = iota
	// KindHub is the hand-authored entry room.
	KindHub
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindDungeon:
		return "dungeon"
	case KindHub:
		return "hub"
	default:
		return "unknown"
	}
}

// layoutNamespace scopes layout IDs derived from fingerprints.
var layoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dungeonleap/layout"))

// Stages holds the intermediate results that Assemble turns into a Layout.
type Stages struct {
	Rooms     []Rect
	Edges     []Edge
	Corridors []Rect
	Walls     []Rect // after openings were carved
	Isolated  []int  // rooms the spanning tree could not reach
	Fallback  bool   // true if no cell met the room minimums
	Residual  int    // cell pairs still overlapping after separation
}

// Layout is a finished, read-only dungeon floor.
// Accessors return copies; a Layout never changes after it is built.
type Layout struct {
	kind        Kind
	width       int
	height      int
	rooms       []Rect
	edges       []Edge
	corridors   []Rect
	walls       []Rect
	exit        Rect
	isolated    []int
	fallback    bool
	residual    int
	fingerprint uint64
}

// Assemble builds the final layout from the pipeline's intermediate results.
// It does not modify st and returns equal layouts for equal inputs.
func Assemble(st Stages, p Params) *Layout {
	l := &Layout{
		kind:      KindDungeon,
		width:     p.MapWidth,
		height:    p.MapHeight,
		rooms:     slices.Clone(st.Rooms),
		edges:     slices.Clone(st.Edges),
		corridors: slices.Clone(st.Corridors),
		walls:     slices.Clone(st.Walls),
		isolated:  slices.Clone(st.Isolated),
		fallback:  st.Fallback,
		residual:  st.Residual,
	}
	if len(l.rooms) > 0 {
		l.exit = exitFor(l.rooms[LargestRoom(l.rooms)], p)
	}
	l.fingerprint = l.computeFingerprint()
	return l
}

// LargestRoom returns the index of the room with the greatest area.
// The first one wins on ties.
func LargestRoom(rooms []Rect) int {
	best := 0
	for i, r := range rooms {
		if r.Area() > rooms[best].Area() {
			best = i
		}
	}
	return best
}

// exitFor places the exit against the room's east side, vertically centered,
// shrunk and clamped so it never leaves the room.
func exitFor(room Rect, p Params) Rect {
	w := min(p.ExitWidth, room.W)
	h := min(p.ExitHeight, room.H)
	x := room.Right() - p.ExitInset
	x = max(room.X, min(x, room.Right()-w))
	return Rect{X: x, Y: room.Y + room.H/2 - h/2, W: w, H: h}
}

func (l *Layout) computeFingerprint() uint64 {
	buf := make([]byte, 0, 8*4*(len(l.rooms)+len(l.corridors)+len(l.walls)+2))
	putRect := func(r Rect) {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(r.X)))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(r.Y)))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(r.W)))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(r.H)))
	}

	putRect(Rect{W: l.width, H: l.height})
	for _, group := range [][]Rect{l.rooms, l.corridors, l.walls} {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(group)))
		for _, r := range group {
			putRect(r)
		}
	}
	putRect(l.exit)
	return xxhash.Sum64(buf)
}

// Kind reports whether the layout was generated or hand-authored.
func (l *Layout) Kind() Kind { return l.kind }

// Width returns the layout's horizontal extent.
func (l *Layout) Width() int { return l.width }

// Height returns the layout's vertical extent.
func (l *Layout) Height() int { return l.height }

// Bounds returns the layout extents as a rectangle anchored at the origin.
func (l *Layout) Bounds() Rect { return Rect{W: l.width, H: l.height} }

// Rooms returns the room floors. Indices match the room ids used by Edges.
func (l *Layout) Rooms() []Rect { return slices.Clone(l.rooms) }

// Edges returns the room connections that were carved into corridors.
func (l *Layout) Edges() []Edge { return slices.Clone(l.edges) }

// Corridors returns the corridor floors, two per edge.
func (l *Layout) Corridors() []Rect { return slices.Clone(l.corridors) }

// Walls returns the wall rectangles left after openings were carved.
func (l *Layout) Walls() []Rect { return slices.Clone(l.walls) }

// Platforms returns the solid rectangles for collision. Floors are not solid.
func (l *Layout) Platforms() []Rect { return slices.Clone(l.walls) }

// Exit returns the rectangle that ends the layout when touched.
func (l *Layout) Exit() Rect { return l.exit }

// Isolated returns the rooms that no corridor reaches because the
// nearest-neighbor graph was disconnected. Usually empty.
func (l *Layout) Isolated() []int { return slices.Clone(l.isolated) }

// UsedFallback reports whether the single room is a fallback cell that did
// not meet the room minimums.
func (l *Layout) UsedFallback() bool { return l.fallback }

// ResidualOverlaps returns how many cell pairs separation left overlapping.
func (l *Layout) ResidualOverlaps() int { return l.residual }

// Fingerprint hashes the layout geometry. Equal layouts have equal fingerprints.
func (l *Layout) Fingerprint() uint64 { return l.fingerprint }

// ID returns a stable identifier derived from the fingerprint.
func (l *Layout) ID() uuid.UUID {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], l.fingerprint)
	return uuid.NewSHA1(layoutNamespace, b[:])
}

// ReachedExit reports whether the given bounding box touches the exit.
func (l *Layout) ReachedExit(box Rect) bool {
	return box.Intersects(l.exit)
}
