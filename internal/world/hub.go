package world

const (
	hubWidth       = 2000
	hubHeight      = 1000
	hubFloorHeight = 100
)

// NewHub returns the hand-authored entry room: one floor to stand on and
// an exit door at its east end leading into the dungeon.
func NewHub() *Layout {
	bounds := Rect{W: hubWidth, H: hubHeight}
	floor := Rect{X: 0, Y: hubHeight - hubFloorHeight, W: hubWidth, H: hubFloorHeight}

	l := &Layout{
		kind:   KindHub,
		width:  hubWidth,
		height: hubHeight,
		rooms:  []Rect{bounds},
		walls:  []Rect{floor},
		exit:   Rect{X: 1800, Y: floor.Y - 100, W: 80, H: 100},
	}
	l.fingerprint = l.computeFingerprint()
	return l
}
