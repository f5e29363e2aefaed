// Package game tracks which layout the player is in and swaps layouts when
// the player reaches an exit.
package game

// State represents the kind of layout the player is currently in.
type State int

const (
	// StateHub is the hand-authored entry room.
	StateHub State = iota
	// StateDungeon is a procedurally generated layout.
	StateDungeon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateHub:
		return "hub"
	case StateDungeon:
		return "dungeon"
	default:
		return "unknown"
	}
}
