package world

// CarveCorridors builds an L-shaped corridor for every edge: a horizontal
// strip at the first room's center row, then a vertical strip at the second
// room's center column. Both strips are emitted even when one is degenerate;
// the pad keeps them positive-sized and seamless at the joint.
func CarveCorridors(rooms []Rect, edges []Edge, thickness, pad int) []Rect {
	corridors := make([]Rect, 0, 2*len(edges))
	for _, e := range edges {
		ca := rooms[e.A].Center()
		cb := rooms[e.B].Center()

		x1, x2 := min(ca.X, cb.X), max(ca.X, cb.X)
		horizontal := Rect{X: x1, Y: ca.Y - thickness/2, W: x2 - x1, H: thickness}

		y1, y2 := min(ca.Y, cb.Y), max(ca.Y, cb.Y)
		vertical := Rect{X: cb.X - thickness/2, Y: y1, W: thickness, H: y2 - y1}

		corridors = append(corridors, horizontal.Expand(pad), vertical.Expand(pad))
	}
	return corridors
}
