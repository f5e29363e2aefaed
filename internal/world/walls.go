package world

// RoomWalls lines the inside of every room with wall chunks no longer than
// segment, so openings can later be cut where corridors cross.
func RoomWalls(rooms []Rect, thickness, segment int) []Rect {
	var walls []Rect
	for _, r := range rooms {
		// Top
		for x := r.X; x < r.Right(); x += segment {
			walls = append(walls, Rect{X: x, Y: r.Y, W: min(segment, r.Right()-x), H: thickness})
		}
		// Bottom
		for x := r.X; x < r.Right(); x += segment {
			walls = append(walls, Rect{X: x, Y: r.Bottom() - thickness, W: min(segment, r.Right()-x), H: thickness})
		}
		// Left
		for y := r.Y; y < r.Bottom(); y += segment {
			walls = append(walls, Rect{X: r.X, Y: y, W: thickness, H: min(segment, r.Bottom()-y)})
		}
		// Right
		for y := r.Y; y < r.Bottom(); y += segment {
			walls = append(walls, Rect{X: r.Right() - thickness, Y: y, W: thickness, H: min(segment, r.Bottom()-y)})
		}
	}
	return walls
}

// CorridorWalls encloses every corridor with four walls flush against its sides.
func CorridorWalls(corridors []Rect, thickness int) []Rect {
	walls := make([]Rect, 0, 4*len(corridors))
	for _, c := range corridors {
		walls = append(walls,
			Rect{X: c.X, Y: c.Y - thickness, W: c.W, H: thickness}, // top
			Rect{X: c.X, Y: c.Bottom(), W: c.W, H: thickness},      // bottom
			Rect{X: c.X - thickness, Y: c.Y, W: thickness, H: c.H}, // left
			Rect{X: c.Right(), Y: c.Y, W: thickness, H: c.H},       // right
		)
	}
	return walls
}

// CarveOpenings drops every wall that intersects a corridor.
// It must run once all walls exist.
func CarveOpenings(walls, corridors []Rect) []Rect {
	kept := make([]Rect, 0, len(walls))
	for _, w := range walls {
		hit := false
		for _, c := range corridors {
			if w.Intersects(c) {
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, w)
		}
	}
	return kept
}
