package world

// SelectRooms keeps the cells at least minW wide and minH tall.
// If none qualify, the middle cell is returned alone and fallback is true,
// so a layout always has at least one room.
func SelectRooms(cells []Rect, minW, minH int) (rooms []Rect, fallback bool) {
	for _, c := range cells {
		if c.W >= minW && c.H >= minH {
			rooms = append(rooms, c)
		}
	}
	if len(rooms) == 0 && len(cells) > 0 {
		return []Rect{cells[len(cells)/2]}, true
	}
	return rooms, false
}
