package world

// Room is a rectangular open area carved out of the dungeon.
type Room struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Center returns the middle cell of the room.
func (r Room) Center() Position {
	return Pos(r.X+r.Width/2, r.Y+r.Height/2)
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
