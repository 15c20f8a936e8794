package world

// Position is an integer cell coordinate.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Shift returns the position offset by (dx, dy).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Delta returns the (dx, dy) that moves p onto other.
func (p Position) Delta(other Position) (int, int) {
	return other.X - p.X, other.Y - p.Y
}

// ChebyshevTo returns max(|dx|, |dy|) between the two positions.
func (p Position) ChebyshevTo(other Position) int {
	dx, dy := abs(other.X-p.X), abs(other.Y-p.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// DirectionTo returns the unit step (-1, 0 or 1 per axis) from p toward other.
func (p Position) DirectionTo(other Position) (int, int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
