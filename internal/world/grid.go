package world

// Grid is the fixed-size tile array plus the visible and explored bitmaps.
// Tiles are indexed [y][x].
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile

	visible  []bool
	explored []bool
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid(width, height int, fill Tile) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}

	return &Grid{
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		visible:  make([]bool, width*height),
		explored: make([]bool, width*height),
	}
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// GetTile returns the tile at the given position. Out of bounds reads as wall.
func (g *Grid) GetTile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.Tiles[y][x]
}

// SetTile overwrites one cell. It is meant for map generation only and
// reports false when the cell is out of bounds.
func (g *Grid) SetTile(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.Tiles[y][x] = t
	return true
}

// Fill sets every cell of the rectangle [x, x+w) x [y, y+h) that lies on the grid.
func (g *Grid) Fill(x, y, w, h int, t Tile) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			g.SetTile(cx, cy, t)
		}
	}
}

// IsWalkable returns true if the cell can be stepped on.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.Tiles[y][x].Walkable
}

// IsTransparent returns true if the cell does not block sight.
func (g *Grid) IsTransparent(x, y int) bool {
	return g.InBounds(x, y) && g.Tiles[y][x].Transparent
}

// IsVisible reports whether the cell was in view at the last FOV update.
func (g *Grid) IsVisible(x, y int) bool {
	return g.InBounds(x, y) && g.visible[g.index(x, y)]
}

// IsExplored reports whether the cell has ever been in view.
func (g *Grid) IsExplored(x, y int) bool {
	return g.InBounds(x, y) && g.explored[g.index(x, y)]
}

// VisibleCount returns the number of cells currently in view.
func (g *Grid) VisibleCount() int {
	n := 0
	for _, v := range g.visible {
		if v {
			n++
		}
	}
	return n
}

func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}
