package pathfind

// CostGrid is a dense Graph backed by a slice.
type CostGrid struct {
	width, height int
	cells         []int
}

// NewCostGrid creates a grid where every cell is impassable.
func NewCostGrid(width, height int) *CostGrid {
	return &CostGrid{width: width, height: height, cells: make([]int, width*height)}
}

// Width returns the number of columns.
func (c *CostGrid) Width() int { return c.width }

// Height returns the number of rows.
func (c *CostGrid) Height() int { return c.height }

// Cost returns the cost of entering (x, y); zero outside the grid.
func (c *CostGrid) Cost(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.cells[y*c.width+x]
}

// Set overwrites the cost of one cell.
func (c *CostGrid) Set(x, y, cost int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cost
}

// Add raises the cost of a passable cell. Impassable cells stay impassable.
func (c *CostGrid) Add(x, y, extra int) {
	if cur := c.Cost(x, y); cur > 0 {
		c.Set(x, y, cur+extra)
	}
}
