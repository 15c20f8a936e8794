package world

// Octant transforms for recursive shadowcasting.
var octants = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeFOV recomputes the visible set from origin out to radius and merges
// it into the explored set. Visibility is rebuilt from scratch on every call;
// explored only ever grows.
func (g *Grid) ComputeFOV(origin Position, radius int) {
	for i := range g.visible {
		g.visible[i] = false
	}

	if g.InBounds(origin.X, origin.Y) {
		g.visible[g.index(origin.X, origin.Y)] = true
		if radius > 0 {
			for oct := 0; oct < 8; oct++ {
				g.castLight(origin.X, origin.Y, 1, 1.0, 0.0, radius,
					octants[0][oct], octants[1][oct], octants[2][oct], octants[3][oct])
			}
		}
	}

	for i, v := range g.visible {
		if v {
			g.explored[i] = true
		}
	}
}

func (g *Grid) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false
		newStart := start

		for dx := -j; dx <= 0; dx++ {
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy
			if dx*dx+dy*dy <= radiusSq && g.InBounds(x, y) {
				g.visible[g.index(x, y)] = true
			}

			opaque := !g.IsTransparent(x, y)
			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				blocked = true
				g.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
