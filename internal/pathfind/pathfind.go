// Package pathfind finds cost-weighted shortest paths over a tile grid.
//
// Each cell carries a traversal cost; zero marks the cell impassable. A step
// onto a cell costs the cell's cost times CardinalCost or DiagonalCost, so
// on an open grid paths approximate Chebyshev distance while still preferring
// straight steps. Crowded cells get a large cost rather than being removed,
// which lets actors route around each other without deadlocking corridors.
package pathfind

import (
	"container/heap"

	"github.com/samdwyer/dungeonturn/internal/world"
)

const (
	// CardinalCost is the multiplier for horizontal and vertical steps.
	CardinalCost = 2
	// DiagonalCost is the multiplier for diagonal steps.
	DiagonalCost = 3
)

// Graph supplies per-cell traversal costs.
type Graph interface {
	Width() int
	Height() int
	// Cost returns the cost of entering (x, y); zero means impassable.
	Cost(x, y int) int
}

var neighbours = [8]struct{ dx, dy, mul int }{
	{0, -1, CardinalCost},
	{1, 0, CardinalCost},
	{0, 1, CardinalCost},
	{-1, 0, CardinalCost},
	{1, -1, DiagonalCost},
	{1, 1, DiagonalCost},
	{-1, 1, DiagonalCost},
	{-1, -1, DiagonalCost},
}

// Path returns the cheapest route from start to goal, excluding start and
// including goal. It returns an empty slice when no route exists, when the
// goal is impassable, or when start equals goal.
func Path(g Graph, start, goal world.Position) []world.Position {
	w, h := g.Width(), g.Height()
	inBounds := func(p world.Position) bool {
		return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
	}
	if start == goal || !inBounds(start) || !inBounds(goal) || g.Cost(goal.X, goal.Y) <= 0 {
		return []world.Position{}
	}

	const unvisited = -1
	dist := make([]int, w*h)
	came := make([]int, w*h)
	for i := range dist {
		dist[i] = unvisited
		came[i] = unvisited
	}

	index := func(p world.Position) int { return p.Y*w + p.X }
	estimate := func(p world.Position) int { return p.ChebyshevTo(goal) * CardinalCost }

	open := &frontier{}
	seq := 0
	startIdx := index(start)
	dist[startIdx] = 0
	heap.Push(open, &node{pos: start, g: 0, f: estimate(start)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		ci := index(cur.pos)
		if cur.g > dist[ci] {
			continue
		}
		if cur.pos == goal {
			return walkBack(came, ci, startIdx, w)
		}

		for _, n := range neighbours {
			next := cur.pos.Shift(n.dx, n.dy)
			if !inBounds(next) {
				continue
			}
			cost := g.Cost(next.X, next.Y)
			if cost <= 0 {
				continue
			}
			ni := index(next)
			ng := cur.g + cost*n.mul
			if dist[ni] != unvisited && ng >= dist[ni] {
				continue
			}
			dist[ni] = ng
			came[ni] = ci
			seq++
			heap.Push(open, &node{pos: next, g: ng, f: ng + estimate(next), seq: seq})
		}
	}
	return []world.Position{}
}

// PathCost returns the total traversal cost of walking path from start.
func PathCost(g Graph, start world.Position, path []world.Position) int {
	total := 0
	prev := start
	for _, p := range path {
		mul := CardinalCost
		if p.X != prev.X && p.Y != prev.Y {
			mul = DiagonalCost
		}
		total += g.Cost(p.X, p.Y) * mul
		prev = p
	}
	return total
}

func walkBack(came []int, goalIdx, startIdx, width int) []world.Position {
	var rev []world.Position
	for i := goalIdx; i != startIdx; i = came[i] {
		rev = append(rev, world.Pos(i%width, i/width))
	}
	path := make([]world.Position, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// node is an entry in the open set.
type node struct {
	pos   world.Position
	g, f  int
	seq   int // insertion order, keeps ties deterministic
	index int
}

// frontier implements heap.Interface as a min-heap on f.
type frontier []*node

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *frontier) Pop() any {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]
	return n
}
