package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonturn/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 43

	// BSP parameters
	minRoomSize = 6  // Minimum room dimension
	maxRoomSize = 12 // Maximum room dimension
	minLeafSize = 9  // Minimum BSP leaf size before stopping split
)

// Dungeon builds a Grid out of rooms joined by corridors.
type Dungeon struct {
	Grid  *Grid
	Rooms []Room

	// Tiles used when carving.
	RoomTile     Tile
	CorridorTile Tile

	rng *rand.Rand
}

// NewDungeon creates a dungeon filled with walls. A nil rng seeds from the clock.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Dungeon{
		Grid:         NewGrid(width, height, TileWall),
		Rooms:        make([]Room, 0),
		RoomTile:     TileGrass,
		CorridorTile: TileDirt,
		rng:          rng,
	}
}

// Generate carves the dungeon layout using binary space partitioning.
func (d *Dungeon) Generate(ctx context.Context) {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	root := &bspNode{x: 1, y: 1, width: d.Grid.Width - 2, height: d.Grid.Height - 2}
	d.split(root)
	d.placeRooms(root)
	d.link(root)

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Grid.Width),
		attribute.Int("dungeon.height", d.Grid.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// RoomIndexAt returns the index of the room containing the position, or -1.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RandomPointInRoom returns a random walkable point within the room.
func (d *Dungeon) RandomPointInRoom(roomIndex int) Position {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return Position{X: -1, Y: -1}
	}
	room := d.Rooms[roomIndex]

	for i := 0; i < 100; i++ {
		x := room.X + d.rng.Intn(room.Width)
		y := room.Y + d.rng.Intn(room.Height)
		if d.Grid.IsWalkable(x, y) {
			return Pos(x, y)
		}
	}
	return room.Center()
}

// Rand returns the generator used for carving. Populating from it keeps a
// whole world on one seed.
func (d *Dungeon) Rand() *rand.Rand {
	return d.rng
}

type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (d *Dungeon) split(node *bspNode) {
	canSplitX := node.width >= minLeafSize*2
	canSplitY := node.height >= minLeafSize*2

	var horizontal bool
	switch {
	case canSplitX && (node.width > node.height || !canSplitY):
		horizontal = false
	case canSplitY:
		horizontal = true
	default:
		return
	}

	extent := node.width
	if horizontal {
		extent = node.height
	}
	lo, hi := minLeafSize, extent-minLeafSize
	if hi <= lo {
		return
	}
	at := lo + d.rng.Intn(hi-lo+1)

	if horizontal {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: at}
		node.right = &bspNode{x: node.x, y: node.y + at, width: node.width, height: node.height - at}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: at, height: node.height}
		node.right = &bspNode{x: node.x + at, y: node.y, width: node.width - at, height: node.height}
	}

	d.split(node.left)
	d.split(node.right)
}

func (d *Dungeon) placeRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		d.placeRooms(node.left)
		d.placeRooms(node.right)
		return
	}

	w := d.roomExtent(node.width)
	h := d.roomExtent(node.height)
	if w < minRoomSize || h < minRoomSize {
		return
	}

	room := Room{
		X:      node.x + 1 + d.rng.Intn(node.width-w-1),
		Y:      node.y + 1 + d.rng.Intn(node.height-h-1),
		Width:  w,
		Height: h,
	}
	node.room = &room
	d.Rooms = append(d.Rooms, room)
	d.carve(room.X, room.Y, room.Width, room.Height, d.RoomTile)
}

// roomExtent picks a room dimension that leaves a one-cell margin in the leaf.
func (d *Dungeon) roomExtent(leaf int) int {
	span := min(maxRoomSize-minRoomSize+1, leaf-minRoomSize+1)
	if span <= 0 {
		return 0
	}
	return min(minRoomSize+d.rng.Intn(span), leaf-2)
}

func (d *Dungeon) link(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}
	d.link(node.left)
	d.link(node.right)

	a, b := anyRoom(node.left), anyRoom(node.right)
	if a != nil && b != nil {
		d.tunnel(a.Center(), b.Center())
	}
}

func anyRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := anyRoom(node.left); room != nil {
		return room
	}
	return anyRoom(node.right)
}

// tunnel carves an L-shaped corridor, bending at a random corner.
func (d *Dungeon) tunnel(from, to Position) {
	corner := Pos(to.X, from.Y)
	if d.rng.Intn(2) == 0 {
		corner = Pos(from.X, to.Y)
	}
	d.carveLine(from, corner)
	d.carveLine(corner, to)
}

func (d *Dungeon) carveLine(from, to Position) {
	dx, dy := from.DirectionTo(to)
	for p := from; ; p = p.Shift(dx, dy) {
		if !d.Grid.GetTile(p.X, p.Y).Walkable {
			d.carve(p.X, p.Y, 1, 1, d.CorridorTile)
		}
		if p == to {
			return
		}
	}
}

// carve fills a rectangle but never touches the outer border.
func (d *Dungeon) carve(x, y, w, h int, t Tile) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			if cx > 0 && cx < d.Grid.Width-1 && cy > 0 && cy < d.Grid.Height-1 {
				d.Grid.Tiles[cy][cx] = t
			}
		}
	}
}
