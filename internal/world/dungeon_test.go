package world

import (
	"context"
	"math/rand"
	"testing"
)

func TestDungeonReproducibility(t *testing.T) {
	seed := int64(12345)

	d1 := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
	d2 := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))

	ctx := context.Background()
	d1.Generate(ctx)
	d2.Generate(ctx)

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}
	for i := range d1.Rooms {
		if d1.Rooms[i] != d2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, d1.Rooms[i], d2.Rooms[i])
		}
	}
	for y := 0; y < d1.Grid.Height; y++ {
		for x := 0; x < d1.Grid.Width; x++ {
			if d1.Grid.Tiles[y][x] != d2.Grid.Tiles[y][x] {
				t.Errorf("Tile mismatch at (%d,%d): %v != %v", x, y, d1.Grid.Tiles[y][x].Kind, d2.Grid.Tiles[y][x].Kind)
			}
		}
	}
}

func TestDungeonRoomsAreWalkableAndBordered(t *testing.T) {
	d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(7)))
	d.Generate(context.Background())

	if len(d.Rooms) < 2 {
		t.Fatalf("expected several rooms, got %d", len(d.Rooms))
	}
	for i, room := range d.Rooms {
		c := room.Center()
		if !d.Grid.IsWalkable(c.X, c.Y) {
			t.Errorf("room %d center (%d,%d) is not walkable", i, c.X, c.Y)
		}
		if got := d.RoomIndexAt(c.X, c.Y); got != i {
			t.Errorf("RoomIndexAt(center of %d) = %d, want %d", i, got, i)
		}
	}
	for x := 0; x < d.Grid.Width; x++ {
		if d.Grid.IsWalkable(x, 0) || d.Grid.IsWalkable(x, d.Grid.Height-1) {
			t.Fatalf("border cell in column %d is walkable", x)
		}
	}
	for y := 0; y < d.Grid.Height; y++ {
		if d.Grid.IsWalkable(0, y) || d.Grid.IsWalkable(d.Grid.Width-1, y) {
			t.Fatalf("border cell in row %d is walkable", y)
		}
	}
}

func TestDungeonRandomPointInRoom(t *testing.T) {
	d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(99)))
	d.Generate(context.Background())

	for i := range d.Rooms {
		p := d.RandomPointInRoom(i)
		if !d.Rooms[i].Contains(p.X, p.Y) {
			t.Errorf("RandomPointInRoom(%d) = %v, outside room %+v", i, p, d.Rooms[i])
		}
	}
	if p := d.RandomPointInRoom(-1); p != Pos(-1, -1) {
		t.Errorf("RandomPointInRoom(-1) = %v, want (-1,-1)", p)
	}
}
