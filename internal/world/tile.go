// Package world provides the tile grid, visibility, and dungeon generation.
package world

import "github.com/gdamore/tcell/v2"

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	KindWall TileKind = iota
	KindFloor
	KindGrass
	KindDirt
	KindWoodFloor
)

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindGrass:
		return "grass"
	case KindDirt:
		return "dirt"
	case KindWoodFloor:
		return "wood_floor"
	default:
		return "unknown"
	}
}

// Glyph is a display hint for a cell. The grid never interprets it.
type Glyph struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Tile is the static description of one map cell.
type Tile struct {
	Kind        TileKind
	Walkable    bool // Can be stepped on
	Transparent bool // Does not block line of sight
	Dark        Glyph // Drawn when explored but not in view
	Light       Glyph // Drawn when in view
}

// Shroud is drawn for cells that have never been explored.
var Shroud = Glyph{Rune: ' ', Fg: tcell.ColorWhite, Bg: tcell.ColorBlack}

var (
	// TileWall blocks movement and sight.
	TileWall = Tile{
		Kind:  KindWall,
		Dark:  Glyph{Rune: '#', Fg: rgb(62, 62, 62), Bg: rgb(0, 0, 0)},
		Light: Glyph{Rune: '#', Fg: rgb(114, 114, 117), Bg: rgb(0, 0, 0)},
	}
	// TileFloor is plain walkable stone.
	TileFloor = Tile{
		Kind:        KindFloor,
		Walkable:    true,
		Transparent: true,
		Dark:        Glyph{Rune: '.', Fg: rgb(62, 62, 62), Bg: rgb(0, 0, 0)},
		Light:       Glyph{Rune: '.', Fg: rgb(130, 130, 130), Bg: rgb(0, 0, 0)},
	}
	TileGrass = Tile{
		Kind:        KindGrass,
		Walkable:    true,
		Transparent: true,
		Dark:        Glyph{Rune: ' ', Fg: rgb(68, 97, 57), Bg: rgb(56, 69, 52)},
		Light:       Glyph{Rune: '`', Fg: rgb(68, 172, 31), Bg: rgb(68, 97, 57)},
	}
	TileDirt = Tile{
		Kind:        KindDirt,
		Walkable:    true,
		Transparent: true,
		Dark:        Glyph{Rune: ' ', Fg: rgb(59, 56, 56), Bg: rgb(59, 56, 56)},
		Light:       Glyph{Rune: '.', Fg: rgb(59, 56, 56), Bg: rgb(77, 72, 71)},
	}
	// TileWoodFloor is walkable but opaque.
	TileWoodFloor = Tile{
		Kind:     KindWoodFloor,
		Walkable: true,
		Dark:     Glyph{Rune: '=', Fg: rgb(77, 72, 71), Bg: rgb(77, 72, 71)},
		Light:    Glyph{Rune: '=', Fg: rgb(77, 72, 71), Bg: rgb(130, 110, 50)},
	}
)

func rgb(r, g, b int32) tcell.Color {
	return tcell.NewRGBColor(r, g, b)
}
