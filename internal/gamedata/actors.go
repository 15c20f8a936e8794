package gamedata

import "github.com/gdamore/tcell/v2"

// Control names the autonomous-control strategy an actor is spawned with.
type Control string

const (
	ControlNone    Control = ""
	ControlPlayer  Control = "player"
	ControlHostile Control = "hostile"
)

// ActorDef defines an actor template loaded from JSON.
type ActorDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string  `json:"name"`        // Display name (e.g., "Orc")
	Glyph       string  `json:"glyph"`       // Single character for rendering (e.g., "o")
	Color       string  `json:"color"`       // Hex color code (e.g., "#3F7F3F")
	HP          int     `json:"hp"`          // Maximum hit points
	Defense     int     `json:"defense"`     // Subtracted from incoming damage
	Power       int     `json:"power"`       // Melee attack power
	Control     Control `json:"control"`     // Strategy the actor starts with
	SpawnWeight int     `json:"spawnWeight"` // Relative spawn frequency, 0 never spawns randomly
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ActorDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (d *ActorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Actors []ActorDef `json:"actors"`
}

// LoadActors loads actor definitions from the embedded actors.json file.
func LoadActors() ([]ActorDef, error) {
	file, err := Load[ActorsFile]("actors.json")
	if err != nil {
		return nil, err
	}
	return file.Actors, nil
}
