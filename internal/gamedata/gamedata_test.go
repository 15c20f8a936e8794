package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"
)

func TestLoadActors(t *testing.T) {
	actors, err := LoadActors()
	if err != nil {
		t.Fatalf("Failed to load actors: %v", err)
	}

	expected := map[string]bool{"player": false, "orc": false, "troll": false}
	for _, a := range actors {
		if _, ok := expected[a.ID]; ok {
			expected[a.ID] = true
		}
	}
	for id, found := range expected {
		if !found {
			t.Errorf("Expected actor %q not found", id)
		}
	}
}

func TestActorRegistry(t *testing.T) {
	registry, err := LoadActorRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	player := registry.Player()
	if player == nil {
		t.Fatal("player definition missing")
	}
	if player.HP != 30 || player.Defense != 2 || player.Power != 5 {
		t.Errorf("player stats = %d/%d/%d, want 30/2/5", player.HP, player.Defense, player.Power)
	}
	if player.Control != ControlPlayer {
		t.Errorf("player control = %q, want %q", player.Control, ControlPlayer)
	}

	orc := registry.GetByID("orc")
	if orc == nil || orc.Name != "Orc" {
		t.Fatalf("GetByID(orc) = %+v", orc)
	}
	if registry.GetByID("dragon") != nil {
		t.Error("GetByID of unknown id should be nil")
	}
}

func TestSpawnRandomIsDeterministicAndSkipsPlayer(t *testing.T) {
	registry := MustLoadActorRegistry()

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 200; i++ {
		a, b := registry.SpawnRandom(rng1), registry.SpawnRandom(rng2)
		if a.ID != b.ID {
			t.Fatalf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
		if a.ID == PlayerID {
			t.Fatal("SpawnRandom must never pick the player")
		}
	}
}

func TestNewActorRegistryRejectsBadDefs(t *testing.T) {
	tests := []struct {
		name string
		defs []ActorDef
	}{
		{"missing id", []ActorDef{{HP: 1}}},
		{"duplicate id", []ActorDef{{ID: "a", HP: 1}, {ID: "a", HP: 1}}},
		{"zero hp", []ActorDef{{ID: "a"}}},
		{"negative weight", []ActorDef{{ID: "a", HP: 1, SpawnWeight: -1}}},
	}
	for _, tt := range tests {
		if _, err := NewActorRegistry(tt.defs); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLoadFrom(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json":   {Data: []byte(`{"actors":[{"id":"rat","hp":2}]}`)},
		"bad.json": {Data: []byte(`{`)},
	}

	file, err := LoadFrom[ActorsFile](fsys, "a.json")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(file.Actors) != 1 || file.Actors[0].ID != "rat" {
		t.Errorf("LoadFrom = %+v", file)
	}
	if _, err := LoadFrom[ActorsFile](fsys, "bad.json"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadFrom[ActorsFile](fsys, "missing.json"); err == nil {
		t.Error("expected read error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#FFF", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFFF", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestActorDefMethods(t *testing.T) {
	def := ActorDef{ID: "test", Glyph: "T", Color: "#FF0000"}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if (&ActorDef{}).GlyphRune() != '?' {
		t.Error("empty glyph should fall back to '?'")
	}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}
}
