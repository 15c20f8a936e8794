package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// PlayerID is the definition used for the player actor.
const PlayerID = "player"

// ActorRegistry holds loaded actor definitions and provides spawning utilities.
type ActorRegistry struct {
	actors      []ActorDef
	byID        map[string]int
	totalWeight int
}

// NewActorRegistry creates a registry from loaded actor definitions.
func NewActorRegistry(actors []ActorDef) (*ActorRegistry, error) {
	r := &ActorRegistry{
		actors: actors,
		byID:   make(map[string]int, len(actors)),
	}
	for i, a := range actors {
		if a.ID == "" {
			return nil, fmt.Errorf("actor definition %d has no id", i)
		}
		if _, dup := r.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate actor id %q", a.ID)
		}
		if a.HP <= 0 {
			return nil, fmt.Errorf("actor %q: hp must be positive, got %d", a.ID, a.HP)
		}
		if a.SpawnWeight < 0 {
			return nil, fmt.Errorf("actor %q: negative spawn weight", a.ID)
		}
		r.byID[a.ID] = i
		r.totalWeight += a.SpawnWeight
	}
	return r, nil
}

// LoadActorRegistry loads and creates a registry from the embedded actors.json.
func LoadActorRegistry() (*ActorRegistry, error) {
	actors, err := LoadActors()
	if err != nil {
		return nil, err
	}
	if len(actors) == 0 {
		return nil, errors.New("no actors loaded from actors.json")
	}
	return NewActorRegistry(actors)
}

// MustLoadActorRegistry loads a registry, panicking on error.
func MustLoadActorRegistry() *ActorRegistry {
	registry, err := LoadActorRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a definition using weighted probability.
// Definitions with zero weight (the player) are never picked.
func (r *ActorRegistry) SpawnRandom(rng *rand.Rand) *ActorDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.actors {
		cumulative += r.actors[i].SpawnWeight
		if roll < cumulative {
			return &r.actors[i]
		}
	}
	return nil
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *ActorRegistry) GetByID(id string) *ActorDef {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.actors[i]
}

// Player returns the player definition, or nil if none is registered.
func (r *ActorRegistry) Player() *ActorDef {
	return r.GetByID(PlayerID)
}
