package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonturn/internal/entity"
	"github.com/samdwyer/dungeonturn/internal/gamedata"
	"github.com/samdwyer/dungeonturn/internal/logging"
	"github.com/samdwyer/dungeonturn/internal/telemetry"
	"github.com/samdwyer/dungeonturn/internal/world"
)

// ErrNoRooms is returned when the map is too small to hold a single room.
var ErrNoRooms = errors.New("dungeon has no rooms")

// BuildWorld generates a dungeon from cfg, places the player at the centre of
// the first room and populates the rest.
func BuildWorld(ctx context.Context, cfg Config, registry *gamedata.ActorRegistry) (*World, *world.Dungeon, error) {
	playerDef := registry.Player()
	if playerDef == nil {
		return nil, nil, ErrNoPlayer
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d := world.NewDungeon(cfg.MapWidth, cfg.MapHeight, rand.New(rand.NewSource(seed)))
	d.Generate(ctx)
	if len(d.Rooms) == 0 {
		return nil, nil, fmt.Errorf("build world %dx%d: %w", cfg.MapWidth, cfg.MapHeight, ErrNoRooms)
	}

	w, err := NewWorld(d.Grid, entity.NewActorFromDef(playerDef, d.Rooms[0].Center()))
	if err != nil {
		return nil, nil, fmt.Errorf("build world: %w", err)
	}
	Populate(ctx, w, d, registry, cfg.MaxMonstersPerRoom)

	logging.Component("procgen").WithFields(logrus.Fields{
		"seed":   seed,
		"rooms":  len(d.Rooms),
		"actors": len(w.actors),
	}).Info("world built")
	return w, d, nil
}

// Populate places between zero and maxPerRoom weighted-random monsters in
// every room, skipping cells a blocking actor already holds. Monsters are
// cloned from one prototype per definition and drawn from the dungeon's own
// generator. It returns the number of monsters placed.
func Populate(ctx context.Context, w *World, d *world.Dungeon, registry *gamedata.ActorRegistry, maxPerRoom int) int {
	_, span := telemetry.Tracer("game").Start(ctx, "world.populate")
	defer span.End()

	rng := d.Rand()
	prototypes := make(map[string]*entity.Actor)
	maxPerRoom = max(maxPerRoom, 0)
	placed := 0
	for i := range d.Rooms {
		count := rng.Intn(maxPerRoom + 1)
		for n := 0; n < count; n++ {
			def := registry.SpawnRandom(rng)
			if def == nil {
				break
			}
			pos := d.RandomPointInRoom(i)
			if w.BlockingActorAt(pos.X, pos.Y) != nil {
				continue
			}

			proto, ok := prototypes[def.ID]
			if !ok {
				proto = entity.NewActorFromDef(def, world.Position{})
				prototypes[def.ID] = proto
			}
			if _, err := w.Spawn(proto, pos); err != nil {
				if !errors.Is(err, ErrCellOccupied) {
					logging.Component("procgen").WithError(err).Warn("spawn failed")
				}
				continue
			}
			placed++
		}
	}

	span.SetAttributes(
		attribute.Int("populate.rooms", len(d.Rooms)),
		attribute.Int("populate.monsters", placed),
		attribute.Int("populate.kinds", len(prototypes)),
	)
	return placed
}
