package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/dungeonturn/internal/entity"
	"github.com/samdwyer/dungeonturn/internal/world"
)

var (
	// ErrOutOfBounds is returned when an actor is placed off the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrCellOccupied is returned when a blocking actor is placed on a cell
	// that already holds one.
	ErrCellOccupied = errors.New("cell occupied by a blocking actor")
	// ErrNoPlayer is returned when a world is built without a player.
	ErrNoPlayer = errors.New("world has no player")
	// ErrUnknownActor is returned when removing an actor that is not registered.
	ErrUnknownActor = errors.New("actor not in world")
	// ErrRemovePlayer is returned when removing the player.
	ErrRemovePlayer = errors.New("the player cannot be removed")
)

// World owns the grid and every actor on it. Actors are kept in insertion
// order, which is the stable order used for turn sequencing and lookups.
type World struct {
	Grid *world.Grid

	actors []*entity.Actor
	player *entity.Actor
}

// NewWorld creates a world around grid and registers player as its first actor.
func NewWorld(grid *world.Grid, player *entity.Actor) (*World, error) {
	if player == nil {
		return nil, ErrNoPlayer
	}
	w := &World{Grid: grid}
	if err := w.Add(player); err != nil {
		return nil, fmt.Errorf("add player: %w", err)
	}
	w.player = player
	return w, nil
}

// Player returns the player actor.
func (w *World) Player() *entity.Actor {
	return w.player
}

// Actors returns a snapshot of all actors in insertion order.
func (w *World) Actors() []*entity.Actor {
	return append([]*entity.Actor(nil), w.actors...)
}

// Add registers an actor. Blocking actors may not share a cell.
func (w *World) Add(a *entity.Actor) error {
	if !w.Grid.InBounds(a.Pos.X, a.Pos.Y) {
		return fmt.Errorf("add %s at %v: %w", a.Name, a.Pos, ErrOutOfBounds)
	}
	if a.BlocksMovement && w.BlockingActorAt(a.Pos.X, a.Pos.Y) != nil {
		return fmt.Errorf("add %s at %v: %w", a.Name, a.Pos, ErrCellOccupied)
	}
	w.actors = append(w.actors, a)
	return nil
}

// Spawn clones proto at pos and registers the clone.
func (w *World) Spawn(proto *entity.Actor, pos world.Position) (*entity.Actor, error) {
	clone := proto.Spawn(pos)
	if err := w.Add(clone); err != nil {
		return nil, err
	}
	return clone, nil
}

// Remove unregisters an actor. The player cannot be removed.
func (w *World) Remove(a *entity.Actor) error {
	if a == w.player {
		return ErrRemovePlayer
	}
	for i, other := range w.actors {
		if other == a {
			w.actors = append(w.actors[:i], w.actors[i+1:]...)
			return nil
		}
	}
	return ErrUnknownActor
}

// BlockingActorAt returns the first blocking actor at (x, y), or nil.
func (w *World) BlockingActorAt(x, y int) *entity.Actor {
	for _, a := range w.actors {
		if a.BlocksMovement && a.Pos.X == x && a.Pos.Y == y {
			return a
		}
	}
	return nil
}

// LivingActorAt returns the first living actor at (x, y), or nil.
func (w *World) LivingActorAt(x, y int) *entity.Actor {
	for _, a := range w.actors {
		if a.IsAlive() && a.Pos.X == x && a.Pos.Y == y {
			return a
		}
	}
	return nil
}

// CheckInvariants reports the first broken registry invariant: the player is
// registered, every actor is on the grid, and no cell holds two blocking actors.
func (w *World) CheckInvariants() error {
	if w.player == nil {
		return ErrNoPlayer
	}
	seen := make(map[world.Position]*entity.Actor, len(w.actors))
	foundPlayer := false
	for _, a := range w.actors {
		if a == w.player {
			foundPlayer = true
		}
		if !w.Grid.InBounds(a.Pos.X, a.Pos.Y) {
			return fmt.Errorf("%s at %v: %w", a.Name, a.Pos, ErrOutOfBounds)
		}
		if !a.BlocksMovement {
			continue
		}
		if other, ok := seen[a.Pos]; ok {
			return fmt.Errorf("%s and %s at %v: %w", other.Name, a.Name, a.Pos, ErrCellOccupied)
		}
		seen[a.Pos] = a
	}
	if !foundPlayer {
		return ErrNoPlayer
	}
	return nil
}

// RenderList returns the actors standing on visible cells in draw order:
// ascending render order, ties broken by insertion order.
func (w *World) RenderList() []*entity.Actor {
	var list []*entity.Actor
	for _, a := range w.actors {
		if w.Grid.IsVisible(a.Pos.X, a.Pos.Y) {
			list = append(list, a)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].RenderOrder < list[j].RenderOrder
	})
	return list
}
