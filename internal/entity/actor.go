// Package entity provides actors and the components attached to them.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/dungeonturn/internal/gamedata"
	"github.com/samdwyer/dungeonturn/internal/world"
)

// CorpseColor is applied to an actor when it dies.
var CorpseColor = tcell.NewRGBColor(191, 0, 0)

// Actor is a positioned entity. Combat stats and autonomous control are
// optional components; an actor without AI is inert.
type Actor struct {
	ID             uuid.UUID
	DefID          string // Template the actor was built from, empty if hand-made
	Name           string
	Pos            world.Position
	Glyph          rune
	Color          tcell.Color
	BlocksMovement bool
	RenderOrder    RenderOrder

	Fighter *Fighter // nil if the actor cannot fight
	AI      *AI      // nil once dead or if never controlled
}

// NewActor creates a blocking actor at pos. Attach components with
// WithFighter and WithAI.
func NewActor(name string, glyph rune, color tcell.Color, pos world.Position) *Actor {
	return &Actor{
		ID:             uuid.New(),
		Name:           name,
		Pos:            pos,
		Glyph:          glyph,
		Color:          color,
		BlocksMovement: true,
		RenderOrder:    RenderActor,
	}
}

// NewActorFromDef builds an actor from a data-driven definition.
func NewActorFromDef(def *gamedata.ActorDef, pos world.Position) *Actor {
	a := NewActor(def.Name, def.GlyphRune(), def.TCellColor(), pos)
	a.DefID = def.ID
	a.WithFighter(NewFighter(def.HP, def.Defense, def.Power))

	switch def.Control {
	case gamedata.ControlPlayer:
		a.WithAI(NewAI(AIPlayer))
	case gamedata.ControlHostile:
		a.WithAI(NewAI(AIHostile))
	}
	return a
}

// WithFighter attaches a combat component and returns the actor.
func (a *Actor) WithFighter(f *Fighter) *Actor {
	f.owner = a
	a.Fighter = f
	return a
}

// WithAI attaches an autonomous-control strategy and returns the actor.
func (a *Actor) WithAI(ai *AI) *Actor {
	a.AI = ai
	return a
}

// IsAlive reports whether the actor still has a control strategy.
func (a *Actor) IsAlive() bool {
	return a.AI != nil
}

// Spawn returns a deep copy of the actor at pos with a fresh identity.
// The receiver is treated as a template and is not modified.
func (a *Actor) Spawn(pos world.Position) *Actor {
	clone := *a
	clone.ID = uuid.New()
	clone.Pos = pos
	clone.Fighter = nil
	clone.AI = nil

	if a.Fighter != nil {
		f := *a.Fighter
		clone.WithFighter(&f)
	}
	if a.AI != nil {
		clone.AI = a.AI.Clone()
	}
	return &clone
}

// Move shifts the actor by the given delta without any checks.
func (a *Actor) Move(dx, dy int) {
	a.Pos = a.Pos.Shift(dx, dy)
}

// die strips the control strategy and turns the actor into a corpse.
func (a *Actor) die() {
	a.AI = nil
	a.BlocksMovement = false
	a.Glyph = '%'
	a.Color = CorpseColor
	a.RenderOrder = RenderCorpse
	a.Name = "remains of " + a.Name
}
