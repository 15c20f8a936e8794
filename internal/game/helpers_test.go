package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonturn/internal/entity"
	"github.com/samdwyer/dungeonturn/internal/world"
)

func newPlayer(pos world.Position) *entity.Actor {
	return entity.NewActor("Player", '@', tcell.ColorWhite, pos).
		WithFighter(entity.NewFighter(30, 2, 5)).
		WithAI(entity.NewAI(entity.AIPlayer))
}

func newOrc(pos world.Position) *entity.Actor {
	return entity.NewActor("Orc", 'o', tcell.ColorGreen, pos).
		WithFighter(entity.NewFighter(10, 0, 3)).
		WithAI(entity.NewAI(entity.AIHostile))
}

// newTestWorld builds an open floor grid bordered by nothing.
func newTestWorld(t *testing.T, width, height int, player *entity.Actor, others ...*entity.Actor) *World {
	t.Helper()
	w, err := NewWorld(world.NewGrid(width, height, world.TileFloor), player)
	require.NoError(t, err)
	for _, a := range others {
		require.NoError(t, w.Add(a))
	}
	return w
}
