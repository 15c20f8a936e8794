package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonturn/internal/world"
)

func TestDecide_InertActorsWait(t *testing.T) {
	player := newPlayer(world.Pos(1, 1))
	corpse := newOrc(world.Pos(2, 1))
	w := newTestWorld(t, 5, 5, player, corpse)
	corpse.Fighter.SetHP(0)
	w.Grid.ComputeFOV(player.Pos, 8)

	assert.Equal(t, Wait(), Decide(w, player))
	assert.Equal(t, Wait(), Decide(w, corpse))
}

func TestDecide_HostileAttacksWhenAdjacent(t *testing.T) {
	player := newPlayer(world.Pos(5, 5))
	orc := newOrc(world.Pos(6, 6))
	w := newTestWorld(t, 10, 10, player, orc)
	w.Grid.ComputeFOV(player.Pos, 8)
	orc.AI.Route = []world.Position{world.Pos(1, 1)}

	assert.Equal(t, Melee(-1, -1), Decide(w, orc))
	assert.Empty(t, orc.AI.Route, "melee discards the route")
}

func TestDecide_HostileChases(t *testing.T) {
	player := newPlayer(world.Pos(1, 1))
	orc := newOrc(world.Pos(5, 1))
	w := newTestWorld(t, 10, 10, player, orc)
	w.Grid.ComputeFOV(player.Pos, 8)

	act := Decide(w, orc)
	assert.Equal(t, Move(-1, 0), act)
	assert.Len(t, orc.AI.Route, 3, "route keeps the remaining steps to the player")
	assert.Equal(t, player.Pos, orc.AI.Route[len(orc.AI.Route)-1])
}

// The orc is out of sight with a stale route: it waits and keeps the route.
func TestScenario_UnseenHostileKeepsRoute(t *testing.T) {
	player := newPlayer(world.Pos(1, 1))
	orc := newOrc(world.Pos(8, 1))
	w := newTestWorld(t, 10, 10, player, orc)
	w.Grid.Fill(5, 0, 1, 10, world.TileWall)
	w.Grid.ComputeFOV(player.Pos, 8)
	require.False(t, w.Grid.IsVisible(orc.Pos.X, orc.Pos.Y))

	route := []world.Position{world.Pos(7, 1), world.Pos(6, 1)}
	orc.AI.Route = append([]world.Position(nil), route...)

	assert.Equal(t, Wait(), Decide(w, orc))
	assert.Equal(t, route, orc.AI.Route)
}

func TestDecide_NoRouteWaits(t *testing.T) {
	player := newPlayer(world.Pos(1, 1))
	orc := newOrc(world.Pos(4, 1))
	w := newTestWorld(t, 6, 3, player, orc)
	// Viewing from the orc itself keeps it visible behind the wall.
	w.Grid.Fill(2, 0, 1, 3, world.TileWall)
	w.Grid.ComputeFOV(orc.Pos, 8)
	require.True(t, w.Grid.IsVisible(orc.Pos.X, orc.Pos.Y))

	assert.Equal(t, Wait(), Decide(w, orc))
	assert.Empty(t, orc.AI.Route)
}

func TestCostGraph(t *testing.T) {
	player := newPlayer(world.Pos(0, 0))
	orc := newOrc(world.Pos(2, 0))
	other := newOrc(world.Pos(3, 0))
	corpse := newOrc(world.Pos(1, 1))
	w := newTestWorld(t, 5, 2, player, orc, other, corpse)
	corpse.Fighter.SetHP(0)
	w.Grid.SetTile(4, 1, world.TileWall)

	costs := costGraph(w, orc)
	assert.Equal(t, 1, costs.Cost(2, 0), "own cell")
	assert.Equal(t, 1+OccupiedPenalty, costs.Cost(3, 0))
	assert.Equal(t, 1+OccupiedPenalty, costs.Cost(0, 0))
	assert.Equal(t, 1, costs.Cost(1, 1), "corpses do not block")
	assert.Equal(t, 0, costs.Cost(4, 1))
}

func TestDecide_RoutesAroundCrowd(t *testing.T) {
	// Two rows: the orc at the east end of the top row, another orc in the
	// way. The chaser should sidestep rather than queue behind it.
	player := newPlayer(world.Pos(0, 0))
	blocker := newOrc(world.Pos(3, 0))
	chaser := newOrc(world.Pos(4, 0))
	w := newTestWorld(t, 5, 2, player, blocker, chaser)
	w.Grid.ComputeFOV(player.Pos, 8)

	act := Decide(w, chaser)
	assert.Equal(t, Move(-1, 1), act)
}
