package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonturn/internal/gamedata"
	"github.com/samdwyer/dungeonturn/internal/world"
)

func TestNewActorFromDef(t *testing.T) {
	registry := gamedata.MustLoadActorRegistry()

	player := NewActorFromDef(registry.Player(), world.Pos(3, 4))
	require.NotNil(t, player.Fighter)
	require.NotNil(t, player.AI)
	assert.Equal(t, AIPlayer, player.AI.Kind)
	assert.False(t, player.AI.Autonomous())
	assert.Equal(t, '@', player.Glyph)
	assert.Equal(t, 30, player.Fighter.HP())
	assert.Equal(t, world.Pos(3, 4), player.Pos)
	assert.True(t, player.BlocksMovement)

	troll := NewActorFromDef(registry.GetByID("troll"), world.Pos(1, 1))
	assert.Equal(t, AIHostile, troll.AI.Kind)
	assert.True(t, troll.AI.Autonomous())
	assert.Equal(t, "Troll", troll.Fighter.GetName())
	assert.Equal(t, 4, troll.Fighter.GetPower())
	assert.Equal(t, 1, troll.Fighter.GetDefense())
}

func TestActor_SpawnDeepCopies(t *testing.T) {
	proto := newOrc(world.Pos(0, 0))
	proto.AI.Route = []world.Position{{X: 1, Y: 0}, {X: 2, Y: 0}}

	clone := proto.Spawn(world.Pos(5, 6))

	assert.NotEqual(t, proto.ID, clone.ID)
	assert.Equal(t, world.Pos(5, 6), clone.Pos)
	assert.Equal(t, world.Pos(0, 0), proto.Pos)

	clone.Fighter.SetHP(0)
	assert.Equal(t, 10, proto.Fighter.HP(), "fighter must not be shared")
	assert.True(t, proto.IsAlive())
	assert.False(t, clone.IsAlive())
	assert.Equal(t, "Orc", proto.Name)

	clone2 := proto.Spawn(world.Pos(1, 1))
	clone2.AI.Route[0] = world.Pos(9, 9)
	assert.Equal(t, world.Pos(1, 0), proto.AI.Route[0], "route must not be shared")
}

func TestAI_NextStep(t *testing.T) {
	ai := NewAI(AIHostile)
	_, ok := ai.NextStep()
	assert.False(t, ok)

	ai.Route = []world.Position{{X: 1, Y: 1}, {X: 2, Y: 2}}
	p, ok := ai.NextStep()
	assert.True(t, ok)
	assert.Equal(t, world.Pos(1, 1), p)
	assert.Len(t, ai.Route, 1)
}

func TestRenderOrderIsTotal(t *testing.T) {
	assert.Less(t, int(RenderCorpse), int(RenderItem))
	assert.Less(t, int(RenderItem), int(RenderActor))
	assert.Equal(t, "corpse", RenderCorpse.String())
	assert.Equal(t, "hostile", AIHostile.String())
}
