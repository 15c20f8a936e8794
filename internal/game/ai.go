package game

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonturn/internal/entity"
	"github.com/samdwyer/dungeonturn/internal/logging"
	"github.com/samdwyer/dungeonturn/internal/pathfind"
)

// OccupiedPenalty is added to the cost of a cell holding a blocking actor.
const OccupiedPenalty = 10

// Decide returns the action an autonomous actor takes this turn. Dead actors
// and the player always wait.
func Decide(w *World, actor *entity.Actor) Action {
	if actor.AI == nil {
		return Wait()
	}
	switch actor.AI.Kind {
	case entity.AIHostile:
		return decideHostile(w, actor)
	default:
		return Wait()
	}
}

// decideHostile chases the player while the actor is in view. An unseen
// actor keeps its route and waits.
func decideHostile(w *World, actor *entity.Actor) Action {
	ai := actor.AI
	player := w.Player()
	log := logging.Component("ai").WithFields(logrus.Fields{
		"actor": actor.Name,
		"id":    actor.ID,
		"pos":   actor.Pos,
	})

	if !w.Grid.IsVisible(actor.Pos.X, actor.Pos.Y) {
		return Wait()
	}

	if actor.Pos.ChebyshevTo(player.Pos) <= 1 {
		ai.Route = nil
		dx, dy := actor.Pos.Delta(player.Pos)
		log.Debug("attacking player")
		return Melee(dx, dy)
	}

	ai.Route = pathfind.Path(costGraph(w, actor), actor.Pos, player.Pos)
	if next, ok := ai.NextStep(); ok {
		dx, dy := actor.Pos.Delta(next)
		log.WithField("remaining", len(ai.Route)).Debug("following route")
		return Move(dx, dy)
	}

	log.Debug("no route to player")
	return Wait()
}

// costGraph prices every walkable cell at 1 and adds OccupiedPenalty where
// another blocking actor stands.
func costGraph(w *World, self *entity.Actor) *pathfind.CostGrid {
	g := w.Grid
	costs := pathfind.NewCostGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsWalkable(x, y) {
				costs.Set(x, y, 1)
			}
		}
	}
	for _, a := range w.actors {
		if a != self && a.BlocksMovement {
			costs.Add(a.Pos.X, a.Pos.Y, OccupiedPenalty)
		}
	}
	return costs
}
