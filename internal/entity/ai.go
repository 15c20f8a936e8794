package entity

import "github.com/samdwyer/dungeonturn/internal/world"

// AIKind selects the decision policy of an autonomous-control strategy.
// The set is closed; new behaviours are added as new kinds.
type AIKind uint8

const (
	// AIPlayer marks the actor driven by external input. It is never asked
	// to decide on its own but keeps the actor alive.
	AIPlayer AIKind = iota + 1
	// AIHostile chases and attacks the player when it is in view.
	AIHostile
)

// String returns a human-readable kind name.
func (k AIKind) String() string {
	switch k {
	case AIPlayer:
		return "player"
	case AIHostile:
		return "hostile"
	default:
		return "unknown"
	}
}

// AI is an autonomous-control strategy plus the state it carries across turns.
type AI struct {
	Kind  AIKind
	Route []world.Position // Remaining cells to walk, next step first
}

// NewAI creates a strategy of the given kind with an empty route.
func NewAI(kind AIKind) *AI {
	return &AI{Kind: kind}
}

// Autonomous reports whether the orchestrator should ask this strategy for actions.
func (ai *AI) Autonomous() bool {
	return ai.Kind != AIPlayer
}

// Clone returns a copy that does not share the route.
func (ai *AI) Clone() *AI {
	c := *ai
	if ai.Route != nil {
		c.Route = append([]world.Position(nil), ai.Route...)
	}
	return &c
}

// NextStep pops the first cell of the route.
func (ai *AI) NextStep() (world.Position, bool) {
	if len(ai.Route) == 0 {
		return world.Position{}, false
	}
	next := ai.Route[0]
	ai.Route = ai.Route[1:]
	return next, true
}
