package game

import (
	"fmt"

	"github.com/samdwyer/dungeonturn/internal/combat"
	"github.com/samdwyer/dungeonturn/internal/entity"
)

// ActionKind tags the variant of an Action.
type ActionKind uint8

const (
	ActionWait ActionKind = iota
	ActionMove
	ActionMelee
	ActionBump
	ActionTerminate
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionWait:
		return "wait"
	case ActionMove:
		return "move"
	case ActionMelee:
		return "melee"
	case ActionBump:
		return "bump"
	case ActionTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Action is one turn's intent. It is created, performed once, and dropped.
// DX and DY are only meaningful for the directional kinds.
type Action struct {
	Kind   ActionKind
	DX, DY int
}

// Wait does nothing.
func Wait() Action { return Action{Kind: ActionWait} }

// Move steps by (dx, dy) if the destination is free.
func Move(dx, dy int) Action { return Action{Kind: ActionMove, DX: dx, DY: dy} }

// Melee attacks whatever fights at (dx, dy).
func Melee(dx, dy int) Action { return Action{Kind: ActionMelee, DX: dx, DY: dy} }

// Bump attacks a living actor at (dx, dy), or moves there if there is none.
func Bump(dx, dy int) Action { return Action{Kind: ActionBump, DX: dx, DY: dy} }

// Terminate ends the session.
func Terminate() Action { return Action{Kind: ActionTerminate} }

// String formats the action for logs.
func (a Action) String() string {
	switch a.Kind {
	case ActionMove, ActionMelee, ActionBump:
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.DX, a.DY)
	default:
		return a.Kind.String()
	}
}

// Outcome is what performing an action actually did.
type Outcome uint8

const (
	OutcomeWaited Outcome = iota
	OutcomeMoved
	// OutcomeRejected means the move was refused; Reason says why. The turn
	// still counts as taken.
	OutcomeRejected
	OutcomeHit
	// OutcomeNoDamage means an attack landed but defense absorbed it.
	OutcomeNoDamage
	// OutcomeNoTarget means a melee found nobody to hit.
	OutcomeNoTarget
	OutcomeTerminated
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWaited:
		return "waited"
	case OutcomeMoved:
		return "moved"
	case OutcomeRejected:
		return "rejected"
	case OutcomeHit:
		return "hit"
	case OutcomeNoDamage:
		return "no_damage"
	case OutcomeNoTarget:
		return "no_target"
	case OutcomeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reasons a move is rejected.
const (
	ReasonOutOfBounds = "out_of_bounds"
	ReasonNotWalkable = "not_walkable"
	ReasonOccupied    = "occupied"
	ReasonUnarmed     = "unarmed"
)

// Result describes the effect of one performed action.
type Result struct {
	// Performed is the variant that ran; for a Bump it is Move or Melee.
	Performed ActionKind
	Outcome   Outcome
	Reason    string
	Target    *entity.Actor
	Damage    int // power minus defense
	Dealt     int // health actually removed
	Killed    bool
	Message   string
}

// Ended reports whether the session should stop.
func (r Result) Ended() bool {
	return r.Outcome == OutcomeTerminated
}

// Perform applies act for actor against w and reports what happened.
// Rejected moves and empty attacks are results, never errors.
func Perform(w *World, actor *entity.Actor, act Action) Result {
	switch act.Kind {
	case ActionWait:
		return Result{Performed: ActionWait, Outcome: OutcomeWaited}
	case ActionMove:
		return performMove(w, actor, act.DX, act.DY)
	case ActionMelee:
		return performMelee(w, actor, act.DX, act.DY)
	case ActionBump:
		dest := actor.Pos.Shift(act.DX, act.DY)
		if target := w.LivingActorAt(dest.X, dest.Y); target != nil && target != actor {
			return performMelee(w, actor, act.DX, act.DY)
		}
		return performMove(w, actor, act.DX, act.DY)
	case ActionTerminate:
		return Result{Performed: ActionTerminate, Outcome: OutcomeTerminated}
	default:
		return Result{Performed: act.Kind, Outcome: OutcomeWaited}
	}
}

// performMove checks bounds, then walkability, then occupancy.
func performMove(w *World, actor *entity.Actor, dx, dy int) Result {
	dest := actor.Pos.Shift(dx, dy)
	rejected := func(reason string) Result {
		return Result{Performed: ActionMove, Outcome: OutcomeRejected, Reason: reason}
	}

	if !w.Grid.InBounds(dest.X, dest.Y) {
		return rejected(ReasonOutOfBounds)
	}
	if !w.Grid.IsWalkable(dest.X, dest.Y) {
		return rejected(ReasonNotWalkable)
	}
	if other := w.BlockingActorAt(dest.X, dest.Y); other != nil && other != actor {
		return rejected(ReasonOccupied)
	}

	actor.Move(dx, dy)
	return Result{Performed: ActionMove, Outcome: OutcomeMoved}
}

func performMelee(w *World, actor *entity.Actor, dx, dy int) Result {
	if actor.Fighter == nil {
		return Result{Performed: ActionMelee, Outcome: OutcomeRejected, Reason: ReasonUnarmed}
	}

	dest := actor.Pos.Shift(dx, dy)
	target := meleeTargetAt(w, actor, dest.X, dest.Y)
	if target == nil {
		return Result{Performed: ActionMelee, Outcome: OutcomeNoTarget}
	}

	// Capture the name before a kill renames the corpse.
	name := target.Name
	res := combat.ResolveMelee(actor.Fighter, target.Fighter)

	out := Result{
		Performed: ActionMelee,
		Outcome:   OutcomeHit,
		Target:    target,
		Damage:    res.Damage,
		Dealt:     res.Dealt,
		Message:   res.Message,
	}
	if res.Outcome == combat.OutcomeNoDamage {
		out.Outcome = OutcomeNoDamage
	}
	if res.Killed && !target.IsAlive() {
		out.Killed = true
		if target == w.Player() {
			out.Message += " You died!"
		} else {
			out.Message += fmt.Sprintf(" %s is dead!", name)
		}
	}
	return out
}

// meleeTargetAt returns the first living actor with a fighter at (x, y).
func meleeTargetAt(w *World, attacker *entity.Actor, x, y int) *entity.Actor {
	for _, a := range w.actors {
		if a != attacker && a.IsAlive() && a.Fighter != nil && a.Pos.X == x && a.Pos.Y == y {
			return a
		}
	}
	return nil
}
