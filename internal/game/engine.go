package game

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonturn/internal/entity"
	"github.com/samdwyer/dungeonturn/internal/logging"
	"github.com/samdwyer/dungeonturn/internal/telemetry"
)

// Reaction is one autonomous actor's action within a turn.
type Reaction struct {
	Actor  *entity.Actor
	Action Action
	Result Result
}

// TurnResult summarises one call to HandleAction.
type TurnResult struct {
	Turn      int
	Player    Result
	Reactions []Reaction
	// Ended is set once the session is over; the caller should stop.
	Ended bool
	// Defeated is set while the player is dead.
	Defeated bool
	// Ignored is set when the action was refused without taking a turn.
	Ignored bool
}

// Engine sequences turns: the player's action, one reaction from every other
// living autonomous actor, then a visibility refresh. A turn is atomic from
// the caller's point of view.
type Engine struct {
	world     *World
	state     State
	turn      int
	fovRadius int
	messages  *MessageLog
	tracer    trace.Tracer
	log       *logrus.Entry
}

// NewEngine creates an engine over w and computes the initial field of view.
func NewEngine(w *World, fovRadius int) *Engine {
	e := &Engine{
		world:     w,
		state:     StateIdle,
		fovRadius: fovRadius,
		messages:  NewMessageLog(DefaultMessageLimit),
		tracer:    telemetry.Tracer("game"),
		log:       logging.Component("engine"),
	}
	w.Grid.ComputeFOV(w.Player().Pos, fovRadius)
	return e
}

// State returns the orchestrator phase. Between calls it is idle, ended or defeated.
func (e *Engine) State() State { return e.state }

// Turn returns the number of turns resolved so far.
func (e *Engine) Turn() int { return e.turn }

// World returns the world being played.
func (e *Engine) World() *World { return e.world }

// Messages returns the message log.
func (e *Engine) Messages() *MessageLog { return e.messages }

// HandleAction resolves one player action and everything that follows it.
func (e *Engine) HandleAction(ctx context.Context, act Action) TurnResult {
	switch e.state {
	case StateEnded:
		return TurnResult{Turn: e.turn, Ended: true, Ignored: true}
	case StateDefeated:
		if act.Kind != ActionTerminate {
			return TurnResult{Turn: e.turn, Defeated: true, Ignored: true}
		}
	}

	player := e.world.Player()
	if act.Kind == ActionTerminate {
		e.state = StateEnded
		e.log.WithField("turn", e.turn).Info("session ended")
		return TurnResult{Turn: e.turn, Player: Perform(e.world, player, act), Ended: true}
	}

	e.turn++
	ctx, span := e.tracer.Start(ctx, "turn.resolve")
	defer span.End()

	e.state = StateResolving
	res := Perform(e.world, player, act)
	e.record(ctx, player, res)
	out := TurnResult{Turn: e.turn, Player: res}

	if player.IsAlive() {
		e.state = StateAutonomous
		out.Reactions = e.react(ctx, player)
	}

	e.state = StateVisibility
	e.world.Grid.ComputeFOV(player.Pos, e.fovRadius)

	if err := e.world.CheckInvariants(); err != nil {
		e.log.WithError(err).WithField("turn", e.turn).Error("world invariant violated")
	}

	if player.IsAlive() {
		e.state = StateIdle
	} else {
		e.state = StateDefeated
		out.Defeated = true
		e.log.WithField("turn", e.turn).Info("player defeated")
	}

	span.SetAttributes(
		attribute.Int("turn.number", e.turn),
		attribute.String("turn.action", act.Kind.String()),
		attribute.String("turn.outcome", res.Outcome.String()),
		attribute.Int("turn.reactions", len(out.Reactions)),
		attribute.Int("fov.visible_cells", e.world.Grid.VisibleCount()),
		attribute.String("turn.state", e.state.String()),
	)
	return out
}

// react lets every other living autonomous actor act once, in insertion
// order. It stops early if the player dies.
func (e *Engine) react(ctx context.Context, player *entity.Actor) []Reaction {
	var reactions []Reaction
	for _, a := range e.world.Actors() {
		if a == player || !a.IsAlive() || !a.AI.Autonomous() {
			continue
		}
		act := Decide(e.world, a)
		res := Perform(e.world, a, act)
		e.record(ctx, a, res)
		reactions = append(reactions, Reaction{Actor: a, Action: act, Result: res})

		if !player.IsAlive() {
			break
		}
	}
	return reactions
}

// record logs a result, keeps its message and adds it to the turn span.
func (e *Engine) record(ctx context.Context, actor *entity.Actor, res Result) {
	e.messages.Add(res.Message)
	trace.SpanFromContext(ctx).AddEvent("action", trace.WithAttributes(
		attribute.String("actor.id", actor.ID.String()),
		attribute.String("actor.name", actor.Name),
		attribute.String("action", res.Performed.String()),
		attribute.String("outcome", res.Outcome.String()),
	))

	fields := logrus.Fields{
		"turn":    e.turn,
		"actor":   actor.Name,
		"id":      actor.ID,
		"action":  res.Performed.String(),
		"outcome": res.Outcome.String(),
	}
	if res.Reason != "" {
		fields["reason"] = res.Reason
	}
	if res.Target != nil {
		fields["target"] = res.Target.Name
		fields["damage"] = res.Damage
		fields["dealt"] = res.Dealt
	}
	if res.Killed {
		e.log.WithFields(fields).Info(res.Message)
		return
	}
	e.log.WithFields(fields).Debug("action performed")
}
