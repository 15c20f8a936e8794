package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonturn/internal/gamedata"
	"github.com/samdwyer/dungeonturn/internal/telemetry"
	"github.com/samdwyer/dungeonturn/internal/ui"
)

// messageLines is how many recent messages are shown under the map.
const messageLines = 5

// Game couples the turn engine to a terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	running  bool
}

// New creates a new game instance drawing to screen.
func New(ctx context.Context, cfg Config, screen *ui.Screen) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	registry, err := gamedata.LoadActorRegistry()
	if err != nil {
		return nil, fmt.Errorf("load actors: %w", err)
	}

	w, d, err := BuildWorld(ctx, cfg, registry)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("world.actors", len(w.actors)),
		attribute.Int("player.start_x", w.Player().Pos.X),
		attribute.Int("player.start_y", w.Player().Pos.Y),
	)

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		engine:   NewEngine(w, cfg.FOVRadius),
		running:  true,
	}, nil
}

// Engine returns the turn engine.
func (g *Game) Engine() *Engine { return g.engine }

// Run executes the main game loop until the session ends.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) render() {
	w := g.engine.World()
	status := ""
	if g.engine.State() == StateDefeated {
		status = "You died. Press Esc to quit."
	}
	g.renderer.Render(ui.Frame{
		Grid:     w.Grid,
		Actors:   w.RenderList(),
		Player:   w.Player(),
		Messages: g.engine.Messages().Recent(messageLines),
		Turn:     g.engine.Turn(),
		Status:   status,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		act, ok := ActionForKey(ev)
		if !ok {
			return
		}
		if res := g.engine.HandleAction(ctx, act); res.Ended {
			g.running = false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
