// Package game provides the interactive map viewer loop.
package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomforge/internal/config"
	"github.com/samdwyer/roomforge/internal/gamedata"
	"github.com/samdwyer/roomforge/internal/telemetry"
	"github.com/samdwyer/roomforge/internal/ui"
	"github.com/samdwyer/roomforge/internal/world"
)

// Display is the terminal the viewer draws to and reads input from.
type Display interface {
	ui.Canvas
	PollEvent() tcell.Event
	Sync()
	Close()
}

// Game holds the viewer state.
type Game struct {
	screen   Display
	renderer *ui.Renderer
	dungeon  *world.Dungeon
	offsetX  int
	offsetY  int
	running  bool
}

// New generates a dungeon from opts and prepares a viewer for it.
func New(ctx context.Context, screen Display, opts config.Options) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	d, err := world.Generate(ctx, opts, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("dungeon.rooms", len(d.Rooms)))
	if start, ok := d.StartRoom(); ok {
		c := start.Center()
		span.SetAttributes(
			attribute.Int("start.x", c.X),
			attribute.Int("start.y", c.Y),
		)
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		dungeon:  d,
		running:  true,
	}, nil
}

// Run executes the viewer loop until the user quits.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		if err := ctx.Err(); err != nil {
			g.screen.Close()
			return err
		}

		g.renderer.Render(g.dungeon, g.offsetX, g.offsetY)

		// Handle input (blocking)
		g.handleInput()
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
		g.scroll(0, 0)
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.scroll(0, -1)
	case tcell.KeyDown:
		g.scroll(0, 1)
	case tcell.KeyLeft:
		g.scroll(-1, 0)
	case tcell.KeyRight:
		g.scroll(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// scroll moves the viewport, keeping it within the map.
func (g *Game) scroll(dx, dy int) {
	width, height := g.screen.Size()
	height-- // status line

	maxX := max(g.dungeon.Width()-width, 0)
	maxY := max(g.dungeon.Height()-height, 0)
	g.offsetX = min(max(g.offsetX+dx, 0), maxX)
	g.offsetY = min(max(g.offsetY+dy, 0), maxY)
}
