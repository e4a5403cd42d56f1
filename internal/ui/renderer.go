package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomforge/internal/gamedata"
	"github.com/samdwyer/roomforge/internal/world"
)

// statusColor is used for the status line below the map.
var statusColor = gamedata.MustParseHexColor("#E0E0E0")

// Canvas is the drawing surface a Renderer writes to.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
}

// Renderer handles drawing a dungeon to the screen.
type Renderer struct {
	screen  Canvas
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen Canvas, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the final grid, scrolled by (offsetX, offsetY), and a status
// line on the last screen row.
func (r *Renderer) Render(d *world.Dungeon, offsetX, offsetY int) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapRows := height - 1
	for sy := 0; sy < mapRows; sy++ {
		y := sy + offsetY
		if y >= d.Height() {
			break
		}
		for sx := 0; sx < width; sx++ {
			x := sx + offsetX
			if x >= d.Width() {
				break
			}
			ch, style := r.cellStyle(d.Final.AtXY(x, y))
			r.screen.SetContent(sx, sy, ch, style)
		}
	}

	status := fmt.Sprintf("seed %q  rooms %d  corridors %d  [arrows scroll, q quits]",
		d.Options.Seed, len(d.Rooms), len(d.Corridors))
	r.RenderMessage(status, height-1)

	r.screen.Show()
}

// cellStyle returns the glyph and style for a cell code.
func (r *Renderer) cellStyle(c world.Cell) (rune, tcell.Style) {
	g := r.palette.Get(int(c))
	if g == nil {
		return '?', tcell.StyleDefault
	}
	return g.GlyphRune(), tcell.StyleDefault.Foreground(g.TCellColor())
}

// RenderMessage displays a message at the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(statusColor)
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
		i++
	}
}
