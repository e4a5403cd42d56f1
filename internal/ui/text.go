package ui

import (
	"bufio"
	"io"

	"github.com/samdwyer/roomforge/internal/gamedata"
	"github.com/samdwyer/roomforge/internal/world"
)

// WriteText prints the grid with two characters per cell, one row per line.
func WriteText(w io.Writer, gd *world.Grid, palette *gamedata.Palette) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < gd.Height(); y++ {
		for x := 0; x < gd.Width(); x++ {
			text := "??"
			if g := palette.Get(int(gd.AtXY(x, y))); g != nil {
				text = g.Text
			}
			if _, err := bw.WriteString(text); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
