package world

import (
	"iter"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Grid is a fixed-size map of cell codes stored row-major in one buffer.
type Grid struct {
	cells rl.Grid
}

// NewGrid returns a height x width grid where every cell is buildable.
func NewGrid(height, width int) *Grid {
	gd := rl.NewGrid(width, height)
	gd.Fill(rl.Cell(CellBuildable))
	return &Grid{cells: gd}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.cells.Size().X
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.cells.Size().Y
}

// Bounds returns the grid range.
func (g *Grid) Bounds() gruid.Range {
	return g.cells.Bounds()
}

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p gruid.Point) bool {
	return g.cells.Contains(p)
}

// At returns the cell at p. Out-of-range positions read as buildable.
func (g *Grid) At(p gruid.Point) Cell {
	if !g.cells.Contains(p) {
		return CellBuildable
	}
	return Cell(g.cells.At(p))
}

// AtXY is At for separate coordinates.
func (g *Grid) AtXY(x, y int) Cell {
	return g.At(gruid.Point{X: x, Y: y})
}

// Set writes c at p. Out-of-range writes are ignored.
func (g *Grid) Set(p gruid.Point, c Cell) {
	g.cells.Set(p, rl.Cell(c))
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	size := g.cells.Size()
	gd := rl.NewGrid(size.X, size.Y)
	gd.Copy(g.cells)
	return &Grid{cells: gd}
}

// All iterates over every position and its cell in row-major order.
func (g *Grid) All() iter.Seq2[gruid.Point, Cell] {
	return func(yield func(gruid.Point, Cell) bool) {
		for p, c := range g.cells.All() {
			if !yield(p, Cell(c)) {
				return
			}
		}
	}
}

// Count returns how many cells hold code c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, got := range g.All() {
		if got == c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.cells.Size() != other.cells.Size() {
		return false
	}
	for p, c := range g.All() {
		if other.At(p) != c {
			return false
		}
	}
	return true
}

// fillRect writes c to every cell of the inclusive rectangle spanned by a and b.
func (g *Grid) fillRect(a, b gruid.Point, c Cell) {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Set(gruid.Point{X: x, Y: y}, c)
		}
	}
}

// raw exposes the backing buffer to path search.
func (g *Grid) raw() rl.Grid {
	return g.cells
}
