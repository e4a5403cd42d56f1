// Package pathing finds shortest paths over weighted grids.
package pathing

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

// WeightFunc returns the cost of stepping onto a cell. Non-positive weights
// make the cell impassable.
type WeightFunc func(c rl.Cell) int

// Graph is a 4-connected grid graph searched with A*. It keeps its own view
// of the grid, so later changes to the caller's grid do not affect it.
type Graph struct {
	grid   rl.Grid
	weight WeightFunc
	pr     *paths.PathRange
	nbs    paths.Neighbors
}

// NewGraph builds a graph over a copy of gd.
func NewGraph(gd rl.Grid, weight WeightFunc) *Graph {
	size := gd.Size()
	snapshot := rl.NewGrid(size.X, size.Y)
	snapshot.Copy(gd)
	return &Graph{
		grid:   snapshot,
		weight: weight,
		pr:     paths.NewPathRange(snapshot.Bounds()),
	}
}

// Search returns the cells from `from` to `to` inclusive, or nil when no
// path exists.
func (g *Graph) Search(from, to gruid.Point) []gruid.Point {
	if !g.passable(from) || !g.passable(to) {
		return nil
	}
	if from == to {
		return []gruid.Point{from}
	}
	return g.pr.AstarPath(g, from, to)
}

// Neighbors implements paths.Astar.
func (g *Graph) Neighbors(p gruid.Point) []gruid.Point {
	return g.nbs.Cardinal(p, g.passable)
}

// Cost implements paths.Astar.
func (g *Graph) Cost(from, to gruid.Point) int {
	return g.weight(g.grid.At(to))
}

// Estimation implements paths.Astar. Every step costs at least one, so the
// Manhattan distance never overestimates.
func (g *Graph) Estimation(from, to gruid.Point) int {
	return paths.DistanceManhattan(from, to)
}

func (g *Graph) passable(p gruid.Point) bool {
	return g.grid.Contains(p) && g.weight(g.grid.At(p)) > 0
}
