package pathing

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

const (
	open  rl.Cell = 0
	slow  rl.Cell = 1
	block rl.Cell = 2
)

func weight(c rl.Cell) int {
	switch c {
	case open:
		return 1
	case slow:
		return 20
	default:
		return 0
	}
}

// checkPath verifies the path runs from -> to in unit cardinal steps.
func checkPath(t *testing.T, path []gruid.Point, from, to gruid.Point) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("Expected a path, got none")
	}
	if path[0] != from || path[len(path)-1] != to {
		t.Fatalf("Path should run %v -> %v, got %v -> %v", from, to, path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if paths.DistanceManhattan(path[i-1], path[i]) != 1 {
			t.Fatalf("Non-cardinal step %v -> %v", path[i-1], path[i])
		}
	}
}

func TestSearchOpenGrid(t *testing.T) {
	gd := rl.NewGrid(10, 10)
	gd.Fill(open)
	g := NewGraph(gd, weight)

	from, to := gruid.Point{X: 1, Y: 1}, gruid.Point{X: 7, Y: 4}
	path := g.Search(from, to)
	checkPath(t, path, from, to)
	if len(path) != paths.DistanceManhattan(from, to)+1 {
		t.Errorf("Expected shortest path of %d cells, got %d", paths.DistanceManhattan(from, to)+1, len(path))
	}
}

func TestSearchAvoidsExpensiveCells(t *testing.T) {
	gd := rl.NewGrid(7, 5)
	gd.Fill(open)
	// A slow column with an open gap at the bottom.
	for y := 0; y < 4; y++ {
		gd.Set(gruid.Point{X: 3, Y: y}, slow)
	}
	g := NewGraph(gd, weight)

	from, to := gruid.Point{X: 0, Y: 0}, gruid.Point{X: 6, Y: 0}
	path := g.Search(from, to)
	checkPath(t, path, from, to)
	for _, p := range path {
		if gd.At(p) == slow {
			t.Fatalf("Path should detour through the gap, went through %v", p)
		}
	}
}

func TestSearchNoPath(t *testing.T) {
	gd := rl.NewGrid(5, 5)
	gd.Fill(open)
	for y := 0; y < 5; y++ {
		gd.Set(gruid.Point{X: 2, Y: y}, block)
	}
	g := NewGraph(gd, weight)

	if path := g.Search(gruid.Point{X: 0, Y: 0}, gruid.Point{X: 4, Y: 4}); len(path) != 0 {
		t.Errorf("Expected no path across a blocked column, got %v", path)
	}
	if path := g.Search(gruid.Point{X: 0, Y: 0}, gruid.Point{X: 9, Y: 9}); len(path) != 0 {
		t.Errorf("Expected no path to an out-of-range cell, got %v", path)
	}
}

func TestGraphSnapshotsGrid(t *testing.T) {
	gd := rl.NewGrid(5, 1)
	gd.Fill(open)
	g := NewGraph(gd, weight)

	gd.Set(gruid.Point{X: 2, Y: 0}, block)

	from, to := gruid.Point{X: 0, Y: 0}, gruid.Point{X: 4, Y: 0}
	checkPath(t, g.Search(from, to), from, to)
}

func TestSearchSameCell(t *testing.T) {
	gd := rl.NewGrid(3, 3)
	gd.Fill(open)
	g := NewGraph(gd, weight)

	p := gruid.Point{X: 1, Y: 1}
	path := g.Search(p, p)
	if len(path) != 1 || path[0] != p {
		t.Errorf("Expected single-cell path, got %v", path)
	}
}
