package world

import (
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/roomforge/internal/pathing"
)

// Pathfinder builds a searchable graph over a grid.
type Pathfinder interface {
	BuildGraph(g *Grid) Graph
}

// Graph finds paths between two cells. An empty result means no path.
type Graph interface {
	Search(from, to Point) []Point
}

// AstarPathfinder searches 4-connected paths that prefer open space and
// avoid cutting through walls.
type AstarPathfinder struct{}

// BuildGraph implements Pathfinder.
func (AstarPathfinder) BuildGraph(g *Grid) Graph {
	return pathing.NewGraph(g.raw(), cellWeight)
}

// cellWeight is the step cost used by AstarPathfinder.
func cellWeight(c rl.Cell) int {
	switch cell := Cell(c); {
	case cell == CellBuildable, cell.IsPassage():
		return 1
	case cell.IsInterior():
		return 2
	case cell == CellWall:
		return 8
	default:
		return 1
	}
}

// Corridor records one passage's connection attempt.
type Corridor struct {
	From    int   // Source room index
	Passage int   // Passage index within the source room
	To      int   // Target room index, -1 when no room was left to target
	Start   Point // Passage cell
	End     Point // Target room center
	Length  int   // Cells on the returned path
}

// Drawn reports whether a path was found and burned in.
func (c Corridor) Drawn() bool {
	return c.Length > 0
}

// Connect links every passage to its nearest room not yet targeted from the
// same source room, and returns a copy of grid with the corridors burned in.
func Connect(grid *Grid, rooms []Room, pf Pathfinder) (*Grid, []Corridor) {
	gd := grid.Clone()
	if len(rooms) < 2 {
		return gd, nil
	}

	graph := pf.BuildGraph(grid)
	var corridors []Corridor

	for i := range rooms {
		room := &rooms[i]
		connected := mapset.New[int]()
		connected.Put(i)

		for j, ps := range room.Passages {
			c := Corridor{From: i, Passage: j, To: -1, Start: ps.P}
			target := closestRoom(rooms, connected, room.Center())
			if target < 0 {
				corridors = append(corridors, c)
				continue
			}
			connected.Put(target)
			c.To = target
			c.End = rooms[target].Center()

			path := graph.Search(c.Start, c.End)
			c.Length = len(path)
			gd.burn(path)
			corridors = append(corridors, c)
		}
	}

	return gd, corridors
}

// closestRoom returns the index of the room whose center is nearest to from,
// skipping rooms in exclude. Ties go to the earlier room. Returns -1 when
// every room is excluded.
func closestRoom(rooms []Room, exclude mapset.Set[int], from Point) int {
	best := -1
	bestDist := 0
	for i := range rooms {
		if exclude.Has(i) {
			continue
		}
		d := rooms[i].Center().Sub(from)
		dist := d.X*d.X + d.Y*d.Y
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// burn marks path cells as passage. Floor is never downgraded, and the
// start point stays unique.
func (g *Grid) burn(path []Point) {
	for _, p := range path {
		if c := g.At(p); c == CellFloor || c == CellStartPoint {
			continue
		}
		g.Set(p, CellPassage)
	}
}
