// Package world provides room-based map generation and the grid it produces.
package world

import "codeberg.org/anaseto/gruid/rl"

// Cell is the code stored in each grid position.
type Cell rl.Cell

const (
	// CellStartPoint marks the center of the start room.
	CellStartPoint Cell = 0
	// CellBuildable is empty space eligible to become any feature.
	CellBuildable Cell = 1
	// CellPassage is an open passage or corridor.
	CellPassage Cell = 20
	// CellPassageTrapped is a passage with a trap on it.
	CellPassageTrapped Cell = 22
	// CellPassageHidden is a passage that must be discovered.
	CellPassageHidden Cell = 23
	// CellFloor is open room interior.
	CellFloor Cell = 45
	// CellFloorTrapped is room interior holding a trap.
	CellFloorTrapped Cell = 46
	// CellTreasure is room interior holding treasure.
	CellTreasure Cell = 47
	// CellMob is room interior holding a mob.
	CellMob Cell = 50
	// CellWall is a room wall.
	CellWall Cell = 55
)

// Cells lists every cell code in ascending order.
var Cells = []Cell{
	CellStartPoint,
	CellBuildable,
	CellPassage,
	CellPassageTrapped,
	CellPassageHidden,
	CellFloor,
	CellFloorTrapped,
	CellTreasure,
	CellMob,
	CellWall,
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellStartPoint:
		return "start"
	case CellBuildable:
		return "buildable"
	case CellPassage:
		return "passage"
	case CellPassageTrapped:
		return "passage_trapped"
	case CellPassageHidden:
		return "passage_hidden"
	case CellFloor:
		return "floor"
	case CellFloorTrapped:
		return "floor_trapped"
	case CellTreasure:
		return "treasure"
	case CellMob:
		return "mob"
	case CellWall:
		return "wall"
	default:
		return "unknown"
	}
}

// IsInterior returns true for cells that belong to a room's floor area.
func (c Cell) IsInterior() bool {
	switch c {
	case CellFloor, CellFloorTrapped, CellTreasure, CellMob, CellStartPoint:
		return true
	default:
		return false
	}
}

// IsPassage returns true for any passage variant.
func (c Cell) IsPassage() bool {
	return c == CellPassage || c == CellPassageHidden || c == CellPassageTrapped
}

// IsPassable returns true if the cell can be walked on.
func (c Cell) IsPassable() bool {
	return c.IsInterior() || c.IsPassage()
}
