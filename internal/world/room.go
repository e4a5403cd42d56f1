package world

import "codeberg.org/anaseto/gruid"

// Direction names one of a room's four walls.
type Direction int

const (
	DirTop Direction = iota + 1
	DirBottom
	DirLeft
	DirRight
)

// String returns the wall name.
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Segment is an axis-aligned wall run from Start to End, inclusive.
type Segment struct {
	Start, End gruid.Point
}

// Walls holds the four segments outlining a room one cell outside it.
type Walls struct {
	Top, Bottom, Left, Right Segment
}

// Side returns the segment for a direction.
func (w Walls) Side(d Direction) Segment {
	switch d {
	case DirTop:
		return w.Top
	case DirBottom:
		return w.Bottom
	case DirLeft:
		return w.Left
	default:
		return w.Right
	}
}

// Passage is an opening on one of a room's walls.
type Passage struct {
	P       gruid.Point
	Wall    Direction
	Hidden  bool
	Trapped bool
}

// Trap is a hazard inside a room.
type Trap struct {
	P    gruid.Point
	Type int
}

// Treasure is loot inside a room.
type Treasure struct {
	P     gruid.Point
	Type  int
	Goods int
}

// Mob is a monster spawn inside a room.
type Mob struct {
	P    gruid.Point
	Type int
}

// Room represents a rectangular room and everything placed in it.
type Room struct {
	X, Y          int // Top-left interior corner
	Width, Height int // Interior dimensions

	IsStartPoint  bool
	IsOverlapping bool // Accepted only because overlap was allowed

	Walls     Walls
	Passages  []Passage
	Traps     []Trap
	Treasures []Treasure
	Mobs      []Mob
}

// NewRoom creates a room with its wall segments computed.
func NewRoom(x, y, width, height int) Room {
	r := Room{X: x, Y: y, Width: width, Height: height}
	topLeft := gruid.Point{X: x - 1, Y: y - 1}
	topRight := gruid.Point{X: x + width, Y: y - 1}
	bottomLeft := gruid.Point{X: x - 1, Y: y + height}
	bottomRight := gruid.Point{X: x + width, Y: y + height}
	r.Walls = Walls{
		Top:    Segment{Start: topLeft, End: topRight},
		Bottom: Segment{Start: bottomLeft, End: bottomRight},
		Left:   Segment{Start: topLeft, End: bottomLeft},
		Right:  Segment{Start: topRight, End: bottomRight},
	}
	return r
}

// Center returns the floor-divided midpoint of the room.
func (r Room) Center() gruid.Point {
	return gruid.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Interior returns the range of floor cells.
func (r Room) Interior() gruid.Range {
	return gruid.NewRange(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Contains returns true if the given point is inside the room interior.
func (r Room) Contains(p gruid.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Expanded returns the interior range grown by margin on every side.
func (r Room) Expanded(margin int) gruid.Range {
	return gruid.NewRange(r.X-margin, r.Y-margin, r.X+r.Width+margin, r.Y+r.Height+margin)
}

// Overlaps reports whether a and b intersect once both are grown by margin.
func Overlaps(a, b Room, margin int) bool {
	return b.X-margin < a.X+a.Width+margin &&
		b.X+b.Width+margin > a.X-margin &&
		b.Y-margin < a.Y+a.Height+margin &&
		b.Y+b.Height+margin > a.Y-margin
}

// Point is a grid position.
type Point = gruid.Point

func pt(x, y int) Point {
	return gruid.Point{X: x, Y: y}
}
