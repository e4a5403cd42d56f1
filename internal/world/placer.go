package world

import (
	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/roomforge/internal/config"
	"github.com/samdwyer/roomforge/internal/rng"
)

const (
	// roomMargin is the gap kept to the map border and, when overlap is
	// disallowed, around every room.
	roomMargin = 2
	// maxConsecutiveFailures stops placement after this many rejected
	// candidates in a row.
	maxConsecutiveFailures = 50
	// maxContentType bounds the type and goods values of room content.
	maxContentType = 10
)

// Placement is the outcome of room placement.
type Placement struct {
	Rooms     []Room
	Failures  int  // Total rejected candidates
	Exhausted bool // Stopped early by the consecutive failure cap
	Draws     int  // Values consumed from the sequencer
}

// placer draws rooms and their content from a sequencer it owns.
type placer struct {
	seq  *rng.Sequencer
	opts config.Options
}

// PlaceRooms places up to opts.MaxRooms rooms. The sequencer is consumed
// in a fixed order, so the same seed and options always give the same rooms.
func PlaceRooms(seq *rng.Sequencer, opts config.Options) Placement {
	p := &placer{seq: seq, opts: opts}
	return p.place()
}

func (p *placer) place() Placement {
	var result Placement
	rooms := make([]Room, 0, p.opts.MaxRooms)
	failures := 0

	for len(rooms) < p.opts.MaxRooms {
		if failures >= maxConsecutiveFailures {
			result.Exhausted = true
			break
		}

		room := p.candidate()
		overlapping := overlapsAny(rooms, room)
		if overlapping && !p.opts.AllowOverlap {
			failures++
			result.Failures++
			continue
		}

		failures = 0
		room.IsOverlapping = overlapping
		room.IsStartPoint = len(rooms) == 0
		p.furnish(&room)
		rooms = append(rooms, room)
	}

	result.Rooms = rooms
	result.Draws = p.seq.Draws()
	return result
}

// candidate draws origin then size. Origins leave room for the largest
// possible room plus the border margin.
func (p *placer) candidate() Room {
	x := p.seq.NextInt(roomMargin, p.opts.Width-p.opts.MaxRoomSize-roomMargin)
	y := p.seq.NextInt(roomMargin, p.opts.Height-p.opts.MaxRoomSize-roomMargin)
	width := p.seq.NextInt(p.opts.MinRoomSize, p.opts.MaxRoomSize)
	height := p.seq.NextInt(p.opts.MinRoomSize, p.opts.MaxRoomSize)
	return NewRoom(x, y, width, height)
}

func overlapsAny(rooms []Room, room Room) bool {
	for _, other := range rooms {
		if Overlaps(other, room, roomMargin) {
			return true
		}
	}
	return false
}

// furnish draws passages, then traps, treasures and mobs. The start room
// gets passages only.
func (p *placer) furnish(room *Room) {
	passages := p.seq.NextInt(1, p.opts.MaxPassagesPerRoom)
	for range passages {
		dir := Direction(p.seq.NextInt(int(DirTop), int(DirRight)))
		room.Passages = append(room.Passages, p.passage(room.Walls.Side(dir), dir))
	}

	if room.IsStartPoint {
		return
	}

	traps := p.seq.NextInt(0, p.opts.MaxTrapsPerRoom)
	for range traps {
		pos := p.interiorPoint(room)
		room.Traps = append(room.Traps, Trap{P: pos, Type: p.seq.NextInt(0, maxContentType)})
	}

	treasures := p.seq.NextInt(0, p.opts.MaxTreasuresPerRoom)
	for range treasures {
		pos := p.interiorPoint(room)
		kind := p.seq.NextInt(0, maxContentType)
		goods := p.seq.NextInt(0, maxContentType)
		room.Treasures = append(room.Treasures, Treasure{P: pos, Type: kind, Goods: goods})
	}

	mobs := p.seq.NextInt(1, p.opts.MaxMobsPerRoom)
	for range mobs {
		pos := p.interiorPoint(room)
		room.Mobs = append(room.Mobs, Mob{P: pos, Type: p.seq.NextInt(0, maxContentType)})
	}
}

// passage picks a point strictly between the segment's corners along its
// varying axis, then the hidden and trapped flags.
func (p *placer) passage(seg Segment, dir Direction) Passage {
	x := seg.Start.X
	if seg.Start.X != seg.End.X {
		x = p.seq.NextInt(seg.Start.X+1, seg.End.X-1)
	}
	y := seg.Start.Y
	if seg.Start.Y != seg.End.Y {
		y = p.seq.NextInt(seg.Start.Y+1, seg.End.Y-1)
	}
	return Passage{
		P:       gruid.Point{X: x, Y: y},
		Wall:    dir,
		Hidden:  p.seq.NextBool(),
		Trapped: p.seq.NextBool(),
	}
}

func (p *placer) interiorPoint(room *Room) gruid.Point {
	x := p.seq.NextInt(room.X, room.X+room.Width-1)
	y := p.seq.NextInt(room.Y, room.Y+room.Height-1)
	return gruid.Point{X: x, Y: y}
}
