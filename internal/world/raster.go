package world

// Rasterize stamps rooms onto a copy of base, in placement order. base is
// left untouched.
func Rasterize(base *Grid, rooms []Room) *Grid {
	gd := base.Clone()
	for i := range rooms {
		gd.stampRoom(&rooms[i])
	}
	// Overlapping rooms stamped later may have covered the start point.
	for _, room := range rooms {
		if room.IsStartPoint {
			gd.Set(room.Center(), CellStartPoint)
		}
	}
	return gd
}

// stampRoom writes floor, walls, passages and content for one room.
func (g *Grid) stampRoom(room *Room) {
	g.carveRoom(room)

	w := room.Walls
	for _, seg := range []Segment{w.Top, w.Bottom, w.Left, w.Right} {
		g.fillRect(seg.Start, seg.End, CellWall)
	}

	// Passages only open through walls. Trapped wins over hidden.
	for _, ps := range room.Passages {
		if g.At(ps.P) != CellWall {
			continue
		}
		g.Set(ps.P, CellPassage)
		if ps.Hidden {
			g.Set(ps.P, CellPassageHidden)
		}
		if ps.Trapped {
			g.Set(ps.P, CellPassageTrapped)
		}
	}

	for _, t := range room.Traps {
		g.setOnFloor(t.P, CellFloorTrapped)
	}
	for _, t := range room.Treasures {
		g.setOnFloor(t.P, CellTreasure)
	}
	for _, m := range room.Mobs {
		g.setOnFloor(m.P, CellMob)
	}

	if room.IsStartPoint {
		g.Set(room.Center(), CellStartPoint)
	}
}

// carveRoom sets all cells within the room to floor.
func (g *Grid) carveRoom(room *Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.Set(pt(x, y), CellFloor)
		}
	}
}

// setOnFloor writes c only over plain floor.
func (g *Grid) setOnFloor(p Point, c Cell) {
	if g.At(p) == CellFloor {
		g.Set(p, c)
	}
}
