package world

import "testing"

func TestNewGrid(t *testing.T) {
	gd := NewGrid(4, 7)
	if gd.Height() != 4 || gd.Width() != 7 {
		t.Fatalf("Expected 4 rows by 7 columns, got %dx%d", gd.Height(), gd.Width())
	}
	if gd.Count(CellBuildable) != 28 {
		t.Errorf("Expected every cell buildable, got %d", gd.Count(CellBuildable))
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	gd := NewGrid(5, 5)
	gd.Set(pt(1, 1), CellWall)
	clone := gd.Clone()

	if !clone.Equal(gd) {
		t.Fatal("Clone should equal its source")
	}
	clone.Set(pt(2, 2), CellFloor)
	if gd.AtXY(2, 2) != CellBuildable {
		t.Error("Writing the clone changed the source")
	}
	if clone.Equal(gd) {
		t.Error("Grids with different cells should not be equal")
	}
}

func TestGridOutOfRange(t *testing.T) {
	gd := NewGrid(3, 3)
	gd.Set(pt(5, 5), CellWall)
	gd.Set(pt(-1, 0), CellWall)

	if gd.Count(CellWall) != 0 {
		t.Error("Out-of-range writes should be ignored")
	}
	if gd.AtXY(9, 9) != CellBuildable {
		t.Error("Out-of-range reads should return buildable")
	}
}

func TestGridFillRect(t *testing.T) {
	gd := NewGrid(6, 6)
	gd.fillRect(pt(4, 1), pt(1, 3), CellWall)

	if n := gd.Count(CellWall); n != 12 {
		t.Errorf("Expected 12 wall cells, got %d", n)
	}
	if gd.AtXY(1, 1) != CellWall || gd.AtXY(4, 3) != CellWall {
		t.Error("Walls should span (1,1)-(4,3)")
	}
	if gd.AtXY(0, 1) != CellBuildable || gd.AtXY(5, 3) != CellBuildable || gd.AtXY(1, 4) != CellBuildable {
		t.Error("Cells outside the rectangle should stay buildable")
	}
}

func TestGridEqualSize(t *testing.T) {
	if NewGrid(3, 4).Equal(NewGrid(4, 3)) {
		t.Error("Grids of different shapes should not be equal")
	}
}

func TestCellNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Cells {
		name := c.String()
		if name == "unknown" || seen[name] {
			t.Errorf("Cell %d has bad or duplicate name %q", c, name)
		}
		seen[name] = true
	}
	if Cell(99).String() != "unknown" {
		t.Error("Unlisted codes should be unknown")
	}
}
