package engine

import "testing"

func TestCellHeight(t *testing.T) {
	if got := EmptyCell.CellHeight(); got != -1 {
		t.Errorf("EmptyCell.CellHeight() = %v, want -1", got)
	}
	wall := NewWallCell(3, 2.5)
	if got := wall.CellHeight(); got != 2.5 {
		t.Errorf("wall.CellHeight() = %v, want 2.5", got)
	}
	thin := NewThinCell(NewDoor(DoorValue, DirNorth))
	if got := thin.CellHeight(); got != 1 {
		t.Errorf("thin.CellHeight() = %v, want 1", got)
	}
}

func TestCellUpdateDissolvesRetractedPushPanel(t *testing.T) {
	panel := NewPushPanel(5, DirWest, true)
	cell := NewThinCell(panel)

	panel.Trigger()
	// Advance well past the 2*depth retraction window.
	if dissolve := cell.Update(10); !dissolve {
		t.Fatalf("expected a fully-retracted pushable panel to report dissolve=true")
	}
}

func TestCellUpdateIgnoresWallAndEmpty(t *testing.T) {
	wall := NewWallCell(1, 1)
	if dissolve := wall.Update(1); dissolve {
		t.Errorf("wall cell should never dissolve")
	}
	empty := EmptyCell
	if dissolve := empty.Update(1); dissolve {
		t.Errorf("empty cell should never dissolve")
	}
}

func TestCellUpdateNonPushableNeverDissolves(t *testing.T) {
	panel := NewPushPanel(5, DirWest, false)
	cell := NewThinCell(panel)
	panel.Trigger() // no-op: not pushable
	if dissolve := cell.Update(10); dissolve {
		t.Errorf("non-pushable thin cell should never dissolve")
	}
}

func TestCellTriggerForwardsToThinObject(t *testing.T) {
	door := NewDoor(DoorValue, DirNorth)
	cell := NewThinCell(door)
	cell.Trigger()
	if door.State() != DoorOpening {
		t.Errorf("door.State() = %v, want DoorOpening", door.State())
	}
}
