package engine

import (
	"math"
	"testing"
)

func TestDoorTriggerOnlyActsFromClosed(t *testing.T) {
	d := NewDoor(DoorValue, DirNorth)
	d.Trigger()
	if d.State() != DoorOpening {
		t.Fatalf("State() = %v, want DoorOpening", d.State())
	}
	d.Update(0.1)
	mid := d.Slide()
	d.Trigger() // should be ignored; door is mid-animation
	if d.Slide() != mid {
		t.Errorf("Trigger() while Opening changed slide from %v to %v", mid, d.Slide())
	}
}

func TestDoorFullCycle(t *testing.T) {
	d := NewDoor(DoorValue, DirNorth)
	d.Trigger()

	// Drive past the slide window: should reach fully open.
	d.Update(doorSlideSeconds + 0.01)
	if d.State() != DoorOpened {
		t.Fatalf("State() = %v, want DoorOpened", d.State())
	}
	if math.Abs(d.Slide()) > 1e-6 {
		t.Errorf("Slide() = %v, want 0 at fully open", d.Slide())
	}

	// Dwell, then it should start closing on its own.
	d.Update(doorDwellSeconds + 0.01)
	if d.State() != DoorClosing {
		t.Fatalf("State() = %v, want DoorClosing", d.State())
	}

	d.Update(doorSlideSeconds + 0.01)
	if d.State() != DoorClosed {
		t.Fatalf("State() = %v, want DoorClosed", d.State())
	}
	if math.Abs(d.Slide()-1) > 1e-6 {
		t.Errorf("Slide() = %v, want 1 at fully closed", d.Slide())
	}
}

func TestPushPanelNonPushableIgnoresTrigger(t *testing.T) {
	p := NewPushPanel(5, DirWest, false)
	if p.Depth() != 0.5 {
		t.Fatalf("Depth() = %v, want 0.5 for non-pushable start", p.Depth())
	}
	p.Trigger()
	p.Update(5)
	if p.Depth() != 0.5 {
		t.Errorf("non-pushable panel depth changed: %v", p.Depth())
	}
}

func TestPushPanelRetractsToZero(t *testing.T) {
	p := NewPushPanel(5, DirWest, true)
	if p.Depth() != 1.0 {
		t.Fatalf("Depth() = %v, want 1.0 for pushable start", p.Depth())
	}
	p.Trigger()
	p.Update(pushPanelSeconds + 0.01)
	if p.Depth() != 0 {
		t.Errorf("Depth() = %v, want 0 after full retraction", p.Depth())
	}
	if p.Pushable() != true {
		t.Errorf("Pushable() changed after retraction")
	}
}

// TestPushPanelResumeMatchesDeltaFormula exercises the gween-tween resume
// against the original's delta-based resume formula: after retracting
// partway, re-triggering should still land the panel at depth 0 exactly
// pushPanelSeconds (scaled by the starting depth) later, since both trace
// depth(t) = depth0 - t/2.
func TestPushPanelResumeMatchesDeltaFormula(t *testing.T) {
	p := NewPushPanel(5, DirWest, true)
	p.Trigger()
	p.Update(1.0) // halfway: depth should be 0.5

	if math.Abs(p.Depth()-0.5) > 1e-4 {
		t.Fatalf("Depth() after 1s = %v, want ~0.5", p.Depth())
	}

	// Re-trigger mid-flight (simulating a resumed push); the remaining
	// travel time should be 2*depth = 1.0s.
	p.Trigger()
	p.Update(1.0)
	if p.Depth() != 0 {
		t.Errorf("Depth() after resumed full travel = %v, want 0", p.Depth())
	}
}
