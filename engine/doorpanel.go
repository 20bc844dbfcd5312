package engine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DoorState is the Door's open/close state machine position.
type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpened
	DoorClosing
)

const (
	doorSlideSeconds = 1.5
	doorDwellSeconds = 3.0
)

// Door is a sliding Thin object: Closed -> Opening -> Opened -> Closing ->
// Closed, triggered by player interaction. Depth is fixed at 0.5 and it is
// never pushable; slide animates 1 (shut) to 0 (fully open) and back.
//
// The slide trajectory is linear in both directions, so it is driven by a
// gween.Tween the same way willow's TweenGroup drives node fields, rather
// than by hand-tracked delta/threshold bookkeeping.
type Door struct {
	value uint
	dir   Direction
	state DoorState
	slide float64
	tween *gween.Tween
	dwell float64
}

// NewDoor constructs a closed door. value must be >= DoorValue.
func NewDoor(value uint, dir Direction) *Door {
	return &Door{value: value, dir: dir, state: DoorClosed, slide: 1}
}

func (d *Door) Value() uint      { return d.value }
func (d *Door) Dir() Direction   { return d.dir }
func (d *Door) Slide() float64   { return d.slide }
func (d *Door) Depth() float64   { return 0.5 }
func (d *Door) Pushable() bool   { return false }
func (d *Door) State() DoorState { return d.state }

// Trigger starts opening a closed door. Doors mid-animation ignore
// further triggers (the original state machine only reacts from Closed).
func (d *Door) Trigger() {
	if d.state != DoorClosed {
		return
	}
	d.state = DoorOpening
	d.tween = gween.New(float32(d.slide), 0, doorSlideSeconds, ease.Linear)
}

// Update advances the door's state machine by dt seconds.
func (d *Door) Update(dt float64) {
	switch d.state {
	case DoorOpening:
		val, finished := d.tween.Update(float32(dt))
		d.slide = float64(val)
		if finished {
			d.slide = 0
			d.state = DoorOpened
			d.dwell = 0
		}
	case DoorOpened:
		d.dwell += dt
		if d.dwell >= doorDwellSeconds {
			d.state = DoorClosing
			d.tween = gween.New(0, 1, doorSlideSeconds, ease.Linear)
		}
	case DoorClosing:
		val, finished := d.tween.Update(float32(dt))
		d.slide = float64(val)
		if finished {
			d.slide = 1
			d.state = DoorClosed
		}
	}
}

const pushPanelSeconds = 2.0

// PushPanel is a Thin object that, when pushable and triggered, retracts
// its depth to 0 over 2 seconds and is then dissolved to Empty by the Map.
// Non-pushable thin walls never move; they exist purely as a slide=1,
// fixed-depth obstacle (a plain window/grate cell).
type PushPanel struct {
	value    uint
	dir      Direction
	depth    float64
	pushable bool
	moving   bool
	tween    *gween.Tween
}

// NewPushPanel constructs a panel. Starting depth is 1.0 when pushable,
// 0.5 otherwise, matching the original constructor.
func NewPushPanel(value uint, dir Direction, pushable bool) *PushPanel {
	depth := 0.5
	if pushable {
		depth = 1.0
	}
	return &PushPanel{value: value, dir: dir, depth: depth, pushable: pushable}
}

func (p *PushPanel) Value() uint    { return p.value }
func (p *PushPanel) Dir() Direction { return p.dir }
func (p *PushPanel) Slide() float64 { return 1 }
func (p *PushPanel) Depth() float64 { return p.depth }
func (p *PushPanel) Pushable() bool { return p.pushable }

// Trigger starts (or resumes, without a jump) the panel's retraction.
// Rebuilding the tween from the panel's current depth reproduces the
// original's `delta := 2*(1-depth)` resume bookkeeping: a linear tween
// from depth to 0 over `2*depth` seconds follows the identical line
// `depth(t) = depth0 - t/2` that the delta-based formula traces.
func (p *PushPanel) Trigger() {
	if !p.pushable {
		return
	}
	p.moving = true
	p.tween = gween.New(float32(p.depth), 0, float32(2*p.depth), ease.Linear)
}

// Update advances the retraction by dt seconds.
func (p *PushPanel) Update(dt float64) {
	if !p.pushable || !p.moving {
		return
	}
	val, finished := p.tween.Update(float32(dt))
	p.depth = float64(val)
	if finished {
		p.depth = 0
		p.moving = false
	}
}
