package engine

import "math"

// Action scancodes recognized by ProcessEvent / HandleInput. Unknown codes
// are ignored.
const (
	KeyMoveForward  = 90
	KeyMoveForward2 = 87
	KeyMoveBackward = 83
	KeyLookLeft     = 81
	KeyLookLeft2    = 65
	KeyLookRight    = 68
	KeyJump         = 32
	KeyInteract     = 70
)

type playerAction int

const (
	actionNone playerAction = iota
	actionInteract
)

// Player holds the camera (dir/plane), position, and input/physics state.
// dir and plane encode the camera basis; plane is perpendicular to dir
// with length 0.66 (the field of view). velocity.X is forward/back speed,
// velocity.Y is vertical speed; rotation.X is yaw rate in rad/s.
type Player struct {
	Pos   Vec3
	Dir   Vec2
	Plane Vec2
	Frame uint

	walkDelta float64
	gravity   float64
	velocity  Vec2
	rotation  Vec2
	action    playerAction
}

// NewPlayer constructs a player at pos with a 0.66-length view plane. The
// camera starts facing +X and then takes the original's initial
// quarter-turn rotation, so the player ends up facing +Y (Dir = (0,1)).
func NewPlayer(pos Vec3) *Player {
	p := &Player{
		Pos:     pos,
		Dir:     Vec2{X: 1, Y: 0},
		Plane:   Vec2{X: 0, Y: 0.66},
		gravity: -3.8,
	}
	p.updateDir(math.Pi/2, 1)
	return p
}

// HandleInput updates velocity/rotation/action state from a scancode and
// press/release edge. Jump only takes effect when grounded
// (velocity.Y == 0). Interact is edge-triggered: Update clears it after use.
func (p *Player) HandleInput(key int, pressed bool) {
	switch key {
	case KeyMoveForward, KeyMoveForward2:
		if pressed {
			p.velocity.X = 4
		} else {
			p.velocity.X = 0
		}
	case KeyMoveBackward:
		if pressed {
			p.velocity.X = -4
		} else {
			p.velocity.X = 0
		}
	case KeyJump:
		if pressed && p.velocity.Y == 0 {
			p.velocity.Y = 1.65
		}
	case KeyLookLeft, KeyLookLeft2:
		if pressed {
			p.rotation.X = -3.5
		} else {
			p.rotation.X = 0
		}
	case KeyLookRight:
		if pressed {
			p.rotation.X = 3.5
		} else {
			p.rotation.X = 0
		}
	case KeyInteract:
		p.action = actionInteract
	}
}

func (p *Player) updateGravity(m *Map, dt float64) {
	futureZ := p.Pos.Z + p.velocity.Y*dt
	insideWall := m.Get(p.Pos)
	futureUnderWall := m.Get(Vec3{X: p.Pos.X, Y: p.Pos.Y, Z: futureZ})

	p.velocity.Y += p.gravity * dt

	if futureZ < 0 {
		p.velocity.Y = 0
		p.Pos.Z = 0
		return
	}

	switch insideWall.Kind {
	case CellWall:
		if futureZ <= math.Floor(p.Pos.Z)+insideWall.Height {
			futureZ = math.Floor(p.Pos.Z) + insideWall.Height
			p.velocity.Y = 0
		}
	case CellEmpty:
		if futureZ <= math.Floor(futureZ)+futureUnderWall.CellHeight() {
			futureZ = math.Floor(futureZ) + futureUnderWall.CellHeight()
			p.velocity.Y = 0
		}
	}
	p.Pos.Z = futureZ
}

// moveXInThinWall gates X motion against a thin wall occupying the cell
// the player is currently standing in. Walls whose dir is under_light
// (X-facing, i.e. their slit runs along Y) never block X motion.
func (p *Player) moveXInThinWall(xCoord, newX float64, dir Direction, slide, depth float64) {
	if dir.IsUnderLight() {
		p.Pos.X = newX
		return
	}
	limit := xCoord
	if dir == DirEast {
		limit += depth
	} else {
		limit += 1 - depth
	}
	relativeY := p.Pos.Y - math.Floor(p.Pos.Y)

	if ((p.Pos.X > limit && newX < limit) || (p.Pos.X < limit && newX > limit)) && relativeY < slide {
		return
	}
	p.Pos.X = newX
}

// moveYInThinWall is the Y-axis counterpart of moveXInThinWall.
func (p *Player) moveYInThinWall(yCoord, newY float64, dir Direction, slide, depth float64) {
	if !dir.IsUnderLight() {
		p.Pos.Y = newY
		return
	}
	limit := yCoord
	if dir == DirNorth {
		limit += depth
	} else {
		limit += 1 - depth
	}
	relativeX := p.Pos.X - math.Floor(p.Pos.X)

	if ((p.Pos.Y > limit && newY < limit) || (p.Pos.Y < limit && newY > limit)) && relativeX < slide {
		return
	}
	p.Pos.Y = newY
}

func (p *Player) updatePos(m *Map, dt float64) {
	speed := p.velocity.X * dt
	newX := p.Pos.X + p.Dir.X*speed
	newY := p.Pos.Y + p.Dir.Y*speed

	source, dest, ok := m.PortalsAt(Vec3{X: math.Floor(newX), Y: math.Floor(newY), Z: math.Floor(p.Pos.Z)}, DirNone)
	if !ok {
		switch cell := m.Get(Vec3{X: newX, Y: p.Pos.Y, Z: p.Pos.Z}); cell.Kind {
		case CellEmpty:
			if cur := m.Get(p.Pos); cur.Kind == CellThin {
				p.moveXInThinWall(math.Floor(p.Pos.X), newX, cur.Object.Dir(), cur.Object.Slide(), cur.Object.Depth())
			} else {
				p.Pos.X = newX
			}
		case CellWall:
			if p.Pos.Z >= math.Floor(p.Pos.Z)+cell.Height {
				p.Pos.X = newX
			}
		case CellThin:
			p.moveXInThinWall(math.Floor(newX), newX, cell.Object.Dir(), cell.Object.Slide(), cell.Object.Depth())
		}

		switch cell := m.Get(Vec3{X: p.Pos.X, Y: newY, Z: p.Pos.Z}); cell.Kind {
		case CellEmpty:
			if cur := m.Get(p.Pos); cur.Kind == CellThin {
				p.moveYInThinWall(math.Floor(p.Pos.Y), newY, cur.Object.Dir(), cur.Object.Slide(), cur.Object.Depth())
			} else {
				p.Pos.Y = newY
			}
		case CellWall:
			if p.Pos.Z >= math.Floor(p.Pos.Z)+cell.Height {
				p.Pos.Y = newY
			}
		case CellThin:
			p.moveYInThinWall(math.Floor(newY), newY, cell.Object.Dir(), cell.Object.Slide(), cell.Object.Depth())
		}
		return
	}

	// Portal traversal: teleport and apply the residual velocity in the
	// same frame. This is intentional (see the open question recorded in
	// DESIGN.md) — at extreme speeds the player can tunnel through the
	// destination cell in a single tick.
	old := p.Pos
	p.updateDir(dest.LinkDir(*source), 1)
	p.Pos.X = dest.LinkX(*source, old) + p.Dir.X*speed
	p.Pos.Y = dest.LinkY(*source, old) + p.Dir.Y*speed
	p.Pos.Z = dest.Pos.Z
}

func (p *Player) updateDir(newRotation, dt float64) {
	newRotation *= dt
	p.Dir = p.Dir.Rotate(newRotation)
	p.Plane = p.Plane.Rotate(newRotation)
}

// Update steps the player one frame: interaction raycast, gravity,
// horizontal movement plus walk animation, then look rotation.
func (p *Player) Update(m *Map, dt float64) {
	if p.action == actionInteract {
		hit := NewRay(p, Vec2{}).Cast(m)
		if hit.Value != nil && hit.Dist <= 1.5 {
			m.Trigger(hit.Pos)
		}
		p.action = actionNone
	}

	if p.velocity.Y != 0 || p.Pos.Z > 0 {
		p.updateGravity(m, dt)
	}

	if p.velocity.X != 0 {
		p.updatePos(m, dt)
		p.walkDelta += dt
		if p.walkDelta > 0.16 {
			p.Frame = p.Frame%4 + 1
			p.walkDelta = 0
		}
	} else {
		p.Frame = 0
	}

	if p.rotation.X != 0 {
		p.updateDir(p.rotation.X, dt)
	}
}
