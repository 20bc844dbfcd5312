package engine

import "math"

// PortalRecursionLimit bounds how many times a single pixel's ray may pass
// through a portal before the centre is rendered as a flat tinted texel
// instead of recursing further.
const PortalRecursionLimit = 3

// maxCastDist is the horizontal radius at which an Empty cell is treated
// as a miss (sky/floor) rather than continuing to step.
const maxCastDist = 30.0

// Ray is the per-pixel 3D-DDA traversal state.
type Ray struct {
	pos             Vec3
	rayDir          Vec3
	delta           Vec3
	step            Vec3
	sideDist        Vec3
	Origin          Vec3
	PortalRecursion int
	dir             Direction
}

// NewRay sets up a 3D-DDA ray from the player's camera for the given
// normalized screen-space camera_dir in [-1,1]^2. The Z axis step is
// inverted (+1 when ray_dir.z < 0) because cells are centred on integer Z
// with half-extent 0.5 in this engine's convention; origin.z is then
// shifted by +0.5 so all subsequent math proceeds in cell-centre
// coordinates.
func NewRay(player *Player, cameraDir Vec2) *Ray {
	origin := player.Pos
	pos := Vec3{X: math.Floor(origin.X), Y: math.Floor(origin.Y), Z: math.Round(origin.Z)}
	dir := Vec3{
		X: player.Dir.X + player.Plane.X*cameraDir.X,
		Y: player.Dir.Y + player.Plane.Y*cameraDir.X,
		Z: 0.5 * cameraDir.Y,
	}
	delta := Vec3{X: math.Abs(1 / dir.X), Y: math.Abs(1 / dir.Y), Z: math.Abs(1 / dir.Z)}

	var step, sideDist Vec3
	step.X = sign1(dir.X < 0)
	step.Y = sign1(dir.Y < 0)
	if dir.Z < 0 {
		step.Z = 1
	} else {
		step.Z = -1
	}

	if dir.X < 0 {
		sideDist.X = (origin.X - pos.X) * delta.X
	} else {
		sideDist.X = (pos.X + 1 - origin.X) * delta.X
	}
	if dir.Y < 0 {
		sideDist.Y = (origin.Y - pos.Y) * delta.Y
	} else {
		sideDist.Y = (pos.Y + 1 - origin.Y) * delta.Y
	}
	if dir.Z < 0 {
		sideDist.Z = (pos.Z - origin.Z + 0.5) * delta.Z
	} else {
		sideDist.Z = (origin.Z - pos.Z + 0.5) * delta.Z
	}

	origin.Z += 0.5

	return &Ray{
		pos:      pos,
		rayDir:   dir,
		delta:    delta,
		step:     step,
		sideDist: sideDist,
		Origin:   origin,
	}
}

func sign1(negative bool) float64 {
	if negative {
		return -1
	}
	return 1
}

// relocate re-seeds the ray's DDA state at newOrigin with rayDir rotated
// by newDir radians, used when crossing a portal. Note step.Z is not
// recomputed here, matching the original: a portal never changes the
// ray's vertical component.
func (r *Ray) relocate(newOrigin Vec3, newDir float64) {
	oldDirX := r.rayDir.X
	sin, cos := math.Sin(newDir), math.Cos(newDir)
	r.rayDir.X = r.rayDir.X*cos - r.rayDir.Y*sin
	r.rayDir.Y = oldDirX*sin + r.rayDir.Y*cos

	r.Origin = newOrigin
	r.pos = Vec3{X: math.Floor(r.Origin.X), Y: math.Floor(r.Origin.Y), Z: math.Round(r.Origin.Z)}
	r.delta = Vec3{X: math.Abs(1 / r.rayDir.X), Y: math.Abs(1 / r.rayDir.Y), Z: math.Abs(1 / r.rayDir.Z)}

	if r.rayDir.X < 0 {
		r.sideDist.X = (r.Origin.X - r.pos.X) * r.delta.X
	} else {
		r.sideDist.X = (r.pos.X + 1 - r.Origin.X) * r.delta.X
	}
	if r.rayDir.Y < 0 {
		r.sideDist.Y = (r.Origin.Y - r.pos.Y) * r.delta.Y
	} else {
		r.sideDist.Y = (r.pos.Y + 1 - r.Origin.Y) * r.delta.Y
	}
	if r.rayDir.Z < 0 {
		r.sideDist.Z = (r.pos.Z - r.Origin.Z + 0.5) * r.delta.Z
	} else {
		r.sideDist.Z = (r.Origin.Z - r.pos.Z + 0.5) * r.delta.Z
	}

	r.step.X = sign1(r.rayDir.X < 0)
	r.step.Y = sign1(r.rayDir.Y < 0)
	r.Origin.Z += 0.5
}

// PassThroughPortal relocates the ray into dest's space when it has hit a
// fully paired portal whose far side is dest (source is the face the ray
// hit). Returns false (refusing the crossing) once PortalRecursionLimit
// is reached; the caller then renders the portal centre as a flat tint
// instead of recursing.
func (r *Ray) PassThroughPortal(dest, source Portal) bool {
	if r.PortalRecursion >= PortalRecursionLimit {
		return false
	}
	r.PortalRecursion++

	newOrigin := Vec3{
		X: dest.LinkX(source, r.Origin),
		Y: dest.LinkY(source, r.Origin),
		Z: (dest.Pos.Z - source.Pos.Z) + r.Origin.Z - 0.5,
	}

	r.relocate(newOrigin, dest.LinkDir(source))
	for r.pos.X != dest.Pos.X || r.pos.Y != dest.Pos.Y {
		r.Grow()
	}
	if r.pos.Z != dest.Pos.Z {
		r.Grow()
	}
	r.Grow()
	return true
}

// Hit is the result of a single Cast: the value sampled (nil on miss), the
// cell position, distance along the ray, face crossed and normalized
// texture coordinate.
type Hit struct {
	Value      *uint
	Pos        Vec3
	Dist       float64
	Dir        Direction
	TexturePos Vec2
}

// CellGetter is the subset of Map that Cast needs; satisfied by *Map.
type CellGetter interface {
	Get(position Vec3) Cell
	Depth() int
}

// Cast steps the DDA loop until it produces a Hit: a miss (Empty past
// range), a full Wall face, a short-Wall ceiling/ground carry-over, or a
// thin-wall intersection.
func (r *Ray) Cast(m CellGetter) Hit {
	passedDoor := false
	var passedDoorPos Vec3
	passedHeight := 1.0
	passedThrough := false
	var passedPos Vec3

	for {
		if passedThrough {
			dist := r.computeDist()
			texturePos := r.computeTexturePos(r.dir, dist)

			if (r.dir == DirUp || (r.dir.IsSide() && texturePos.Y <= passedHeight)) && isBlockAdjacent(passedPos, r.pos) {
				dir := DirDown
				if r.rayDir.Z > 0 {
					dir = DirUp
				}
				dist := (passedPos.Z - (1 - passedHeight) - r.Origin.Z + (1-r.step.Z)/2) / r.rayDir.Z
				texturePos := r.computeTexturePos(dir, dist)
				v := m.Get(passedPos).Value
				return Hit{Value: uintPtr(v), Pos: r.pos, Dist: dist, Dir: dir, TexturePos: texturePos}
			}
		}
		passedThrough = false

		if passedDoor && (!isBlockAdjacent(passedDoorPos, r.pos) || r.pos.Z != passedDoorPos.Z) {
			passedDoor = false
		}

		cell := m.Get(r.pos)
		switch cell.Kind {
		case CellEmpty:
			if r.pos.Z < 0 || r.pos.Z >= float64(m.Depth()) || math.Hypot(r.pos.X-r.Origin.X, r.pos.Y-r.Origin.Y) > maxCastDist {
				dist := r.computeDist()
				return Hit{Value: nil, Pos: r.pos, Dist: dist, Dir: r.dir}
			}
		case CellWall:
			dist := r.computeDist()
			texturePos := r.computeTexturePos(r.dir, dist)

			passedPos = r.pos
			passedHeight = cell.Height
			if passedHeight != 1 {
				y := texturePos.Y
				if y == 0 {
					y = 1
				}
				if (y > passedHeight && r.dir.IsSide()) || r.dir == DirUp {
					passedThrough = true
				} else {
					v := cell.Value
					return Hit{Value: &v, Pos: r.pos, Dist: dist, Dir: r.dir, TexturePos: texturePos}
				}
			} else {
				v := cell.Value
				if passedDoor {
					v = DoorValue + 2
				}
				return Hit{Value: &v, Pos: r.pos, Dist: dist, Dir: r.dir, TexturePos: texturePos}
			}
		case CellThin:
			if dist, texturePos, ok := r.growThin(cell.Object); ok {
				v := cell.Object.Value()
				return Hit{Value: &v, Pos: r.pos, Dist: dist, Dir: cell.Object.Dir(), TexturePos: texturePos}
			}
			if cell.Object.Value() >= DoorValue {
				passedDoor = true
				passedDoorPos = r.pos
			}
		}
		r.Grow()
	}
}

func uintPtr(v uint) *uint {
	return &v
}

func (r *Ray) growX() {
	r.pos.X += r.step.X
	r.sideDist.X += r.delta.X
	if r.Origin.X < r.pos.X {
		r.dir = DirEast
	} else {
		r.dir = DirWest
	}
}

func (r *Ray) growY() {
	r.pos.Y += r.step.Y
	r.sideDist.Y += r.delta.Y
	if r.Origin.Y < r.pos.Y {
		r.dir = DirNorth
	} else {
		r.dir = DirSouth
	}
}

func (r *Ray) growZ() {
	r.pos.Z += r.step.Z
	r.sideDist.Z += r.delta.Z
	if r.rayDir.Z > 0 {
		r.dir = DirUp
	} else {
		r.dir = DirDown
	}
}

// Grow steps the DDA to the next grid boundary along whichever axis has
// the smallest accumulated side distance.
func (r *Ray) Grow() {
	if r.sideDist.X < r.sideDist.Y {
		if r.sideDist.X < r.sideDist.Z {
			r.growX()
		} else {
			r.growZ()
		}
	} else {
		if r.sideDist.Y < r.sideDist.Z {
			r.growY()
		} else {
			r.growZ()
		}
	}
}

// growThin computes the intersection of the ray with a thin wall's offset
// plane, if any. under_light walls (N/S facing) are tested against the
// X-aligned slit; others (W/E facing) against the Y-aligned slit.
func (r *Ray) growThin(cell Thin) (dist float64, texturePos Vec2, ok bool) {
	dir := cell.Dir()
	slide := cell.Slide()
	depth := cell.Depth()
	pos2 := r.pos

	if r.Origin.X < r.pos.X {
		pos2.X -= 1
	}
	if r.Origin.Y > r.pos.Y {
		pos2.Y += 1
	}

	underLight := dir.IsUnderLight()
	var limitX, limitY float64
	if dir == DirEast {
		limitX = depth
	} else {
		limitX = 1 - depth
	}
	if dir == DirNorth {
		limitY = depth
	} else {
		limitY = 1 - depth
	}

	var rayMult float64
	if underLight {
		facingNorth := dir == DirNorth && r.rayDir.Y < 0
		facingSouth := dir == DirSouth && r.rayDir.Y > 0

		if facingNorth || facingSouth {
			depth = 1 - depth
		}
		var offset float64
		if r.Origin.Y >= r.pos.Y && r.Origin.Y <= r.pos.Y+depth {
			relativeY := r.Origin.Y - math.Floor(r.Origin.Y)
			if (facingNorth && relativeY > depth) || (facingSouth && relativeY > depth) {
				return 0, Vec2{}, false
			}
			if depth > 0.5 && r.step.Y < 0 {
				offset = 0
			} else {
				offset = -1
			}
		} else {
			offset = 0
		}
		rayMult = (pos2.Y - r.Origin.Y + offset) / r.rayDir.Y
	} else {
		facingWest := dir == DirEast && r.rayDir.X < 0
		facingEast := dir == DirWest && r.rayDir.X > 0

		if facingWest || facingEast {
			depth = 1 - depth
		}
		var offset float64
		if r.Origin.X >= r.pos.X && r.Origin.X <= r.pos.X+depth {
			relativeX := r.Origin.X - math.Floor(r.Origin.X)
			if (facingWest && relativeX > depth) || (facingEast && relativeX > depth) {
				return 0, Vec2{}, false
			}
			if depth > 0.5 && r.step.X < 0 {
				offset = 1
			} else {
				offset = 0
			}
		} else {
			offset = 1
		}
		rayMult = (pos2.X - r.Origin.X + offset) / r.rayDir.X
	}

	ray2 := Vec2{X: r.Origin.X + r.rayDir.X*rayMult, Y: r.Origin.Y + r.rayDir.Y*rayMult}
	deltaV := Vec2{
		X: math.Sqrt(1 + (r.rayDir.Y*r.rayDir.Y)/(r.rayDir.X*r.rayDir.X)),
		Y: math.Sqrt(1 + (r.rayDir.X*r.rayDir.X)/(r.rayDir.Y*r.rayDir.Y)),
	}
	trueStep := Vec2{
		X: math.Sqrt(deltaV.Y*deltaV.Y - 1),
		Y: math.Sqrt(deltaV.X*deltaV.X - 1),
	}
	halfStepIn := Vec2{
		X: ray2.X + (r.step.X*trueStep.X)*depth,
		Y: ray2.Y + (r.step.Y*trueStep.Y)*depth,
	}

	if !underLight {
		if math.Floor(halfStepIn.Y) == r.pos.Y && math.Abs(r.pos.Y-halfStepIn.Y) <= slide {
			var d float64
			if r.Origin.X < r.pos.X+limitX {
				if r.step.X < 0 {
					return 0, Vec2{}, false
				}
				d = (halfStepIn.X - r.Origin.X + (1-trueStep.X)*depth) / r.rayDir.X
			} else {
				if r.step.X > 0 {
					return 0, Vec2{}, false
				}
				d = (halfStepIn.X - r.Origin.X + (trueStep.X-1)*depth) / r.rayDir.X
			}
			tp := Vec2{X: r.Origin.Y + d*r.rayDir.Y - slide, Y: r.Origin.Z + d*-r.rayDir.Z}
			if tp.Y < r.pos.Z || tp.Y > r.pos.Z+1 {
				return 0, Vec2{}, false
			}
			tp.X -= math.Floor(tp.X)
			tp.Y -= math.Floor(tp.Y)
			return d, tp, true
		}
	} else {
		if math.Floor(halfStepIn.X) == r.pos.X && math.Abs(r.pos.X-halfStepIn.X) <= slide {
			var d float64
			if r.Origin.Y < r.pos.Y+limitY {
				if r.step.Y < 0 {
					return 0, Vec2{}, false
				}
				d = (halfStepIn.Y - r.Origin.Y + (1-trueStep.Y)*depth) / r.rayDir.Y
			} else {
				if r.step.Y > 0 {
					return 0, Vec2{}, false
				}
				d = (halfStepIn.Y - r.Origin.Y + (trueStep.Y-1)*depth) / r.rayDir.Y
			}
			tp := Vec2{X: r.Origin.X + d*r.rayDir.X - slide, Y: r.Origin.Z + d*-r.rayDir.Z}
			if tp.Y < r.pos.Z || tp.Y > r.pos.Z+1 {
				return 0, Vec2{}, false
			}
			tp.X -= math.Floor(tp.X)
			tp.Y -= math.Floor(tp.Y)
			return d, tp, true
		}
	}
	return 0, Vec2{}, false
}

func (r *Ray) computeDist() float64 {
	switch r.dir {
	case DirNone:
		return 0
	case DirNorth, DirSouth:
		return (r.pos.Y - r.Origin.Y + (1-r.step.Y)/2) / r.rayDir.Y
	case DirEast, DirWest:
		return (r.pos.X - r.Origin.X + (1-r.step.X)/2) / r.rayDir.X
	default: // Up, Down
		return (r.pos.Z - r.Origin.Z + (1-r.step.Z)/2) / r.rayDir.Z
	}
}

func (r *Ray) computeTexturePos(dir Direction, dist float64) Vec2 {
	var tp Vec2
	switch dir {
	case DirNone:
		tp = Vec2{}
	case DirNorth, DirSouth:
		tp = Vec2{X: r.Origin.X + dist*r.rayDir.X, Y: r.Origin.Z + dist*-r.rayDir.Z}
	case DirWest, DirEast:
		tp = Vec2{X: r.Origin.Y + dist*r.rayDir.Y, Y: r.Origin.Z + dist*-r.rayDir.Z}
	default: // Up, Down
		tp = Vec2{
			X: ((r.pos.X-r.Origin.X+(1-r.step.X)/2)/r.rayDir.X + dist) * r.rayDir.X,
			Y: ((r.pos.Y-r.Origin.Y+(1-r.step.Y)/2)/r.rayDir.Y + dist) * r.rayDir.Y,
		}
	}
	tp.X -= math.Floor(tp.X)
	tp.Y -= math.Floor(tp.Y)
	return tp
}

func isBlockAdjacent(b1, b2 Vec3) bool {
	return (b1.X == b2.X && b1.Y == b2.Y && (b1.Z-1 == b2.Z || b1.Z+1 == b2.Z)) ||
		(b1.X == b2.X && (b1.Y-1 == b2.Y || b1.Y+1 == b2.Y) && b1.Z == b2.Z) ||
		((b1.X-1 == b2.X || b1.X+1 == b2.X) && b1.Y == b2.Y && b1.Z == b2.Z)
}
