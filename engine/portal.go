package engine

import "math"

// Portal is one face of a portal pair: a grid position, the face it sits
// on, and the hue tint applied to its border/centre when rendered without
// (or instead of) recursing through it.
type Portal struct {
	Pos Vec3
	Dir Direction
	Hue HSLColor
}

// NewPortal constructs a portal with the given hue seeded into the H
// channel only; S and L start at zero until added to a sampled border
// color's HSL representation during shading.
func NewPortal(pos Vec3, dir Direction, hue float64) Portal {
	return Portal{Pos: pos, Dir: dir, Hue: HSLColor{H: hue}}
}

// LinkDir computes the rotation applied to a ray or player's direction
// vector when crossing from rhs's face into p's face. Direction's
// North/West/South/East values (1..4) are load-bearing here.
func (p Portal) LinkDir(rhs Portal) float64 {
	return -(math.Pi / 2) * float64(2-(int(p.Dir)-int(rhs.Dir)))
}

// LinkX computes the destination-space X coordinate for a source-space
// point cameraPos, given p is the destination face and rhs the source
// face. This table MUST be reproduced bit-for-bit: it encodes the
// portal's orientation and any error warps the world.
func (p Portal) LinkX(rhs Portal, cameraPos Vec3) float64 {
	var inner float64
	switch p.Dir {
	case DirNorth:
		switch rhs.Dir {
		case DirNorth:
			inner = rhs.Pos.X + 1 - cameraPos.X
		case DirWest:
			inner = rhs.Pos.Y + 1 - cameraPos.Y
		case DirSouth:
			inner = cameraPos.X - rhs.Pos.X
		case DirEast:
			inner = cameraPos.Y - rhs.Pos.Y
		}
		return p.Pos.X + inner
	case DirWest:
		switch rhs.Dir {
		case DirNorth:
			inner = cameraPos.Y - rhs.Pos.Y
		case DirWest:
			inner = rhs.Pos.X + 1 - cameraPos.X
		case DirSouth:
			inner = rhs.Pos.Y + 1 - cameraPos.Y
		case DirEast:
			inner = cameraPos.X - rhs.Pos.X
		}
		return p.Pos.X + 1 + inner
	case DirSouth:
		switch rhs.Dir {
		case DirNorth:
			inner = cameraPos.X - rhs.Pos.X
		case DirWest:
			inner = cameraPos.Y - rhs.Pos.Y
		case DirSouth:
			inner = rhs.Pos.X + 1 - cameraPos.X
		case DirEast:
			inner = rhs.Pos.Y + 1 - cameraPos.Y
		}
		return p.Pos.X + inner
	case DirEast:
		switch rhs.Dir {
		case DirNorth:
			inner = rhs.Pos.Y + 1 - cameraPos.Y
		case DirWest:
			inner = cameraPos.X - rhs.Pos.X
		case DirSouth:
			inner = cameraPos.Y - rhs.Pos.Y
		case DirEast:
			inner = rhs.Pos.X + 1 - cameraPos.X
		}
		return p.Pos.X - 1 + inner
	default:
		return p.Pos.X
	}
}

// LinkY is the Y-axis counterpart of LinkX, reproduced bit-for-bit from
// the same source table.
func (p Portal) LinkY(rhs Portal, cameraPos Vec3) float64 {
	var inner float64
	switch p.Dir {
	case DirNorth:
		switch rhs.Dir {
		case DirNorth:
			inner = rhs.Pos.Y + 1 - cameraPos.Y
		case DirWest:
			inner = cameraPos.X - rhs.Pos.X
		case DirSouth:
			inner = cameraPos.Y - rhs.Pos.Y
		case DirEast:
			inner = rhs.Pos.X + 1 - cameraPos.X
		}
		return p.Pos.Y - 1 + inner
	case DirWest:
		switch rhs.Dir {
		case DirNorth:
			inner = rhs.Pos.X + 1 - cameraPos.X
		case DirWest:
			inner = rhs.Pos.Y + 1 - cameraPos.Y
		case DirSouth:
			inner = cameraPos.X - rhs.Pos.X
		case DirEast:
			inner = cameraPos.Y - rhs.Pos.Y
		}
		return p.Pos.Y + inner
	case DirSouth:
		switch rhs.Dir {
		case DirNorth:
			inner = cameraPos.Y - rhs.Pos.Y
		case DirWest:
			inner = rhs.Pos.X + 1 - cameraPos.X
		case DirSouth:
			inner = rhs.Pos.Y + 1 - cameraPos.Y
		case DirEast:
			inner = cameraPos.X - rhs.Pos.X
		}
		return p.Pos.Y + 1 + inner
	case DirEast:
		switch rhs.Dir {
		case DirNorth:
			inner = cameraPos.X - rhs.Pos.X
		case DirWest:
			inner = cameraPos.Y - rhs.Pos.Y
		case DirSouth:
			inner = rhs.Pos.X + 1 - cameraPos.X
		case DirEast:
			inner = rhs.Pos.Y + 1 - cameraPos.Y
		}
		return p.Pos.Y + inner
	default:
		return p.Pos.Y
	}
}

// PortalPair is an unordered pair of portal faces. A half-portal with only
// one side populated is a one-way "unmatched" portal: rendered (its tint
// still samples from whichever side is present) but never traversable.
type PortalPair struct {
	First  *Portal
	Second *Portal
}

// Paired reports whether both sides of the pair are present.
func (pp PortalPair) Paired() bool {
	return pp.First != nil && pp.Second != nil
}

// MatchSide returns (matching, other) such that matching.Pos == pos and
// (dir == DirNone or matching.Dir == dir). When dir == DirNone, a pair
// with a missing side is skipped entirely (only fully paired portals
// match a direction-less positional query). When a specific dir is given,
// a half-portal may match and other is returned nil.
func (pp PortalPair) MatchSide(pos Vec3, dir Direction) (matching, other *Portal, ok bool) {
	if dir == DirNone && !pp.Paired() {
		return nil, nil, false
	}
	if pp.First != nil && pp.First.Pos.Equal(pos) && (dir == DirNone || pp.First.Dir == dir) {
		return pp.First, pp.Second, true
	}
	if pp.Second != nil && pp.Second.Pos.Equal(pos) && (dir == DirNone || pp.Second.Dir == dir) {
		return pp.Second, pp.First, true
	}
	return nil, nil, false
}
