// Package engine implements the grid raycasting core: the ray caster,
// portal engine, player physics, interaction objects and frame pipeline.
// It has no dependency on any windowing or asset-loading library; callers
// supply a TextureOracle, a PixelSink and (optionally) a Loader.
package engine

import "math"

// Vec2 is a plain 2D float vector (camera direction, view plane, velocity).
type Vec2 struct {
	X, Y float64
}

// Rotate returns v rotated by angle radians (counter-clockwise in the
// caster's coordinate convention, matching the original camera rotation).
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Clamp clamps both components of v independently to [minX,maxX] and [minY,maxY].
func (v Vec2) Clamp(minX, maxX, minY, maxY float64) Vec2 {
	return Vec2{X: clampF(v.X, minX, maxX), Y: clampF(v.Y, minY, maxY)}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vec2i is an integer 2D vector, used for screen-space bounds.
type Vec2i struct {
	X, Y int
}

// Clamp clamps both components of v independently to [minX,maxX] and [minY,maxY].
func (v Vec2i) Clamp(minX, maxX, minY, maxY int) Vec2i {
	return Vec2i{X: clampI(v.X, minX, maxX), Y: clampI(v.Y, minY, maxY)}
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vec3 is a plain 3D float vector (world position, ray direction).
type Vec3 struct {
	X, Y, Z float64
}

// Equal reports exact component equality, matching the original's Vec3
// PartialEq derive (no epsilon — callers that need tolerance do it themselves).
func (v Vec3) Equal(o Vec3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}
