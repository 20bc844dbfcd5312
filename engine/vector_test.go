package engine

import (
	"math"
	"testing"
)

func TestVec2Rotate(t *testing.T) {
	cases := []struct {
		name  string
		v     Vec2
		angle float64
		want  Vec2
	}{
		{"zero angle", Vec2{X: 1, Y: 0}, 0, Vec2{X: 1, Y: 0}},
		{"quarter turn", Vec2{X: 1, Y: 0}, math.Pi / 2, Vec2{X: 0, Y: 1}},
		{"half turn", Vec2{X: 1, Y: 0}, math.Pi, Vec2{X: -1, Y: 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.v.Rotate(c.angle)
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
				t.Errorf("Rotate(%v) = %v, want %v", c.angle, got, c.want)
			}
		})
	}
}

func TestVec2Clamp(t *testing.T) {
	v := Vec2{X: -5, Y: 15}
	got := v.Clamp(0, 10, 0, 10)
	want := Vec2{X: 0, Y: 10}
	if got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

func TestVec2iClamp(t *testing.T) {
	v := Vec2i{X: -5, Y: 400}
	got := v.Clamp(0, 320, 0, 320)
	want := Vec2i{X: 0, Y: 320}
	if got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

func TestVec3Equal(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 1, Y: 2, Z: 3}
	c := Vec3{X: 1, Y: 2, Z: 3.0000001}
	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %v to not equal %v (exact equality, no epsilon)", a, c)
	}
}
