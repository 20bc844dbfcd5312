package engine

import "math"

// RGBColor is an 8-bit-per-channel color as sampled from a TextureOracle tile.
type RGBColor struct {
	R, G, B, A uint8
}

// White is the portal atlas's "pass-through mask" sentinel color.
var White = RGBColor{R: 255, G: 255, B: 255, A: 255}

// NewRGB builds an opaque color from 8-bit channels.
func NewRGB(r, g, b uint8) RGBColor {
	return RGBColor{R: r, G: g, B: b, A: 255}
}

// Blend halves each channel's contribution from both operands in place,
// but takes alpha verbatim from the newly-sampled color, matching the
// cross-alpha accumulation used when a hit texel is itself translucent.
func (c *RGBColor) Blend(o RGBColor) {
	c.R = c.R/2 + o.R/2
	c.G = c.G/2 + o.G/2
	c.B = c.B/2 + o.B/2
	c.A = o.A
}

// HSLColor is an additive hue/saturation/lightness tint. Unlike RGBColor it
// is never clamped on Add — the portal hue shift can push S/L outside
// [0,1] and FromHSL is expected to clamp at the point of RGB reconstruction.
type HSLColor struct {
	H, S, L float64
}

// Add combines two HSL tints, wrapping hue into [0,361) and summing
// saturation/lightness unclamped, exactly as the portal tint accumulates
// a sampled border color's HSL with the portal's own seeded hue.
func (c HSLColor) Add(o HSLColor) HSLColor {
	h := math.Mod(c.H+o.H, 361)
	if h < 0 {
		h += 361
	}
	return HSLColor{H: h, S: c.S + o.S, L: c.L + o.L}
}

// FromRGB converts an RGB color to HSL.
func FromRGB(c RGBColor) HSLColor {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSLColor{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSLColor{H: h, S: s, L: l}
}

// FromHSL reconstructs an opaque RGB color from an HSL tint, clamping H into
// [0,360) and S/L into [0,1] before conversion.
func FromHSL(c HSLColor) RGBColor {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := clampF(c.S, 0, 1)
	l := clampF(c.L, 0, 1)

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return RGBColor{R: v, G: v, B: v, A: 255}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hk := h / 360
	r := hueToRGB(p, q, hk+1.0/3)
	g := hueToRGB(p, q, hk)
	b := hueToRGB(p, q, hk-1.0/3)

	return RGBColor{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
