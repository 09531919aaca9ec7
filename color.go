package attrib

import (
	"image/color"

	"golang.org/x/image/math/f32"
)

// ColorRGBA is an RGBA color with float32 components, one of the five
// supported attribute value types. Components are nominally in
// [0, 1]; values outside that range are preserved (attribute layers
// may hold scene-referred colors).
type ColorRGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) ColorRGBA {
	return ColorRGBA{R: r, G: g, B: b, A: 1}
}

// Color converts ColorRGBA to the standard color.Color interface.
// Components are clamped to [0, 1] for the conversion.
func (c ColorRGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to ColorRGBA.
func FromColor(c color.Color) ColorRGBA {
	r, g, b, a := c.RGBA()
	return ColorRGBA{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

// Premultiply returns a premultiplied color.
func (c ColorRGBA) Premultiply() ColorRGBA {
	return ColorRGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c ColorRGBA) Lerp(other ColorRGBA, t float32) ColorRGBA {
	return ColorRGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// F32 returns the color in the flat form GPU buffers use.
func (c ColorRGBA) F32() f32.Vec4 {
	return f32.Vec4{c.R, c.G, c.B, c.A}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
