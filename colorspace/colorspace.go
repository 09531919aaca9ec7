// Package colorspace converts attribute colors between scene-linear
// and sRGB.
//
// The conversion is stateless: a closed [Space] enumeration selects
// the transfer function, and [Convert] applies it to the RGB channels
// of an [attrib.ColorRGBA]. Alpha is never transformed.
package colorspace

import (
	"github.com/chewxy/math32"

	"github.com/gogeom/attrib"
)

// Space identifies a color space. The set is closed.
type Space int8

const (
	// Linear is the scene-linear working space.
	Linear Space = iota
	// SRGB is display sRGB with the standard piecewise transfer
	// function.
	SRGB
)

// String returns the space name for diagnostics.
func (s Space) String() string {
	switch s {
	case Linear:
		return "linear"
	case SRGB:
		return "sRGB"
	}
	return "unknown"
}

// Convert transforms a color from one space to another. Converting a
// space to itself returns the color unchanged. Alpha passes through
// untouched.
func Convert(c attrib.ColorRGBA, from, to Space) attrib.ColorRGBA {
	if from == to {
		return c
	}
	switch {
	case from == SRGB && to == Linear:
		return apply(c, srgbToLinear)
	case from == Linear && to == SRGB:
		return apply(c, linearToSRGB)
	}
	return c
}

// ConvertSlice transforms every color in place and returns the slice.
func ConvertSlice(colors []attrib.ColorRGBA, from, to Space) []attrib.ColorRGBA {
	if from == to {
		return colors
	}
	for i := range colors {
		colors[i] = Convert(colors[i], from, to)
	}
	return colors
}

func apply(c attrib.ColorRGBA, f func(float32) float32) attrib.ColorRGBA {
	return attrib.ColorRGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: c.A}
}

// srgbToLinear is the sRGB EOTF. Negative input clamps to 0.
func srgbToLinear(x float32) float32 {
	if x < 0.04045 {
		if x < 0 {
			return 0
		}
		return x / 12.92
	}
	return math32.Pow((x+0.055)/1.055, 2.4)
}

// linearToSRGB is the sRGB OETF. Negative input clamps to 0.
func linearToSRGB(x float32) float32 {
	if x < 0.0031308 {
		if x < 0 {
			return 0
		}
		return x * 12.92
	}
	return 1.055*math32.Pow(x, 1.0/2.4) - 0.055
}
