// Package gpu exports geometry attributes as GPU vertex buffers.
//
// The package maps the closed attrib type set onto WebGPU vertex
// formats and packs a set of same-domain attributes into one
// interleaved, tightly packed little-endian buffer with a matching
// [gputypes.VertexBufferLayout]:
//
//	pos := comp.Read("Position")
//	col := comp.Read("Color")
//
//	layout, err := gpu.Layout(pos, col)
//	if err != nil {
//		// ...
//	}
//	data, err := gpu.Interleave(pos, col)
//
// Shader locations are assigned sequentially in argument order. The
// caller hands data and layout to whatever GPU API it drives; this
// package does not touch a device.
package gpu

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogeom/attrib"
)

// Errors returned by layout and packing operations.
var (
	// ErrNoAttributes is returned when no attributes are supplied.
	ErrNoAttributes = errors.New("gpu: no attributes")

	// ErrDomainMismatch is returned when the attributes do not share
	// one domain.
	ErrDomainMismatch = errors.New("gpu: attributes span multiple domains")

	// ErrLengthMismatch is returned when the attributes do not share
	// one element count.
	ErrLengthMismatch = errors.New("gpu: attribute lengths differ")

	// ErrUnsupportedType is returned when an attribute's data type has
	// no vertex format.
	ErrUnsupportedType = errors.New("gpu: data type has no vertex format")
)

// Format returns the WebGPU vertex format for an attribute data type.
// Integer attributes map to Uint32 and are reinterpreted bitwise on
// upload. The second result is false for an invalid data type.
func Format(t attrib.DataType) (gputypes.VertexFormat, bool) {
	switch t {
	case attrib.TypeFloat:
		return gputypes.VertexFormatFloat32, true
	case attrib.TypeFloat2:
		return gputypes.VertexFormatFloat32x2, true
	case attrib.TypeFloat3:
		return gputypes.VertexFormatFloat32x3, true
	case attrib.TypeInt:
		return gputypes.VertexFormatUint32, true
	case attrib.TypeColor:
		return gputypes.VertexFormatFloat32x4, true
	}
	var none gputypes.VertexFormat
	return none, false
}

// Layout builds the vertex buffer layout matching [Interleave] for
// the same attributes: tightly packed offsets in argument order, one
// shader location per attribute, per-vertex stepping.
func Layout(attrs ...attrib.ReadAttribute) (gputypes.VertexBufferLayout, error) {
	if err := validate(attrs); err != nil {
		return gputypes.VertexBufferLayout{}, err
	}

	fields := make([]gputypes.VertexAttribute, len(attrs))
	offset := 0
	for i, a := range attrs {
		format, ok := Format(a.DataType())
		if !ok {
			return gputypes.VertexBufferLayout{}, ErrUnsupportedType
		}
		fields[i] = gputypes.VertexAttribute{
			Format:         format,
			Offset:         uint64(offset),
			ShaderLocation: uint32(i),
		}
		offset += a.DataType().Size()
	}

	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(offset),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  fields,
	}, nil
}

// validate checks that the attributes agree on domain and length and
// all carry a packable type.
func validate(attrs []attrib.ReadAttribute) error {
	if len(attrs) == 0 {
		return ErrNoAttributes
	}
	domain := attrs[0].Domain()
	length := attrs[0].Len()
	for _, a := range attrs {
		if a.Domain() != domain {
			return ErrDomainMismatch
		}
		if a.Len() != length {
			return ErrLengthMismatch
		}
		if !a.DataType().Valid() {
			return ErrUnsupportedType
		}
	}
	return nil
}
