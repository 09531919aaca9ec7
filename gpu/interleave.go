package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogeom/attrib"
)

// Interleave packs the attributes' values element-by-element into one
// little-endian buffer laid out per [Layout]: for each element index,
// the attributes' values follow each other in argument order. The
// attributes must share one domain and one length.
func Interleave(attrs ...attrib.ReadAttribute) ([]byte, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	stride := 0
	for _, a := range attrs {
		stride += a.DataType().Size()
	}

	length := attrs[0].Len()
	buf := make([]byte, length*stride)

	attrib.Logger().Debug("interleaving attributes",
		"count", len(attrs), "elements", length, "stride", stride)

	for i := 0; i < length; i++ {
		offset := i * stride
		for _, a := range attrs {
			offset += putValue(buf[offset:], a.Get(i))
		}
	}
	return buf, nil
}

// putValue writes one erased value at the start of b and returns the
// number of bytes written.
func putValue(b []byte, v any) int {
	switch v := v.(type) {
	case float32:
		putFloat(b, 0, v)
		return 4
	case attrib.Float2:
		f := v.F32()
		putFloat(b, 0, f[0])
		putFloat(b, 4, f[1])
		return 8
	case attrib.Float3:
		f := v.F32()
		putFloat(b, 0, f[0])
		putFloat(b, 4, f[1])
		putFloat(b, 8, f[2])
		return 12
	case int32:
		binary.LittleEndian.PutUint32(b, uint32(v))
		return 4
	case attrib.ColorRGBA:
		f := v.F32()
		putFloat(b, 0, f[0])
		putFloat(b, 4, f[1])
		putFloat(b, 8, f[2])
		putFloat(b, 12, f[3])
		return 16
	}
	panic("gpu: unsupported erased value type")
}

func putFloat(b []byte, off int, x float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(x))
}
