package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"

	"github.com/gogeom/attrib"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		dtype attrib.DataType
		want  gputypes.VertexFormat
	}{
		{attrib.TypeFloat, gputypes.VertexFormatFloat32},
		{attrib.TypeFloat2, gputypes.VertexFormatFloat32x2},
		{attrib.TypeFloat3, gputypes.VertexFormatFloat32x3},
		{attrib.TypeInt, gputypes.VertexFormatUint32},
		{attrib.TypeColor, gputypes.VertexFormatFloat32x4},
	}

	for _, tt := range tests {
		t.Run(tt.dtype.String(), func(t *testing.T) {
			got, ok := Format(tt.dtype)
			if !ok || got != tt.want {
				t.Errorf("Format(%v) = (%v, %v), want (%v, true)", tt.dtype, got, ok, tt.want)
			}
		})
	}

	if _, ok := Format(attrib.TypeInvalid); ok {
		t.Error("Format(invalid) reported ok")
	}
}

func TestLayout(t *testing.T) {
	pos := attrib.NewArrayRead(attrib.DomainPoint, make([]attrib.Float3, 2))
	uv := attrib.NewArrayRead(attrib.DomainPoint, make([]attrib.Float2, 2))
	id := attrib.NewArrayRead(attrib.DomainPoint, make([]int32, 2))

	layout, err := Layout(pos, uv, id)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	want := gputypes.VertexBufferLayout{
		ArrayStride: 24,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
			{Format: gputypes.VertexFormatUint32, Offset: 20, ShaderLocation: 2},
		},
	}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutValidation(t *testing.T) {
	pos := attrib.NewArrayRead(attrib.DomainPoint, make([]attrib.Float3, 2))
	edgeAttr := attrib.NewArrayRead(attrib.DomainEdge, make([]float32, 2))
	short := attrib.NewArrayRead(attrib.DomainPoint, make([]float32, 1))

	tests := []struct {
		name  string
		attrs []attrib.ReadAttribute
		want  error
	}{
		{"empty", nil, ErrNoAttributes},
		{"domains", []attrib.ReadAttribute{pos, edgeAttr}, ErrDomainMismatch},
		{"lengths", []attrib.ReadAttribute{pos, short}, ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Layout(tt.attrs...); err != tt.want {
				t.Errorf("Layout error = %v, want %v", err, tt.want)
			}
			if _, err := Interleave(tt.attrs...); err != tt.want {
				t.Errorf("Interleave error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInterleave(t *testing.T) {
	positions := []attrib.Float3{attrib.F3(1, 2, 3), attrib.F3(4, 5, 6)}
	masks := []float32{0.5, 0.75}
	ids := []int32{7, -8}

	pos := attrib.NewArrayRead(attrib.DomainPoint, positions)
	mask := attrib.NewArrayRead(attrib.DomainPoint, masks)
	id := attrib.NewArrayRead(attrib.DomainPoint, ids)

	buf, err := Interleave(pos, mask, id)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}

	const stride = 12 + 4 + 4
	if len(buf) != 2*stride {
		t.Fatalf("len(buf) = %d, want %d", len(buf), 2*stride)
	}

	readFloat := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}

	for i := 0; i < 2; i++ {
		base := i * stride
		got := attrib.F3(readFloat(base), readFloat(base+4), readFloat(base+8))
		if got != positions[i] {
			t.Errorf("element %d position = %v, want %v", i, got, positions[i])
		}
		if got := readFloat(base + 12); got != masks[i] {
			t.Errorf("element %d mask = %v, want %v", i, got, masks[i])
		}
		if got := int32(binary.LittleEndian.Uint32(buf[base+16:])); got != ids[i] {
			t.Errorf("element %d id = %d, want %d", i, got, ids[i])
		}
	}
}

func TestInterleave_ColorAndFloat2(t *testing.T) {
	colors := []attrib.ColorRGBA{{R: 0.1, G: 0.2, B: 0.3, A: 1}}
	uvs := []attrib.Float2{attrib.F2(0.25, 0.75)}

	buf, err := Interleave(
		attrib.NewArrayRead(attrib.DomainCorner, colors),
		attrib.NewArrayRead(attrib.DomainCorner, uvs),
	)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	if len(buf) != 16+8 {
		t.Fatalf("len(buf) = %d, want 24", len(buf))
	}

	readFloat := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	wantFloats := []float32{0.1, 0.2, 0.3, 1, 0.25, 0.75}
	for i, want := range wantFloats {
		if got := readFloat(i * 4); got != want {
			t.Errorf("float %d = %v, want %v", i, got, want)
		}
	}
}

func TestInterleave_ConstantFallback(t *testing.T) {
	// The read-with-default fallback packs like any other attribute.
	comp := attrib.NewPointCloudComponent(attrib.NewPointCloud(3))
	mask := attrib.ReadWithDefault(comp, "mask", attrib.DomainPoint, attrib.TypeFloat, float32(1))

	buf, err := Interleave(mask)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	if len(buf) != 3*4 {
		t.Fatalf("len(buf) = %d, want 12", len(buf))
	}
	for i := 0; i < 3; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != 1 {
			t.Errorf("element %d = %v, want 1", i, got)
		}
	}
}
