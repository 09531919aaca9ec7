package attrib

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMeshComponent_Capabilities(t *testing.T) {
	comp := NewMeshComponent(NewMesh(4, 5, 2, 6))

	for _, domain := range []Domain{DomainPoint, DomainEdge, DomainPolygon, DomainCorner} {
		if !comp.SupportsDomain(domain) {
			t.Errorf("SupportsDomain(%v) = false", domain)
		}
		for _, dtype := range allDataTypes {
			if !comp.SupportsDataType(domain, dtype) {
				t.Errorf("SupportsDataType(%v, %v) = false", domain, dtype)
			}
		}
		if comp.SupportsDataType(domain, TypeInvalid) {
			t.Errorf("SupportsDataType(%v, invalid) = true", domain)
		}
	}

	sizes := map[Domain]int{
		DomainPoint:   4,
		DomainEdge:    5,
		DomainPolygon: 2,
		DomainCorner:  6,
	}
	for domain, want := range sizes {
		if got := comp.DomainLen(domain); got != want {
			t.Errorf("DomainLen(%v) = %d, want %d", domain, got, want)
		}
	}
}

func TestMeshComponent_EmptyBuffer(t *testing.T) {
	comp := NewMeshComponent(nil)

	// Absent buffer is a valid state, not an error: domains exist and
	// are empty.
	if got := comp.DomainLen(DomainPoint); got != 0 {
		t.Errorf("DomainLen on empty = %d, want 0", got)
	}
	if comp.Read(PositionName) != nil {
		t.Error("Read on empty component != nil")
	}
	if comp.Write(PositionName) != nil {
		t.Error("Write on empty component != nil")
	}
	if comp.Create("x", DomainPoint, TypeFloat) {
		t.Error("Create on empty component = true")
	}
	if comp.Delete("x") {
		t.Error("Delete on empty component = true")
	}
}

func TestMeshComponent_RoundTrip(t *testing.T) {
	// For every supported domain and type: create, write every index,
	// read back the exact values.
	for _, domain := range []Domain{DomainPoint, DomainEdge, DomainPolygon, DomainCorner} {
		for _, dtype := range allDataTypes {
			t.Run(domain.String()+"/"+dtype.String(), func(t *testing.T) {
				comp := NewMeshComponent(NewMesh(4, 5, 2, 6))
				if !comp.Create("layer", domain, dtype) {
					t.Fatal("Create failed")
				}

				w := comp.Write("layer")
				if w == nil {
					t.Fatal("Write = nil after Create")
				}
				if w.Domain() != domain || w.DataType() != dtype {
					t.Fatalf("identity = (%v, %v)", w.Domain(), w.DataType())
				}
				if w.Len() != comp.DomainLen(domain) {
					t.Fatalf("Len() = %d, want %d", w.Len(), comp.DomainLen(domain))
				}

				for i := 0; i < w.Len(); i++ {
					w.Set(i, testValue(dtype, i))
				}
				r := comp.Read("layer")
				if r == nil {
					t.Fatal("Read = nil")
				}
				for i := 0; i < r.Len(); i++ {
					if !dtype.Equal(r.Get(i), testValue(dtype, i)) {
						t.Errorf("Get(%d) = %v, want %v", i, r.Get(i), testValue(dtype, i))
					}
				}
			})
		}
	}
}

func TestMeshComponent_PositionBuiltin(t *testing.T) {
	mesh := NewMesh(3, 0, 0, 0)
	mesh.Verts[0].Co = F3(1, 2, 3)
	mesh.Verts[1].Co = F3(4, 5, 6)
	mesh.Verts[2].Co = F3(7, 8, 9)
	comp := NewMeshComponent(mesh)

	if !comp.IsBuiltin(PositionName) {
		t.Fatal("Position not builtin")
	}

	r := comp.Read(PositionName)
	if r == nil {
		t.Fatal("Read(Position) = nil")
	}
	if r.Domain() != DomainPoint || r.DataType() != TypeFloat3 {
		t.Fatalf("Position identity = (%v, %v)", r.Domain(), r.DataType())
	}
	if got := r.Get(1).(Float3); got != F3(4, 5, 6) {
		t.Errorf("Get(1) = %v, want stored coordinate", got)
	}

	// Writing through the attribute updates the vertex record in place
	// and creates no layer named "Position".
	w := comp.Write(PositionName)
	if w == nil {
		t.Fatal("Write(Position) = nil")
	}
	w.Set(2, F3(-1, -2, -3))
	if mesh.Verts[2].Co != F3(-1, -2, -3) {
		t.Errorf("vertex record = %v, want (-1 -2 -3)", mesh.Verts[2].Co)
	}
	if mesh.VertData.Has(PositionName) {
		t.Error("a vertex layer named Position was created")
	}

	// Builtins are protected from the generic create and delete paths.
	if comp.Create(PositionName, DomainPoint, TypeFloat3) {
		t.Error("Create(Position) = true")
	}
	if comp.Delete(PositionName) {
		t.Error("Delete(Position) = true")
	}
	if comp.Read(PositionName) == nil {
		t.Error("Position gone after Delete attempt")
	}
}

func TestMeshComponent_ResolutionOrder(t *testing.T) {
	// The same name in several tables resolves corner first, then
	// vertex group, vertex, edge, polygon.
	mesh := NewMesh(2, 2, 2, 2)
	comp := NewMeshComponent(mesh)

	mesh.PolyData.Add("shared", TypeFloat, 2)
	if got := comp.Read("shared").Domain(); got != DomainPolygon {
		t.Fatalf("resolved %v, want polygon", got)
	}

	mesh.EdgeData.Add("shared", TypeFloat, 2)
	if got := comp.Read("shared").Domain(); got != DomainEdge {
		t.Fatalf("resolved %v, want edge", got)
	}

	mesh.VertData.Add("shared", TypeFloat, 2)
	if got := comp.Read("shared").Domain(); got != DomainPoint {
		t.Fatalf("resolved %v, want point", got)
	}

	mesh.CornerData.Add("shared", TypeFloat, 2)
	if got := comp.Read("shared").Domain(); got != DomainCorner {
		t.Fatalf("resolved %v, want corner", got)
	}
}

func TestMeshComponent_VertexGroupBeforeVertexLayer(t *testing.T) {
	mesh := NewMesh(2, 0, 0, 0)
	comp := NewMeshComponent(mesh)

	if _, ok := comp.AddVertexGroup("arm"); !ok {
		t.Fatal("AddVertexGroup failed")
	}

	// A group's name cannot become a vertex layer.
	if comp.Create("arm", DomainPoint, TypeFloat) {
		t.Error("Create over a vertex group name succeeded")
	}
	// Other domains are unaffected by the group name.
	if !comp.Create("arm", DomainEdge, TypeFloat) {
		t.Error("edge layer under a group name rejected")
	}
}

func TestMeshComponent_VertexGroups(t *testing.T) {
	mesh := NewMesh(3, 0, 0, 0)
	comp := NewMeshComponent(mesh)

	index, ok := comp.AddVertexGroup("arm")
	if !ok {
		t.Fatal("AddVertexGroup failed")
	}
	if _, ok := comp.AddVertexGroup("arm"); ok {
		t.Error("duplicate AddVertexGroup succeeded")
	}
	if got := comp.VertexGroupIndex("arm"); got != index {
		t.Errorf("VertexGroupIndex = %d, want %d", got, index)
	}

	w := comp.Write("arm")
	if w == nil {
		t.Fatal("Write(arm) = nil")
	}
	if w.Domain() != DomainPoint || w.DataType() != TypeFloat {
		t.Fatalf("group attribute identity = (%v, %v)", w.Domain(), w.DataType())
	}

	w.Set(0, float32(0.9))
	w.Set(2, float32(0.1))

	r := comp.Read("arm")
	want := []float32{0.9, 0, 0.1}
	got := make([]float32, r.Len())
	for i := range got {
		got[i] = r.Get(i).(float32)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("group weights mismatch (-want +got):\n%s", diff)
	}

	// Deleting the group strips every vertex's entry and frees the name.
	if !comp.Delete("arm") {
		t.Fatal("Delete(arm) = false")
	}
	if comp.VertexGroupIndex("arm") != -1 {
		t.Error("group name still registered after Delete")
	}
	for i, dv := range mesh.DVerts {
		if len(dv.Weights) != 0 {
			t.Errorf("vertex %d still has weight entries: %v", i, dv.Weights)
		}
	}
	if comp.Read("arm") != nil {
		t.Error("Read(arm) after Delete != nil")
	}
}

func TestMeshComponent_CreateDeleteRestoresState(t *testing.T) {
	mesh := NewMesh(4, 0, 0, 0)
	comp := NewMeshComponent(mesh)

	if !comp.Create("Temp", DomainPoint, TypeFloat) {
		t.Fatal("Create(Temp) = false")
	}
	if comp.Create("Temp", DomainPoint, TypeFloat) {
		t.Error("second Create(Temp) = true")
	}

	w := comp.Write("Temp")
	if w == nil {
		t.Fatal("Write(Temp) = nil")
	}
	if w.Len() != 4 {
		t.Errorf("Len() = %d, want 4", w.Len())
	}
	w.Set(2, float32(3.5))
	if got := w.Get(2).(float32); got != 3.5 {
		t.Errorf("Get(2) = %v, want 3.5", got)
	}
	if got := w.Get(0).(float32); got != 0 {
		t.Errorf("Get(0) = %v, want default-initialized 0", got)
	}

	if !comp.Delete("Temp") {
		t.Fatal("Delete(Temp) = false")
	}
	if comp.Read("Temp") != nil {
		t.Error("Read(Temp) after Delete != nil")
	}
	// Pre-create state is fully restored: the name can be created again.
	if !comp.Create("Temp", DomainPoint, TypeFloat) {
		t.Error("re-Create(Temp) = false")
	}
}

func TestMeshComponent_DeleteNonexistent(t *testing.T) {
	comp := NewMeshComponent(NewMesh(2, 2, 2, 2))
	if comp.Delete("never-created") {
		t.Error("Delete of nonexistent name = true")
	}
}

func TestMeshComponent_DomainLenPanicsOnUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DomainLen(unsupported) did not panic")
		}
	}()
	NewMeshComponent(NewMesh(1, 1, 1, 1)).DomainLen(Domain(99))
}
