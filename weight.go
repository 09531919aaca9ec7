package attrib

// DeformWeight is one (vertex group, weight) entry in a vertex's
// sparse weight list.
type DeformWeight struct {
	Group  int
	Weight float32
}

// DeformVert is the sparse per-vertex weight list. A vertex with no
// entry for a group has weight 0 in that group; absence is the normal
// state, not an error.
type DeformVert struct {
	Weights []DeformWeight
}

// Find returns the entry for group, or nil if the vertex has none.
func (dv *DeformVert) Find(group int) *DeformWeight {
	for i := range dv.Weights {
		if dv.Weights[i].Group == group {
			return &dv.Weights[i]
		}
	}
	return nil
}

// Ensure returns the entry for group, appending a zero-weight entry
// if the vertex has none yet.
func (dv *DeformVert) Ensure(group int) *DeformWeight {
	if w := dv.Find(group); w != nil {
		return w
	}
	dv.Weights = append(dv.Weights, DeformWeight{Group: group})
	return &dv.Weights[len(dv.Weights)-1]
}

// Remove deletes the entry for group if the vertex has one.
func (dv *DeformVert) Remove(group int) {
	for i := range dv.Weights {
		if dv.Weights[i].Group == group {
			dv.Weights = append(dv.Weights[:i], dv.Weights[i+1:]...)
			return
		}
	}
}

// weightReader reads one vertex group as a float attribute over the
// vertex domain. Each access linear-scans the vertex's weight list;
// the lists are typically a handful of entries, so the scan is cheap.
type weightReader struct {
	header
	dverts []DeformVert
	group  int
}

func (a *weightReader) Get(i int) any {
	if w := a.dverts[i].Find(a.group); w != nil {
		return w.Weight
	}
	return float32(0)
}

type weightWriter struct {
	weightReader
}

func (a *weightWriter) Set(i int, v any) {
	a.dverts[i].Ensure(a.group).Weight = v.(float32)
}

// NewVertexWeightRead returns a read-only float attribute over the
// point domain backed by the sparse weight lists of one vertex group.
// Vertices without an entry for the group read as 0.
func NewVertexWeightRead(dverts []DeformVert, group int) ReadAttribute {
	return &weightReader{
		header: header{domain: DomainPoint, dtype: TypeFloat, size: len(dverts)},
		dverts: dverts,
		group:  group,
	}
}

// NewVertexWeightWrite returns a writable float attribute over the
// point domain backed by the sparse weight lists of one vertex group.
// Set creates the vertex's entry for the group when missing, then
// overwrites its weight.
func NewVertexWeightWrite(dverts []DeformVert, group int) WriteAttribute {
	return &weightWriter{
		weightReader: weightReader{
			header: header{domain: DomainPoint, dtype: TypeFloat, size: len(dverts)},
			dverts: dverts,
			group:  group,
		},
	}
}
