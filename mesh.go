package attrib

// Vert is one mesh vertex record. The position lives here as an
// embedded field rather than in a standalone layer; the "Position"
// builtin attribute projects it out.
type Vert struct {
	Co Float3
}

// Edge connects two vertices by index.
type Edge struct {
	V1, V2 int
}

// Poly is one polygon: a contiguous run of corners in the mesh's
// corner list.
type Poly struct {
	LoopStart, LoopTotal int
}

// Loop is one face corner, referencing the vertex it sits on and the
// edge it follows.
type Loop struct {
	Vert, Edge int
}

// Mesh is the mesh geometry buffer: element records for the four
// domains, one named-layer table per domain, and the sparse per-vertex
// deform weights that back vertex-group attributes.
type Mesh struct {
	Verts []Vert
	Edges []Edge
	Polys []Poly
	Loops []Loop

	VertData   LayerTable
	EdgeData   LayerTable
	PolyData   LayerTable
	CornerData LayerTable

	// DVerts is indexed like Verts. An empty weight list means the
	// vertex belongs to no vertex group.
	DVerts []DeformVert
}

// NewMesh allocates a mesh buffer with the given element counts and
// no named layers.
func NewMesh(verts, edges, polys, corners int) *Mesh {
	return &Mesh{
		Verts:  make([]Vert, verts),
		Edges:  make([]Edge, edges),
		Polys:  make([]Poly, polys),
		Loops:  make([]Loop, corners),
		DVerts: make([]DeformVert, verts),
	}
}

// PositionName is the reserved name of the builtin position attribute.
const PositionName = "Position"

// MeshComponent resolves attribute names against a mesh buffer. All
// four domains are supported with all five data types.
//
// Vertex group names live in their own name-to-index table, separate
// from the named-layer tables. A name resolves to a vertex-group
// weight attribute before the vertex layer table is searched, so the
// component refuses to create a vertex layer under a group's name.
type MeshComponent struct {
	mesh         *Mesh
	vertexGroups map[string]int
	nextGroup    int
}

var _ Component = (*MeshComponent)(nil)

// NewMeshComponent creates a component borrowing the given mesh
// buffer. A nil mesh is the valid empty state.
func NewMeshComponent(mesh *Mesh) *MeshComponent {
	return &MeshComponent{mesh: mesh, vertexGroups: make(map[string]int)}
}

// Mesh returns the borrowed mesh buffer, which may be nil.
func (c *MeshComponent) Mesh() *Mesh { return c.mesh }

// AddVertexGroup registers a vertex group name and returns its index.
// It reports false when the name is already a vertex group or already
// names a vertex-domain layer; a name must not be both.
func (c *MeshComponent) AddVertexGroup(name string) (int, bool) {
	if _, exists := c.vertexGroups[name]; exists {
		return -1, false
	}
	if c.mesh != nil && c.mesh.VertData.Has(name) {
		return -1, false
	}
	index := c.nextGroup
	c.nextGroup++
	c.vertexGroups[name] = index
	return index, true
}

// VertexGroupIndex returns the index of a registered vertex group, or
// -1 when the name is not a group.
func (c *MeshComponent) VertexGroupIndex(name string) int {
	if index, ok := c.vertexGroups[name]; ok {
		return index
	}
	return -1
}

// SupportsDomain reports true for all four mesh domains.
func (c *MeshComponent) SupportsDomain(domain Domain) bool {
	switch domain {
	case DomainPoint, DomainEdge, DomainPolygon, DomainCorner:
		return true
	}
	return false
}

// SupportsDataType reports true for every supported domain paired
// with any of the five data types.
func (c *MeshComponent) SupportsDataType(domain Domain, dtype DataType) bool {
	return c.SupportsDomain(domain) && dtype.Valid()
}

// DomainLen returns the mesh's element count for a domain, 0 when no
// mesh is present. Panics for an unsupported domain.
func (c *MeshComponent) DomainLen(domain Domain) int {
	if !c.SupportsDomain(domain) {
		panic("attrib: domain " + domain.String() + " not supported by mesh component")
	}
	if c.mesh == nil {
		return 0
	}
	switch domain {
	case DomainPoint:
		return len(c.mesh.Verts)
	case DomainEdge:
		return len(c.mesh.Edges)
	case DomainPolygon:
		return len(c.mesh.Polys)
	case DomainCorner:
		return len(c.mesh.Loops)
	}
	return 0
}

// IsBuiltin reports true for the reserved "Position" name.
func (c *MeshComponent) IsBuiltin(name string) bool {
	return name == PositionName
}

// Read resolves a name to a read attribute. The builtin position is
// checked first so no layer can shadow it; after that the search
// order is corner layers, vertex groups, vertex layers, edge layers,
// polygon layers, first match wins.
func (c *MeshComponent) Read(name string) ReadAttribute {
	if c.mesh == nil {
		return nil
	}

	if name == PositionName {
		return NewDerivedRead(DomainPoint, c.mesh.Verts, func(v *Vert) Float3 {
			return v.Co
		})
	}

	if attr := readFromTable(&c.mesh.CornerData, DomainCorner, len(c.mesh.Loops), name); attr != nil {
		return attr
	}
	if group := c.VertexGroupIndex(name); group >= 0 {
		return NewVertexWeightRead(c.mesh.DVerts, group)
	}
	if attr := readFromTable(&c.mesh.VertData, DomainPoint, len(c.mesh.Verts), name); attr != nil {
		return attr
	}
	if attr := readFromTable(&c.mesh.EdgeData, DomainEdge, len(c.mesh.Edges), name); attr != nil {
		return attr
	}
	return readFromTable(&c.mesh.PolyData, DomainPolygon, len(c.mesh.Polys), name)
}

// Write resolves a name to a writable attribute, with the same order
// as Read. Writing through the builtin position updates the vertex
// records in place.
func (c *MeshComponent) Write(name string) WriteAttribute {
	if c.mesh == nil {
		return nil
	}

	if name == PositionName {
		return NewDerivedWrite(DomainPoint, c.mesh.Verts,
			func(v *Vert) Float3 { return v.Co },
			func(v *Vert, co Float3) { v.Co = co })
	}

	if attr := writeFromTable(&c.mesh.CornerData, DomainCorner, len(c.mesh.Loops), name); attr != nil {
		return attr
	}
	if group := c.VertexGroupIndex(name); group >= 0 {
		return NewVertexWeightWrite(c.mesh.DVerts, group)
	}
	if attr := writeFromTable(&c.mesh.VertData, DomainPoint, len(c.mesh.Verts), name); attr != nil {
		return attr
	}
	if attr := writeFromTable(&c.mesh.EdgeData, DomainEdge, len(c.mesh.Edges), name); attr != nil {
		return attr
	}
	return writeFromTable(&c.mesh.PolyData, DomainPolygon, len(c.mesh.Polys), name)
}

// AdaptDomain only supports the identity adaptation.
func (c *MeshComponent) AdaptDomain(attr ReadAttribute, domain Domain) ReadAttribute {
	return adaptIdentity(attr, domain)
}

// Delete removes a non-builtin name wherever it occurs: all four
// layer tables are swept (names are unique per table, and in practice
// a name lives in at most one), and a vertex group of that name is
// stripped from every vertex and unregistered. Reports whether
// anything was removed.
func (c *MeshComponent) Delete(name string) bool {
	if c.IsBuiltin(name) {
		return false
	}
	if c.mesh == nil {
		return false
	}

	removed := c.mesh.CornerData.Remove(name)
	removed = c.mesh.VertData.Remove(name) || removed
	removed = c.mesh.EdgeData.Remove(name) || removed
	removed = c.mesh.PolyData.Remove(name) || removed

	if group := c.VertexGroupIndex(name); group >= 0 {
		for i := range c.mesh.DVerts {
			c.mesh.DVerts[i].Remove(group)
		}
		delete(c.vertexGroups, name)
		removed = true
	}

	return removed
}

// Create adds a zero-initialized named layer in the table of the
// given domain. It fails for builtin names, unsupported (domain,
// type) combinations, names already present in the target table, and,
// on the vertex domain, names already registered as a vertex group.
func (c *MeshComponent) Create(name string, domain Domain, dtype DataType) bool {
	if c.IsBuiltin(name) {
		return false
	}
	if !c.SupportsDataType(domain, dtype) {
		return false
	}
	if c.mesh == nil {
		return false
	}

	switch domain {
	case DomainCorner:
		return c.mesh.CornerData.Add(name, dtype, len(c.mesh.Loops))
	case DomainPoint:
		if c.VertexGroupIndex(name) >= 0 {
			return false
		}
		return c.mesh.VertData.Add(name, dtype, len(c.mesh.Verts))
	case DomainEdge:
		return c.mesh.EdgeData.Add(name, dtype, len(c.mesh.Edges))
	case DomainPolygon:
		return c.mesh.PolyData.Add(name, dtype, len(c.mesh.Polys))
	}
	return false
}
