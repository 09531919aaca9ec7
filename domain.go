package attrib

// Domain identifies the element set an attribute is defined over.
// The set is closed: geometry components support a fixed subset of
// these four domains and nothing else.
type Domain int8

const (
	// DomainPoint covers point-cloud points and mesh vertices.
	DomainPoint Domain = iota
	// DomainEdge covers mesh edges.
	DomainEdge
	// DomainPolygon covers mesh polygons (faces).
	DomainPolygon
	// DomainCorner covers mesh face corners (loops).
	DomainCorner

	numDomains
)

// String returns the domain name for diagnostics.
func (d Domain) String() string {
	switch d {
	case DomainPoint:
		return "point"
	case DomainEdge:
		return "edge"
	case DomainPolygon:
		return "polygon"
	case DomainCorner:
		return "corner"
	}
	return "unknown"
}
