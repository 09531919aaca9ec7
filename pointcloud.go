package attrib

// PointCloud is the point-cloud geometry buffer: a point count and
// one named-layer table. Unlike the mesh, the point position is an
// ordinary Float3 layer named "Position" rather than a field in a
// per-point record.
type PointCloud struct {
	NumPoints int
	Data      LayerTable
}

// NewPointCloud allocates a point cloud with the given point count.
// The builtin "Position" layer is created with the buffer, so it
// always exists while the buffer does.
func NewPointCloud(points int) *PointCloud {
	pc := &PointCloud{NumPoints: points}
	pc.Data.Add(PositionName, TypeFloat3, points)
	return pc
}

// PointCloudComponent resolves attribute names against a point-cloud
// buffer. Only the point domain is supported.
//
// "Position" is a builtin by name (protected from create and delete)
// but resolves through the ordinary layer table, because the point
// position genuinely is a standalone layer.
type PointCloudComponent struct {
	pointcloud *PointCloud
}

var _ Component = (*PointCloudComponent)(nil)

// NewPointCloudComponent creates a component borrowing the given
// buffer. A nil point cloud is the valid empty state.
func NewPointCloudComponent(pc *PointCloud) *PointCloudComponent {
	return &PointCloudComponent{pointcloud: pc}
}

// PointCloud returns the borrowed buffer, which may be nil.
func (c *PointCloudComponent) PointCloud() *PointCloud { return c.pointcloud }

// SupportsDomain reports true for the point domain only.
func (c *PointCloudComponent) SupportsDomain(domain Domain) bool {
	return domain == DomainPoint
}

// SupportsDataType reports true for the point domain with any of the
// five data types.
func (c *PointCloudComponent) SupportsDataType(domain Domain, dtype DataType) bool {
	return domain == DomainPoint && dtype.Valid()
}

// DomainLen returns the point count, 0 when no buffer is present.
// Panics for any domain other than point.
func (c *PointCloudComponent) DomainLen(domain Domain) int {
	if domain != DomainPoint {
		panic("attrib: domain " + domain.String() + " not supported by point cloud component")
	}
	if c.pointcloud == nil {
		return 0
	}
	return c.pointcloud.NumPoints
}

// IsBuiltin reports true for the reserved "Position" name.
func (c *PointCloudComponent) IsBuiltin(name string) bool {
	return name == PositionName
}

// Read resolves a name against the point layer table, or nil.
func (c *PointCloudComponent) Read(name string) ReadAttribute {
	if c.pointcloud == nil {
		return nil
	}
	return readFromTable(&c.pointcloud.Data, DomainPoint, c.pointcloud.NumPoints, name)
}

// Write resolves a name against the point layer table, or nil.
func (c *PointCloudComponent) Write(name string) WriteAttribute {
	if c.pointcloud == nil {
		return nil
	}
	return writeFromTable(&c.pointcloud.Data, DomainPoint, c.pointcloud.NumPoints, name)
}

// AdaptDomain only supports the identity adaptation.
func (c *PointCloudComponent) AdaptDomain(attr ReadAttribute, domain Domain) ReadAttribute {
	return adaptIdentity(attr, domain)
}

// Delete removes a non-builtin named layer and reports whether one
// was found.
func (c *PointCloudComponent) Delete(name string) bool {
	if c.IsBuiltin(name) {
		return false
	}
	if c.pointcloud == nil {
		return false
	}
	return c.pointcloud.Data.Remove(name)
}

// Create adds a zero-initialized named layer sized to the point
// count. It fails for builtin names, unsupported (domain, type)
// combinations, and names already present.
func (c *PointCloudComponent) Create(name string, domain Domain, dtype DataType) bool {
	if c.IsBuiltin(name) {
		return false
	}
	if !c.SupportsDataType(domain, dtype) {
		return false
	}
	if c.pointcloud == nil {
		return false
	}
	return c.pointcloud.Data.Add(name, dtype, c.pointcloud.NumPoints)
}
