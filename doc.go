// Package attrib provides typed, domain-aware attribute access for
// heterogeneous geometric data (meshes and point clouds).
//
// An attribute is a named, typed value defined over one element domain
// of a geometry: its points/vertices, edges, polygons, or face corners.
// Generic algorithms read and write attributes through the
// [ReadAttribute] and [WriteAttribute] interfaces without knowing
// whether the backing storage is a dense layer, a field inside a
// larger per-vertex record, a sparse vertex-weight list, or a constant
// fallback value.
//
// # Components
//
// A [Component] binds a geometry buffer to the attribute contract.
// [MeshComponent] and [PointCloudComponent] are the two concrete
// components; each advertises which (domain, type) combinations it
// supports and resolves names to attributes:
//
//	comp := attrib.NewMeshComponent(mesh)
//	if comp.Create("Temperature", attrib.DomainPoint, attrib.TypeFloat) {
//		w := comp.Write("Temperature")
//		w.Set(0, float32(21.5))
//	}
//
// Lookups return nil when a name does not resolve; create and delete
// report success with a bool. "Not found", "unsupported", and
// "already exists" are ordinary outcomes, never errors.
//
// # Safe reads
//
// [ReadWithDefault] is the entry point generic code should prefer: it
// never returns nil. When the requested attribute is missing, has the
// wrong type, or cannot be adapted to the requested domain, the caller
// receives a constant attribute holding the supplied default:
//
//	pos := attrib.ReadWithDefault(comp, "Position",
//		attrib.DomainPoint, attrib.TypeFloat3, attrib.Float3{})
//	for i := 0; i < pos.Len(); i++ {
//		p := pos.Get(i).(attrib.Float3)
//		// ...
//	}
//
// # Lifetime
//
// Attribute values returned by lookups are lightweight views over the
// geometry buffer's storage. Any structural mutation of that storage
// (Create, Delete, EnsureWrite) may reallocate layers and invalidates
// previously returned attributes; re-resolve after such calls.
//
// The package is not safe for concurrent mutation. Callers own
// synchronization, as they own the geometry buffers themselves.
package attrib
