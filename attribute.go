package attrib

// ReadAttribute is positional read access to one attribute. It is a
// lightweight view: Domain, DataType, and Len are fixed at
// construction (Len is a snapshot of the domain's element count and
// does not track later mutations of the geometry).
//
// Get returns the erased value at an index as one of the five
// supported Go types. Indexes outside [0, Len) are programmer errors
// and panic.
type ReadAttribute interface {
	// Domain returns the element domain the attribute is defined over.
	Domain() Domain

	// DataType returns the tag of the stored value type.
	DataType() DataType

	// Len returns the element count the attribute was created with.
	Len() int

	// Get returns the value at index i.
	Get(i int) any
}

// WriteAttribute is a ReadAttribute whose backing storage can be
// mutated in place. Set requires a value of exactly the attribute's
// data type; passing any other type is a programmer error and panics.
type WriteAttribute interface {
	ReadAttribute

	// Set stores v at index i.
	Set(i int, v any)
}

// header carries the immutable identity shared by every attribute
// implementation.
type header struct {
	domain Domain
	dtype  DataType
	size   int
}

func (h header) Domain() Domain     { return h.domain }
func (h header) DataType() DataType { return h.dtype }
func (h header) Len() int           { return h.size }

// Element constrains the Go types usable as attribute elements to the
// closed supported set.
type Element interface {
	float32 | Float2 | Float3 | int32 | ColorRGBA
}

// typeTag returns the DataType for an element type parameter.
func typeTag[T Element]() DataType {
	var zero T
	return TypeOf(zero)
}
