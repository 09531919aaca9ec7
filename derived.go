package attrib

// derivedReader projects an attribute out of a slice of larger
// per-element records through a pure extraction function. Builtin
// attributes use this shape: a mesh vertex position is a Float3 field
// inside the vertex record, not a standalone layer.
type derivedReader[S any, E Element] struct {
	header
	data []S
	get  func(*S) E
}

func (d *derivedReader[S, E]) Get(i int) any { return d.get(&d.data[i]) }

type derivedWriter[S any, E Element] struct {
	derivedReader[S, E]
	set func(*S, E)
}

func (d *derivedWriter[S, E]) Set(i int, v any) { d.set(&d.data[i], v.(E)) }

// NewDerivedRead returns a read-only attribute whose values are
// extracted from a slice of structs by get. The extraction function is
// fixed at construction.
func NewDerivedRead[S any, E Element](domain Domain, data []S, get func(*S) E) ReadAttribute {
	return &derivedReader[S, E]{
		header: header{domain: domain, dtype: typeTag[E](), size: len(data)},
		data:   data,
		get:    get,
	}
}

// NewDerivedWrite returns a writable attribute over a slice of structs
// with an extraction/injection function pair. Set updates the struct
// field in place through set.
func NewDerivedWrite[S any, E Element](domain Domain, data []S, get func(*S) E, set func(*S, E)) WriteAttribute {
	return &derivedWriter[S, E]{
		derivedReader: derivedReader[S, E]{
			header: header{domain: domain, dtype: typeTag[E](), size: len(data)},
			data:   data,
			get:    get,
		},
		set: set,
	}
}
