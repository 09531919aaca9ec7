package attrib

// arrayReader is the dense storage shape: a contiguous slice of
// uniformly typed elements, borrowed from a geometry layer. This is
// the common path for ordinary named layers of all five types.
type arrayReader[T Element] struct {
	header
	data []T
}

func (a *arrayReader[T]) Get(i int) any { return a.data[i] }

type arrayWriter[T Element] struct {
	arrayReader[T]
}

func (a *arrayWriter[T]) Set(i int, v any) { a.data[i] = v.(T) }

// NewArrayRead returns a read-only attribute over a dense slice of
// elements. The attribute borrows data; it does not copy.
func NewArrayRead[T Element](domain Domain, data []T) ReadAttribute {
	return &arrayReader[T]{
		header: header{domain: domain, dtype: typeTag[T](), size: len(data)},
		data:   data,
	}
}

// NewArrayWrite returns a writable attribute over a dense slice of
// elements. The attribute borrows data; Set mutates it in place.
func NewArrayWrite[T Element](domain Domain, data []T) WriteAttribute {
	return &arrayWriter[T]{
		arrayReader: arrayReader[T]{
			header: header{domain: domain, dtype: typeTag[T](), size: len(data)},
			data:   data,
		},
	}
}
