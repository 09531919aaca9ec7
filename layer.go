package attrib

// Layer is one named, typed data buffer inside a geometry's
// per-domain property table. Data holds a slice of the Go type
// matching Type ([]float32, []Float2, []Float3, []int32, or
// []ColorRGBA), sized to the domain's element count at creation.
type Layer struct {
	Name string
	Type DataType
	Data any
}

// LayerTable is the ordered collection of named layers for one
// domain. Names are unique within a table; nothing prevents the same
// name from appearing in the tables of two different domains.
//
// Adding or removing layers invalidates attributes previously
// resolved from the table.
type LayerTable struct {
	layers []Layer
}

// Len returns the number of layers in the table.
func (t *LayerTable) Len() int { return len(t.layers) }

// Layer returns the i-th layer.
func (t *LayerTable) Layer(i int) *Layer { return &t.layers[i] }

// Lookup returns the layer with the given name, or nil.
func (t *LayerTable) Lookup(name string) *Layer {
	for i := range t.layers {
		if t.layers[i].Name == name {
			return &t.layers[i]
		}
	}
	return nil
}

// Has reports whether a layer with the given name exists.
func (t *LayerTable) Has(name string) bool {
	return t.Lookup(name) != nil
}

// Add appends a new zero-initialized layer of the given type, sized
// to size elements. It reports false if the name is already taken or
// the type is invalid.
func (t *LayerTable) Add(name string, dtype DataType, size int) bool {
	if t.Has(name) {
		return false
	}
	data := newLayerData(dtype, size)
	if data == nil {
		return false
	}
	t.layers = append(t.layers, Layer{Name: name, Type: dtype, Data: data})
	return true
}

// Remove deletes the layer with the given name and reports whether
// one was found.
func (t *LayerTable) Remove(name string) bool {
	for i := range t.layers {
		if t.layers[i].Name == name {
			t.layers = append(t.layers[:i], t.layers[i+1:]...)
			return true
		}
	}
	return false
}

// newLayerData allocates zeroed backing storage for a layer, or nil
// for an invalid type.
func newLayerData(dtype DataType, size int) any {
	switch dtype {
	case TypeFloat:
		return make([]float32, size)
	case TypeFloat2:
		return make([]Float2, size)
	case TypeFloat3:
		return make([]Float3, size)
	case TypeInt:
		return make([]int32, size)
	case TypeColor:
		return make([]ColorRGBA, size)
	}
	return nil
}

// readFromTable resolves a named layer to a dense read attribute over
// the first size elements, or nil when the name is absent.
func readFromTable(t *LayerTable, domain Domain, size int, name string) ReadAttribute {
	layer := t.Lookup(name)
	if layer == nil {
		return nil
	}
	switch data := layer.Data.(type) {
	case []float32:
		return NewArrayRead(domain, data[:size])
	case []Float2:
		return NewArrayRead(domain, data[:size])
	case []Float3:
		return NewArrayRead(domain, data[:size])
	case []int32:
		return NewArrayRead(domain, data[:size])
	case []ColorRGBA:
		return NewArrayRead(domain, data[:size])
	}
	return nil
}

// writeFromTable resolves a named layer to a dense write attribute
// over the first size elements, or nil when the name is absent.
func writeFromTable(t *LayerTable, domain Domain, size int, name string) WriteAttribute {
	layer := t.Lookup(name)
	if layer == nil {
		return nil
	}
	switch data := layer.Data.(type) {
	case []float32:
		return NewArrayWrite(domain, data[:size])
	case []Float2:
		return NewArrayWrite(domain, data[:size])
	case []Float3:
		return NewArrayWrite(domain, data[:size])
	case []int32:
		return NewArrayWrite(domain, data[:size])
	case []ColorRGBA:
		return NewArrayWrite(domain, data[:size])
	}
	return nil
}
