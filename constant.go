package attrib

// constantReader holds one owned value and reports it for every index.
// It exists for the read-with-default path only: ordinary lookups
// never return a constant attribute.
type constantReader struct {
	header
	value any
}

func (c *constantReader) Get(int) any { return c.value }

// NewConstant returns a read-only attribute of the given size whose
// every element is value. The value is owned by the attribute; it
// does not borrow geometry storage.
//
// Panics if value is not one of the five supported types.
func NewConstant(domain Domain, size int, value any) ReadAttribute {
	dtype := TypeOf(value)
	if !dtype.Valid() {
		panic("attrib: NewConstant called with unsupported value type")
	}
	return &constantReader{
		header: header{domain: domain, dtype: dtype, size: size},
		value:  value,
	}
}
