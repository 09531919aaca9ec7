package attrib

// DataType tags the value type stored by an attribute or a layer.
// The set of supported types is closed: attribute storage and the
// erased value contract are defined for exactly these five kinds.
//
// The erased value itself travels as an `any` holding the matching Go
// type: float32, [Float2], [Float3], int32, or [ColorRGBA]. The
// mapping between tag and Go type is total in both directions:
// [DataType.Zero] goes from tag to value, [TypeOf] goes from value to
// tag and answers [TypeInvalid] for anything outside the closed set.
type DataType int8

// TypeInvalid is the sentinel for values outside the supported set.
// It is never a legal argument to component operations.
const TypeInvalid DataType = -1

const (
	// TypeFloat is a single float32.
	TypeFloat DataType = iota
	// TypeFloat2 is a 2-component float32 vector.
	TypeFloat2
	// TypeFloat3 is a 3-component float32 vector.
	TypeFloat3
	// TypeInt is a single int32.
	TypeInt
	// TypeColor is an RGBA color with float32 components.
	TypeColor

	numDataTypes
)

// Valid reports whether t is one of the five supported types.
func (t DataType) Valid() bool {
	return t >= TypeFloat && t < numDataTypes
}

// String returns the type name for diagnostics.
func (t DataType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeFloat2:
		return "float2"
	case TypeFloat3:
		return "float3"
	case TypeInt:
		return "int"
	case TypeColor:
		return "color"
	}
	return "invalid"
}

// Size returns the packed byte size of one value of this type, or 0
// for an invalid type.
func (t DataType) Size() int {
	switch t {
	case TypeFloat:
		return 4
	case TypeFloat2:
		return 8
	case TypeFloat3:
		return 12
	case TypeInt:
		return 4
	case TypeColor:
		return 16
	}
	return 0
}

// Zero returns the zero value of this type as an erased value, or nil
// for an invalid type.
func (t DataType) Zero() any {
	switch t {
	case TypeFloat:
		return float32(0)
	case TypeFloat2:
		return Float2{}
	case TypeFloat3:
		return Float3{}
	case TypeInt:
		return int32(0)
	case TypeColor:
		return ColorRGBA{}
	}
	return nil
}

// Equal reports whether two erased values of this type are equal.
// Both arguments must hold the Go type matching t.
func (t DataType) Equal(a, b any) bool {
	switch t {
	case TypeFloat:
		return a.(float32) == b.(float32)
	case TypeFloat2:
		return a.(Float2) == b.(Float2)
	case TypeFloat3:
		return a.(Float3) == b.(Float3)
	case TypeInt:
		return a.(int32) == b.(int32)
	case TypeColor:
		return a.(ColorRGBA) == b.(ColorRGBA)
	}
	return false
}

// TypeOf returns the tag for an erased value, or TypeInvalid when the
// value's type is not one of the five supported kinds.
func TypeOf(v any) DataType {
	switch v.(type) {
	case float32:
		return TypeFloat
	case Float2:
		return TypeFloat2
	case Float3:
		return TypeFloat3
	case int32:
		return TypeInt
	case ColorRGBA:
		return TypeColor
	}
	return TypeInvalid
}
