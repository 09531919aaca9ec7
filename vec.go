package attrib

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Float2 is a 2-component float32 vector, one of the five supported
// attribute value types. Typical uses are UV coordinates and other
// per-corner parameterizations.
type Float2 struct {
	X, Y float32
}

// F2 is a convenience function to create a Float2.
func F2(x, y float32) Float2 {
	return Float2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Float2) Add(w Float2) Float2 {
	return Float2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Float2) Sub(w Float2) Float2 {
	return Float2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Float2) Mul(s float32) Float2 {
	return Float2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Float2) Dot(w Float2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length (magnitude) of the vector.
func (v Float2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Float2) Normalize() Float2 {
	length := v.Length()
	if length == 0 {
		return Float2{}
	}
	return Float2{X: v.X / length, Y: v.Y / length}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Float2) Lerp(w Float2, t float32) Float2 {
	return Float2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Float2) Approx(w Float2, epsilon float32) bool {
	return math32.Abs(v.X-w.X) < epsilon && math32.Abs(v.Y-w.Y) < epsilon
}

// F32 returns the vector in the flat form GPU buffers use.
func (v Float2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Float3 is a 3-component float32 vector, one of the five supported
// attribute value types. Vertex positions and normals are Float3.
type Float3 struct {
	X, Y, Z float32
}

// F3 is a convenience function to create a Float3.
func F3(x, y, z float32) Float3 {
	return Float3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Float3) Add(w Float3) Float3 {
	return Float3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Float3) Sub(w Float3) Float3 {
	return Float3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Float3) Mul(s float32) Float3 {
	return Float3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Float3) Dot(w Float3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Float3) Cross(w Float3) Float3 {
	return Float3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Float3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Float3) Normalize() Float3 {
	length := v.Length()
	if length == 0 {
		return Float3{}
	}
	return Float3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Float3) Lerp(w Float3, t float32) Float3 {
	return Float3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Float3) Approx(w Float3, epsilon float32) bool {
	return math32.Abs(v.X-w.X) < epsilon &&
		math32.Abs(v.Y-w.Y) < epsilon &&
		math32.Abs(v.Z-w.Z) < epsilon
}

// F32 returns the vector in the flat form GPU buffers use.
func (v Float3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}
