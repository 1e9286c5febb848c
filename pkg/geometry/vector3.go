package geometry

import "math"

// normalizeEpsilon is the smallest length that still defines a direction
const normalizeEpsilon = 1e-15

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// Undefined marks a point that has no finite value, such as the center of
// an arc with infinite radius. It is finite so it survives arithmetic
// without turning into NaN.
var Undefined = Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The second result is false, and the vector zero, when v is too short to
// define a direction.
func (v Vector3) Normalize() (Vector3, bool) {
	length := v.Length()
	if length < normalizeEpsilon || math.IsNaN(length) || math.IsInf(length, 0) {
		return Vector3{}, false
	}
	return v.Mul(1.0 / length), true
}

// IsFinite reports whether no component is NaN or infinite
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// IsUndefined reports whether v is the Undefined sentinel
func (v Vector3) IsUndefined() bool {
	return v == Undefined
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
