// Package vecmath provides 3-element vector and 4x4 matrix primitives for
// 3D calculations such as perspective projection.
package vecmath

import "math"

// Vec3 is a 3D point or direction. Index 0, 1, 2 holds x, y, z.
type Vec3 [3]float64

// NewVec3 allocates a zeroed vector. The result never aliases another buffer.
func NewVec3() *Vec3 {
	return new(Vec3)
}

// X returns the x component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return Dot(v, other)
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return Length(v)
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float64 {
	return Distance(v, other)
}

// Dot returns a[0]*b[0] + a[1]*b[1] + a[2]*b[2].
func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Length returns the Euclidean norm of v.
func Length(v Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Distance returns the length of p2 - p1.
func Distance(p1, p2 Vec3) float64 {
	return Length(p2.Sub(p1))
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func ApproxEqual(a, b Vec3, eps float64) bool {
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}
	return true
}
