package vecmath

import (
	"errors"
	"fmt"
	"math"
)

// Mat4 is a 4x4 matrix of 16 values. Element (row, col) lives at index
// row*4 + col.
//
//	[m0  m1  m2  m3 ]
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
//
// Transform treats the last row (m12..m14) as the translation and the
// last column (m3, m7, m11, m15) as the homogeneous w coefficients.
type Mat4 [16]float64

// ErrDegenerateMatrix is returned by TransformChecked when w is zero or
// within epsilon of zero.
var ErrDegenerateMatrix = errors.New("degenerate matrix")

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovY/2.0)
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[r*4+c]
}

// Row returns row r as four values.
func (m Mat4) Row(r int) [4]float64 {
	return [4]float64{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

// Transform maps the homogeneous point [v 1] through m, divides by the
// resulting w and writes the result to out. It returns out[2].
//
// A zero w is not trapped: the components become ±Inf or NaN. out may
// alias v.
func Transform(m *Mat4, v *Vec3, out *Vec3) float64 {
	x, y, z := v[0], v[1], v[2]
	w := x*m[3] + y*m[7] + z*m[11] + m[15]

	out[0] = (x*m[0] + y*m[4] + z*m[8] + m[12]) / w
	out[1] = (x*m[1] + y*m[5] + z*m[9] + m[13]) / w
	out[2] = (x*m[2] + y*m[6] + z*m[10] + m[14]) / w
	return out[2]
}

// TransformChecked is Transform that refuses a w within eps of zero.
// On error out is left untouched.
func TransformChecked(m *Mat4, v *Vec3, out *Vec3, eps float64) (float64, error) {
	w := v[0]*m[3] + v[1]*m[7] + v[2]*m[11] + m[15]
	if math.Abs(w) <= eps || math.IsNaN(w) {
		return 0, fmt.Errorf("%w: w=%g", ErrDegenerateMatrix, w)
	}
	return Transform(m, v, out), nil
}

// TransformPoint returns p transformed by m.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	var out Vec3
	Transform(&m, &p, &out)
	return out
}
