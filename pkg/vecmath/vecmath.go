// Package vecmath has the small geometric value types the scripting
// language knows about: four component points, axis-angles, quaternions
// and 3x3 / 4x4 matrices. Each knows how to print itself as a literal.
// Three component points are cmmn.Xyz.
package vecmath

import (
	"strings"

	"github.com/andrew-torda/molscript/pkg/cmmn"
)

// P4 is a four component point.
type P4 struct{ X, Y, Z, W float32 }

// A4 is a rotation axis and an angle in radians.
type A4 struct{ X, Y, Z, Angle float32 }

// Quat is a quaternion. Q0 is the scalar part.
type Quat struct{ Q0, Q1, Q2, Q3 float32 }

// M3 is a 3x3 matrix, row major.
type M3 [3][3]float32

// M4 is a 4x4 matrix, row major.
type M4 [4][4]float32

// NewM3 fills a matrix from nine values in row major order.
func NewM3(a []float32) (m M3) {
	for i := range m {
		copy(m[i][:], a[i*3:i*3+3])
	}
	return m
}

// NewM4 fills a matrix from sixteen values in row major order.
func NewM4(a []float32) (m M4) {
	for i := range m {
		copy(m[i][:], a[i*4:i*4+4])
	}
	return m
}

// Identity3 is the 3x3 unit matrix.
func Identity3() M3 { return M3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Identity4 is the 4x4 unit matrix.
func Identity4() M4 { return M4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}} }

// spaced joins numbers with a separator, each number printed the
// script way.
func spaced(sep string, f ...float32) string {
	var sb strings.Builder
	for i, x := range f {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(FormatFloat(x))
	}
	return sb.String()
}

func (p P4) String() string { return "{" + spaced(" ", p.X, p.Y, p.Z, p.W) + "}" }

// String gives the vector part first, then the scalar.
func (q Quat) String() string { return "{" + spaced(" ", q.Q1, q.Q2, q.Q3, q.Q0) + "}" }

// rows prints a square matrix with tabs between columns, one row per line.
func rows(r [][]float32) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, row := range r {
		sb.WriteString("\n  [")
		sb.WriteString(spaced("\t", row...))
		sb.WriteString("]")
		if i == len(r)-1 {
			sb.WriteString(" ]")
		}
	}
	return sb.String()
}

func (m M3) String() string { return rows([][]float32{m[0][:], m[1][:], m[2][:]}) }
func (m M4) String() string {
	return rows([][]float32{m[0][:], m[1][:], m[2][:], m[3][:]})
}

// Matrix returns the rotation matrix for a unit quaternion.
func (q Quat) Matrix() M3 {
	q0, q1, q2, q3 := q.Q0, q.Q1, q.Q2, q.Q3
	return M3{
		{q0*q0 + q1*q1 - q2*q2 - q3*q3, 2 * (q1*q2 - q0*q3), 2 * (q1*q3 + q0*q2)},
		{2 * (q1*q2 + q0*q3), q0*q0 - q1*q1 + q2*q2 - q3*q3, 2 * (q2*q3 - q0*q1)},
		{2 * (q1*q3 - q0*q2), 2 * (q2*q3 + q0*q1), q0*q0 - q1*q1 - q2*q2 + q3*q3},
	}
}

// VectorScaled gives column i (0, 1 or 2) of the rotation matrix,
// multiplied by scale. These are the rotated x, y and z axes.
func (q Quat) VectorScaled(i int, scale float32) cmmn.Xyz {
	m := q.Matrix()
	return cmmn.Xyz{X: m[0][i] * scale, Y: m[1][i] * scale, Z: m[2][i] * scale}
}
