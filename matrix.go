package ggchart

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// In chart terms A is the x scale, E the y scale, C the x translation
// and F the y translation. Matrices are values: every operation returns
// a new Matrix and never mutates the receiver.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-10

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// ScaleAt creates a scaling matrix that keeps the pivot (px, py) fixed.
func ScaleAt(sx, sy, px, py float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: px - sx*px,
		D: 0, E: sy, F: py - sy*py,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PostConcat returns other * m: m is applied first, then other.
func (m Matrix) PostConcat(other Matrix) Matrix {
	return other.Multiply(m)
}

// PostTranslate returns m followed by a translation of (dx, dy).
func (m Matrix) PostTranslate(dx, dy float64) Matrix {
	m.C += dx
	m.F += dy
	return m
}

// PostScale returns m followed by a scale of (sx, sy) about the origin.
func (m Matrix) PostScale(sx, sy float64) Matrix {
	return Scale(sx, sy).Multiply(m)
}

// PostScaleAt returns m followed by a scale of (sx, sy) about (px, py).
func (m Matrix) PostScaleAt(sx, sy, px, py float64) Matrix {
	return ScaleAt(sx, sy, px, py).Multiply(m)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// MapPoints transforms pts in place. The buffer is read as interleaved
// x, y pairs; a trailing odd element is left untouched.
func (m Matrix) MapPoints(pts []float64) {
	for i := 0; i+1 < len(pts); i += 2 {
		x, y := pts[i], pts[i+1]
		pts[i] = m.A*x + m.B*y + m.C
		pts[i+1] = m.D*x + m.E*y + m.F
	}
}

// MapRect transforms the four corners of r and returns their bounding
// rectangle, sorted so that Left <= Right and Top <= Bottom.
func (m Matrix) MapRect(r Rect) Rect {
	p0 := m.TransformPoint(Pt(r.Left, r.Top))
	p1 := m.TransformPoint(Pt(r.Right, r.Top))
	p2 := m.TransformPoint(Pt(r.Right, r.Bottom))
	p3 := m.TransformPoint(Pt(r.Left, r.Bottom))
	return Rect{
		Left:   math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X)),
		Top:    math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y)),
		Right:  math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X)),
		Bottom: math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y)),
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsInvertible reports whether Invert would produce a real inverse.
func (m Matrix) IsInvertible() bool {
	det := m.Determinant()
	return math.Abs(det) >= singularEpsilon && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible, so a
// degenerate transform never leaks NaN into pixel math.
func (m Matrix) Invert() Matrix {
	if !m.IsInvertible() {
		return Identity()
	}

	invDet := 1.0 / m.Determinant()
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsFinite reports whether every component is a finite number.
func (m Matrix) IsFinite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ScaleX returns the x scale component.
func (m Matrix) ScaleX() float64 { return m.A }

// ScaleY returns the y scale component.
func (m Matrix) ScaleY() float64 { return m.E }

// TransX returns the x translation component.
func (m Matrix) TransX() float64 { return m.C }

// TransY returns the y translation component.
func (m Matrix) TransY() float64 { return m.F }

// WithScaleTrans returns m with its scale and translation components
// replaced. Skew components are preserved.
func (m Matrix) WithScaleTrans(scaleX, scaleY, transX, transY float64) Matrix {
	m.A = scaleX
	m.E = scaleY
	m.C = transX
	m.F = transY
	return m
}

// Aff3 converts m into the golang.org/x/image affine representation.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// MatrixFromAff3 converts an x/image affine matrix into a Matrix.
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{
		A: a[0], B: a[1], C: a[2],
		D: a[3], E: a[4], F: a[5],
	}
}
