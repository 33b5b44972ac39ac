package geometry

import "math"

// Matrix is a 2D affine transform:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// Matrix is a plain value type; assignment copies it, so placements and
// callers never alias each other's transforms.
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Translation returns a transform that moves points by (dx, dy).
func Translation(dx, dy float64) Matrix {
	return Matrix{XX: 1, YY: 1, X0: dx, Y0: dy}
}

// Scaling returns a transform that scales points by (sx, sy).
func Scaling(sx, sy float64) Matrix {
	return Matrix{XX: sx, YY: sy}
}

// Rotation returns a transform that rotates points by rad radians around
// the origin.
func Rotation(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{XX: cos, YX: sin, XY: -sin, YY: cos}
}

// Mul returns the transform equivalent to applying m first, then other.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		XX: other.XX*m.XX + other.XY*m.YX,
		YX: other.YX*m.XX + other.YY*m.YX,
		XY: other.XX*m.XY + other.XY*m.YY,
		YY: other.YX*m.XY + other.YY*m.YY,
		X0: other.XX*m.X0 + other.XY*m.Y0 + other.X0,
		Y0: other.YX*m.X0 + other.YY*m.Y0 + other.Y0,
	}
}

// Translate returns m composed with a translation by (dx, dy).
func (m Matrix) Translate(dx, dy float64) Matrix {
	return Translation(dx, dy).Mul(m)
}

// IsIdentity returns true if m is (approximately) the identity transform.
func (m Matrix) IsIdentity() bool {
	return floatEqual(m.XX, 1) && floatEqual(m.YY, 1) &&
		floatEqual(m.XY, 0) && floatEqual(m.YX, 0) &&
		floatEqual(m.X0, 0) && floatEqual(m.Y0, 0)
}

// TransformPoint applies the transform to a single point.
func (m Matrix) TransformPoint(p Offset) Offset {
	return Offset{
		X: m.XX*p.X + m.XY*p.Y + m.X0,
		Y: m.YX*p.X + m.YY*p.Y + m.Y0,
	}
}

// TransformRect maps a rectangle through the transform and returns its
// axis-aligned bounding box in the target space. The result is exact for
// pure translation, scaling, and 90-degree rotation; for arbitrary
// rotations and shears it is an over-approximating bound.
func (m Matrix) TransformRect(r Rect) Rect {
	corners := [4]Offset{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Left, Y: r.Bottom},
		{X: r.Right, Y: r.Bottom},
	}
	first := m.TransformPoint(corners[0])
	out := Rect{Left: first.X, Top: first.Y, Right: first.X, Bottom: first.Y}
	for _, c := range corners[1:] {
		p := m.TransformPoint(c)
		out.Left = math.Min(out.Left, p.X)
		out.Top = math.Min(out.Top, p.Y)
		out.Right = math.Max(out.Right, p.X)
		out.Bottom = math.Max(out.Bottom, p.Y)
	}
	return out
}
