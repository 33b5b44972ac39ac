package geometry

import (
	"math"
	"testing"
)

func rectNear(t *testing.T, got, want Rect) {
	t.Helper()
	if !floatEqual(got.Left, want.Left) || !floatEqual(got.Top, want.Top) ||
		!floatEqual(got.Right, want.Right) || !floatEqual(got.Bottom, want.Bottom) {
		t.Errorf("rect = %+v, want %+v", got, want)
	}
}

func TestMatrix_TransformRectTranslation(t *testing.T) {
	m := Translation(10, 20)
	got := m.TransformRect(RectFromLTWH(0, 0, 5, 7))
	rectNear(t, got, RectFromLTWH(10, 20, 5, 7))
}

func TestMatrix_TransformRectScale(t *testing.T) {
	m := Scaling(2, 3)
	got := m.TransformRect(RectFromLTWH(1, 1, 4, 4))
	rectNear(t, got, RectFromLTWH(2, 3, 8, 12))
}

// A quarter turn keeps the bounding box exact: a 4x2 rect becomes 2x4.
func TestMatrix_TransformRectQuarterTurn(t *testing.T) {
	m := Rotation(math.Pi / 2)
	got := m.TransformRect(RectFromLTWH(0, 0, 4, 2))
	rectNear(t, got, Rect{Left: -2, Top: 0, Right: 0, Bottom: 4})
}

// An arbitrary rotation must produce a bound that contains the true shape,
// so the box grows rather than shrinks.
func TestMatrix_TransformRectArbitraryRotationOverApproximates(t *testing.T) {
	m := Rotation(math.Pi / 4)
	got := m.TransformRect(RectFromLTWH(0, 0, 2, 2))
	side := 2 * math.Sqrt2
	if !floatEqual(got.Width(), side) || !floatEqual(got.Height(), side) {
		t.Errorf("bounding box = %vx%v, want %vx%v", got.Width(), got.Height(), side, side)
	}
}

func TestMatrix_MulComposesInOrder(t *testing.T) {
	// Scale first, then translate.
	m := Scaling(2, 2).Mul(Translation(1, 1))
	got := m.TransformPoint(Offset{X: 3, Y: 4})
	if !floatEqual(got.X, 7) || !floatEqual(got.Y, 9) {
		t.Errorf("point = %+v, want {7 9}", got)
	}
}

func TestMatrix_IsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity() should report IsIdentity")
	}
	if Translation(1, 0).IsIdentity() {
		t.Error("translation should not report IsIdentity")
	}
	if !Rotation(0).IsIdentity() {
		t.Error("zero rotation should report IsIdentity")
	}
}

func TestRect_Union(t *testing.T) {
	a := RectFromLTWH(0, 0, 2, 2)
	b := RectFromLTWH(5, 5, 1, 1)
	rectNear(t, a.Union(b), Rect{Left: 0, Top: 0, Right: 6, Bottom: 6})
}
