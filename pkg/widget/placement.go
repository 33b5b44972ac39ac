package widget

import "github.com/go-joist/joist/pkg/geometry"

// rectLTWH mirrors geometry.RectFromLTWH for local use.
func rectLTWH(left, top, width, height float64) geometry.Rect {
	return geometry.RectFromLTWH(left, top, width, height)
}

// Placement describes where a child widget sits in its parent's coordinate
// space: a shared reference to the child, the box given to it, and the
// transform from child to parent coordinates. Placements are values
// produced by a widget's layout step; they live only as long as the layout
// result that contains them.
type Placement struct {
	Widget    *Base
	Width     float64
	Height    float64
	Transform geometry.Matrix
}

// PlaceViaMatrix builds a placement for child with the given transform and
// box. Matrix is a value type, so the caller's transform is copied, never
// aliased into the descriptor.
func PlaceViaMatrix(child *Base, m geometry.Matrix, width, height float64) Placement {
	return Placement{
		Widget:    child,
		Width:     width,
		Height:    height,
		Transform: m,
	}
}

// PlaceAt builds a placement for child at (x, y) with the given box, using
// a pure-translation transform.
func PlaceAt(child *Base, x, y, width, height float64) Placement {
	return PlaceViaMatrix(child, geometry.Translation(x, y), width, height)
}
