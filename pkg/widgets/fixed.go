package widgets

import "github.com/go-joist/joist/pkg/widget"

// Axis selects the direction a Fixed layout stacks its children in.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Fixed stacks children along one axis, giving each child its fitted
// extent along the axis and the full box across it. Children that no
// longer fit in the remaining space are dropped from the layout.
//
// Fit sums the children's extents along the axis and takes the maximum
// across it.
type Fixed struct {
	*widget.Base

	axis     Axis
	children []*widget.Base
}

// NewFixed creates a fixed layout stacking children along axis.
func NewFixed(axis Axis, children ...*widget.Base) *Fixed {
	f := &Fixed{
		Base:     widget.New(),
		axis:     axis,
		children: children,
	}
	f.FitFunc = f.fit
	f.LayoutFunc = f.layout
	for _, child := range children {
		f.watch(child)
	}
	return f
}

// Children returns the current child list.
func (f *Fixed) Children() []*widget.Base {
	return f.children
}

// AddChild appends a child and invalidates the layout.
func (f *Fixed) AddChild(child *widget.Base) {
	if child == nil {
		return
	}
	f.children = append(f.children, child)
	f.watch(child)
	f.EmitSignal(widget.SignalLayoutChanged)
}

func (f *Fixed) watch(child *widget.Base) {
	child.ConnectSignal(widget.SignalLayoutChanged, func(args ...any) {
		f.EmitSignal(widget.SignalLayoutChanged)
	})
	child.ConnectSignal(widget.SignalRedrawNeeded, func(args ...any) {
		f.EmitSignal(widget.SignalRedrawNeeded)
	})
}

func (f *Fixed) layout(width, height float64) []widget.Placement {
	placements := make([]widget.Placement, 0, len(f.children))
	var pos float64
	for _, child := range f.children {
		var remW, remH float64
		if f.axis == AxisHorizontal {
			remW, remH = width-pos, height
		} else {
			remW, remH = width, height-pos
		}
		if remW <= 0 || remH <= 0 {
			break
		}
		cw, ch := child.Fit(remW, remH)
		if f.axis == AxisHorizontal {
			placements = append(placements, widget.PlaceAt(child, pos, 0, cw, height))
			pos += cw
		} else {
			placements = append(placements, widget.PlaceAt(child, 0, pos, width, ch))
			pos += ch
		}
	}
	return placements
}

func (f *Fixed) fit(width, height float64) (float64, float64) {
	var along, across float64
	for _, child := range f.children {
		var cw, ch float64
		if f.axis == AxisHorizontal {
			cw, ch = child.Fit(width-along, height)
			along += cw
			if ch > across {
				across = ch
			}
		} else {
			cw, ch = child.Fit(width, height-along)
			along += ch
			if cw > across {
				across = cw
			}
		}
		if along >= widthOrHeight(f.axis, width, height) {
			break
		}
	}
	if f.axis == AxisHorizontal {
		return along, across
	}
	return across, along
}

func widthOrHeight(axis Axis, width, height float64) float64 {
	if axis == AxisHorizontal {
		return width
	}
	return height
}
