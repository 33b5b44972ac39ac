package widgets

import (
	"math"

	"github.com/go-joist/joist/pkg/widget"
)

// Margin insets a single child by per-side margins.
//
// The child is placed translated by (Left, Top) and given the box that
// remains after the margins are subtracted. Fit adds the margins back to
// the child's fitted size. Without a child, Margin fits the margins
// themselves. The child's widget::layout_changed propagates to the
// container so stale cached layouts are never served.
type Margin struct {
	*widget.Base

	child                    *widget.Base
	left, right, top, bottom float64
}

// NewMargin creates a margin container around child. A nil child is
// allowed and produces an empty inset box.
func NewMargin(child *widget.Base, left, right, top, bottom float64) *Margin {
	m := &Margin{
		Base:   widget.New(),
		child:  child,
		left:   left,
		right:  right,
		top:    top,
		bottom: bottom,
	}
	m.FitFunc = m.fit
	m.LayoutFunc = m.layout
	if child != nil {
		child.ConnectSignal(widget.SignalLayoutChanged, func(args ...any) {
			m.EmitSignal(widget.SignalLayoutChanged)
		})
		child.ConnectSignal(widget.SignalRedrawNeeded, func(args ...any) {
			m.EmitSignal(widget.SignalRedrawNeeded)
		})
	}
	return m
}

// SetMargins replaces all four margins.
func (m *Margin) SetMargins(left, right, top, bottom float64) {
	if m.left == left && m.right == right && m.top == top && m.bottom == bottom {
		return
	}
	m.left, m.right, m.top, m.bottom = left, right, top, bottom
	m.EmitSignal(widget.SignalLayoutChanged)
}

func (m *Margin) inner(width, height float64) (float64, float64) {
	return math.Max(0, width-m.left-m.right), math.Max(0, height-m.top-m.bottom)
}

func (m *Margin) fit(width, height float64) (float64, float64) {
	if m.child == nil {
		return m.left + m.right, m.top + m.bottom
	}
	iw, ih := m.inner(width, height)
	cw, ch := m.child.Fit(iw, ih)
	return cw + m.left + m.right, ch + m.top + m.bottom
}

func (m *Margin) layout(width, height float64) []widget.Placement {
	if m.child == nil {
		return nil
	}
	iw, ih := m.inner(width, height)
	return []widget.Placement{widget.PlaceAt(m.child, m.left, m.top, iw, ih)}
}
