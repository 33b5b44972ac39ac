// Package widget provides the base object every widget in the toolkit is
// built from: a named-signal emitter carrying the widget signal set,
// optional fit/layout capabilities with memoized results, button bindings
// with pointer dispatch, and placement descriptors for child positioning.
//
// Widgets are single-threaded: all fit/layout queries, cache operations,
// and signal emissions run synchronously on the event loop.
package widget

import (
	"fmt"

	"github.com/go-joist/joist/pkg/signal"
)

// Signal names registered on every widget.
const (
	// SignalLayoutChanged announces that the widget's geometry inputs
	// changed; emitting it discards the widget's fit and layout caches.
	SignalLayoutChanged = "widget::layout_changed"
	// SignalRedrawNeeded announces that the widget must be repainted
	// without any geometry change.
	SignalRedrawNeeded = "widget::redraw_needed"
	// SignalButtonPress and SignalButtonRelease carry pointer button
	// events: (x, y, button, modifiers, geometry).
	SignalButtonPress   = "button::press"
	SignalButtonRelease = "button::release"
	// SignalMouseEnter and SignalMouseLeave track pointer crossing.
	SignalMouseEnter = "mouse::enter"
	SignalMouseLeave = "mouse::leave"

	// SignalUpdated is a deprecated compatibility alias: emitting it
	// re-fires SignalLayoutChanged followed by SignalRedrawNeeded.
	//
	// Deprecated: emit SignalLayoutChanged and SignalRedrawNeeded directly.
	SignalUpdated = "widget::updated"
)

// FitFunc reports the size a widget wants inside an available box.
type FitFunc func(width, height float64) (float64, float64)

// LayoutFunc places a widget's children inside an available box.
type LayoutFunc func(width, height float64) []Placement

// Base is the signal-bearing widget object. The FitFunc and LayoutFunc
// capabilities are optional: a widget without them has no children and
// fits (0, 0).
//
// Create a Base with New, NewProxy, or Empty; the zero value has no signal
// set or caches and is not usable.
type Base struct {
	signal.Emitter

	// FitFunc, when set, computes the widget's wanted size. Queried
	// through Fit, which sanitizes inputs, caches, and clamps the result.
	FitFunc FitFunc
	// LayoutFunc, when set, computes child placements. Queried through
	// Layout, which sanitizes inputs and caches.
	LayoutFunc LayoutFunc

	buttons     []*Button
	fitCache    map[sizeKey]fitResult
	layoutCache map[sizeKey][]Placement
}

// New allocates a widget with the mandatory signal set, an empty button
// binding list, default pointer dispatch handlers, and fresh caches wired
// to clear on SignalLayoutChanged.
func New() *Base {
	w := &Base{}
	w.fitCache = make(map[sizeKey]fitResult)
	w.layoutCache = make(map[sizeKey][]Placement)

	w.AddSignal(SignalLayoutChanged)
	w.AddSignal(SignalRedrawNeeded)
	w.AddSignal(SignalButtonPress)
	w.AddSignal(SignalButtonRelease)
	w.AddSignal(SignalMouseEnter)
	w.AddSignal(SignalMouseLeave)
	w.AddSignal(SignalUpdated)

	// Cache clearing is connected first so it always runs before any
	// observer connected later in the same emission.
	w.ConnectSignal(SignalLayoutChanged, func(args ...any) {
		w.invalidateCaches()
	})
	w.ConnectSignal(SignalUpdated, func(args ...any) {
		w.EmitSignal(SignalLayoutChanged)
		w.EmitSignal(SignalRedrawNeeded)
	})
	w.ConnectSignal(SignalButtonPress, func(args ...any) {
		x, y, button, mods, geo := buttonEventArgs(args)
		HandleButton("press", w, x, y, button, mods, geo)
	})
	w.ConnectSignal(SignalButtonRelease, func(args ...any) {
		x, y, button, mods, geo := buttonEventArgs(args)
		HandleButton("release", w, x, y, button, mods, geo)
	})
	return w
}

// NewProxy allocates a widget whose fit and layout forward to target's
// cached fit and layout. To its own container the proxy looks like one
// opaque child: its layout yields a single placement wrapping target at
// the identity transform covering the full box, not target's child list.
// SignalLayoutChanged and SignalRedrawNeeded emitted on target are
// re-emitted on the proxy.
func NewProxy(target *Base) *Base {
	w := New()
	w.FitFunc = target.Fit
	w.LayoutFunc = func(width, height float64) []Placement {
		return []Placement{PlaceAt(target, 0, 0, width, height)}
	}
	target.ConnectSignal(SignalLayoutChanged, func(args ...any) {
		w.EmitSignal(SignalLayoutChanged)
	})
	target.ConnectSignal(SignalRedrawNeeded, func(args ...any) {
		w.EmitSignal(SignalRedrawNeeded)
	})
	return w
}

// Empty returns a widget with no fit or layout capability and no children.
// It reports (0, 0) for any fit query.
func Empty() *Base {
	return New()
}

// Check validates that candidate satisfies the signal capability contract
// (registration, connection, disconnection, emission). It panics if any
// capability is absent; callers are not expected to recover, this signals
// a programming error.
func Check(candidate any) {
	if candidate == nil {
		panic("widget: Check called with nil candidate")
	}
	if _, ok := candidate.(signal.Signaler); !ok {
		panic(fmt.Sprintf("widget: %T does not satisfy the widget signal contract "+
			"(AddSignal/ConnectSignal/DisconnectSignal/EmitSignal)", candidate))
	}
}

// Buttons returns the widget's current button binding list.
func (w *Base) Buttons() []*Button {
	return w.buttons
}

// SetButtons replaces the widget's button binding list and returns it.
func (w *Base) SetButtons(buttons []*Button) []*Button {
	w.buttons = buttons
	return w.buttons
}

// buttonEventArgs unpacks a pointer signal payload
// (x, y, button, modifiers, geometry). Missing or mistyped positions fall
// back to zero values so partial payloads degrade instead of crashing.
func buttonEventArgs(args []any) (x, y float64, button int, modifiers []string, geometry any) {
	if len(args) > 0 {
		x, _ = args[0].(float64)
	}
	if len(args) > 1 {
		y, _ = args[1].(float64)
	}
	if len(args) > 2 {
		button, _ = args[2].(int)
	}
	if len(args) > 3 {
		modifiers, _ = args[3].([]string)
	}
	if len(args) > 4 {
		geometry = args[4]
	}
	return x, y, button, modifiers, geometry
}
