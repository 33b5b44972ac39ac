package widget

import "github.com/go-joist/joist/pkg/signal"

// AnyModifier is the wildcard modifier: a binding whose modifier set is
// exactly {AnyModifier} matches every incoming modifier combination.
const AnyModifier = "Any"

// A Button binds a pointer button code plus a modifier set to its own
// signal emitter. Many bindings can attach to one widget; every binding
// whose predicate matches an incoming event fires, with no first-match
// short-circuit.
type Button struct {
	signal.Emitter

	// Code is the pointer button code; 0 matches any button.
	Code int
	// Modifiers is the modifier set the event must equal, or the
	// singleton {AnyModifier} to match any set.
	Modifiers []string
}

// NewButton builds a binding for the given button code and modifiers, with
// its press and release signals registered.
func NewButton(code int, modifiers ...string) *Button {
	b := &Button{Code: code, Modifiers: modifiers}
	b.AddSignal("press")
	b.AddSignal("release")
	return b
}

// Matches reports whether the binding's predicate accepts an event with
// the given button code and modifier set.
func (b *Button) Matches(code int, modifiers []string) bool {
	if b.Code != 0 && b.Code != code {
		return false
	}
	return modifiersMatch(b.Modifiers, modifiers)
}

// modifiersMatch compares the binding's modifier set against the event's.
// The wildcard {AnyModifier} accepts anything; otherwise the sets must be
// equal, ignoring order and duplicates.
func modifiersMatch(binding, event []string) bool {
	if len(binding) == 1 && binding[0] == AnyModifier {
		return true
	}
	want := make(map[string]bool, len(binding))
	for _, m := range binding {
		want[m] = true
	}
	got := make(map[string]bool, len(event))
	for _, m := range event {
		got[m] = true
	}
	if len(want) != len(got) {
		return false
	}
	for m := range want {
		if !got[m] {
			return false
		}
	}
	return true
}

// HandleButton scans the widget's current binding list and emits eventName
// on every binding whose predicate matches the incoming event, passing
// geometry through as the payload. The binding list is re-read on every
// event and all matches fire; observers of the binding's signal decide
// what happens next.
func HandleButton(eventName string, w *Base, x, y float64, button int, modifiers []string, geometry any) {
	for _, binding := range w.Buttons() {
		if binding.Matches(button, modifiers) {
			binding.EmitSignal(eventName, geometry)
		}
	}
}
