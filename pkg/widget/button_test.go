package widget

import "testing"

func TestHandleButton_AllMatchesFire(t *testing.T) {
	b1 := NewButton(1)
	b2 := NewButton(0, AnyModifier)
	w := New()
	w.SetButtons([]*Button{b1, b2})

	var fired []string
	b1.ConnectSignal("press", func(args ...any) { fired = append(fired, "b1") })
	b2.ConnectSignal("press", func(args ...any) { fired = append(fired, "b2") })

	HandleButton("press", w, 0, 0, 1, nil, nil)

	if len(fired) != 2 || fired[0] != "b1" || fired[1] != "b2" {
		t.Errorf("fired = %v, want both b1 and b2", fired)
	}
}

func TestHandleButton_NoMatch(t *testing.T) {
	b1 := NewButton(1)
	w := New()
	w.SetButtons([]*Button{b1})

	fired := 0
	b1.ConnectSignal("press", func(args ...any) { fired++ })

	HandleButton("press", w, 0, 0, 2, []string{"Shift"}, nil)

	if fired != 0 {
		t.Errorf("binding for button 1 fired on (button=2, Shift), want no match")
	}
}

func TestHandleButton_GeometryPayloadPassesThrough(t *testing.T) {
	b := NewButton(1)
	w := New()
	w.SetButtons([]*Button{b})

	type geo struct{ x, y int }
	want := geo{x: 3, y: 4}

	var got any
	b.ConnectSignal("release", func(args ...any) {
		if len(args) > 0 {
			got = args[0]
		}
	})

	HandleButton("release", w, 0, 0, 1, nil, want)

	if got != want {
		t.Errorf("payload = %v, want %v", got, want)
	}
}

func TestButton_ModifierMatching(t *testing.T) {
	exact := NewButton(1, "Shift", "Control")
	if !exact.Matches(1, []string{"Control", "Shift"}) {
		t.Error("set equality should ignore order")
	}
	if exact.Matches(1, []string{"Shift"}) {
		t.Error("subset must not match")
	}
	if exact.Matches(1, []string{"Shift", "Control", "Mod4"}) {
		t.Error("superset must not match")
	}
	if exact.Matches(2, []string{"Control", "Shift"}) {
		t.Error("wrong button code must not match")
	}

	wildcard := NewButton(0, AnyModifier)
	if !wildcard.Matches(5, []string{"Mod4"}) || !wildcard.Matches(1, nil) {
		t.Error("wildcard binding should match any button and modifiers")
	}

	bare := NewButton(1)
	if !bare.Matches(1, nil) {
		t.Error("empty modifier set should match an event with no modifiers")
	}
	if bare.Matches(1, []string{"Shift"}) {
		t.Error("empty modifier set must not match a modified event")
	}
}

func TestWidget_DefaultHandlersDispatchPointerSignals(t *testing.T) {
	b := NewButton(1)
	w := New()
	w.SetButtons([]*Button{b})

	var events []string
	b.ConnectSignal("press", func(args ...any) { events = append(events, "press") })
	b.ConnectSignal("release", func(args ...any) { events = append(events, "release") })

	w.EmitSignal(SignalButtonPress, 10.0, 20.0, 1, []string(nil), "geometry")
	w.EmitSignal(SignalButtonRelease, 10.0, 20.0, 1, []string(nil), "geometry")

	if len(events) != 2 || events[0] != "press" || events[1] != "release" {
		t.Errorf("events = %v, want [press release]", events)
	}
}

func TestWidget_BindingListReReadPerEvent(t *testing.T) {
	w := New()
	b1 := NewButton(1)
	w.SetButtons([]*Button{b1})

	fired := 0
	b1.ConnectSignal("press", func(args ...any) { fired++ })

	w.EmitSignal(SignalButtonPress, 0.0, 0.0, 1, []string(nil), nil)

	// Replacing the list takes effect for the next event with no caching.
	w.SetButtons(nil)
	w.EmitSignal(SignalButtonPress, 0.0, 0.0, 1, []string(nil), nil)

	if fired != 1 {
		t.Errorf("binding fired %d times, want 1 after replacement", fired)
	}
}

func TestWidget_UpdatedAliasRefiresBothSignals(t *testing.T) {
	w := New()
	var got []string
	w.ConnectSignal(SignalLayoutChanged, func(args ...any) { got = append(got, "layout") })
	w.ConnectSignal(SignalRedrawNeeded, func(args ...any) { got = append(got, "redraw") })

	w.EmitSignal(SignalUpdated)

	if len(got) != 2 || got[0] != "layout" || got[1] != "redraw" {
		t.Errorf("updated alias fired %v, want [layout redraw]", got)
	}
}
