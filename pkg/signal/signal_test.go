package signal

import "testing"

func TestEmitter_DispatchInConnectionOrder(t *testing.T) {
	var e Emitter
	e.AddSignal("changed")

	var order []int
	e.ConnectSignal("changed", func(args ...any) { order = append(order, 1) })
	e.ConnectSignal("changed", func(args ...any) { order = append(order, 2) })
	e.ConnectSignal("changed", func(args ...any) { order = append(order, 3) })

	e.EmitSignal("changed")

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("dispatch order = %v, want [1 2 3]", order)
	}
}

func TestEmitter_ArgumentsPassThrough(t *testing.T) {
	var e Emitter
	e.AddSignal("press")

	var got []any
	e.ConnectSignal("press", func(args ...any) { got = args })
	e.EmitSignal("press", 42, "shift")

	if len(got) != 2 || got[0] != 42 || got[1] != "shift" {
		t.Errorf("args = %v, want [42 shift]", got)
	}
}

func TestEmitter_Disconnect(t *testing.T) {
	var e Emitter
	e.AddSignal("changed")

	count := 0
	conn := e.ConnectSignal("changed", func(args ...any) { count++ })
	e.EmitSignal("changed")
	e.DisconnectSignal(conn)
	e.EmitSignal("changed")

	if count != 1 {
		t.Errorf("slot ran %d times, want 1", count)
	}

	// Stale and zero connections are no-ops.
	e.DisconnectSignal(conn)
	e.DisconnectSignal(Connection{})
}

func TestEmitter_AddSignalIdempotent(t *testing.T) {
	var e Emitter
	e.AddSignal("changed")

	count := 0
	e.ConnectSignal("changed", func(args ...any) { count++ })
	e.AddSignal("changed") // must not drop existing slots
	e.EmitSignal("changed")

	if count != 1 {
		t.Errorf("slot ran %d times, want 1", count)
	}
}

func TestEmitter_EmitUnknownSignalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown signal emission")
		}
	}()
	var e Emitter
	e.EmitSignal("nope")
}

func TestEmitter_ConnectUnknownSignalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown signal connection")
		}
	}()
	var e Emitter
	e.ConnectSignal("nope", func(args ...any) {})
}

func TestEmitter_DisconnectDuringEmitDoesNotSkipSlots(t *testing.T) {
	var e Emitter
	e.AddSignal("changed")

	var ran []string
	var first Connection
	first = e.ConnectSignal("changed", func(args ...any) {
		ran = append(ran, "first")
		e.DisconnectSignal(first)
	})
	e.ConnectSignal("changed", func(args ...any) { ran = append(ran, "second") })

	e.EmitSignal("changed")

	if len(ran) != 2 || ran[0] != "first" || ran[1] != "second" {
		t.Errorf("ran = %v, want [first second]", ran)
	}
}
