// Package signal provides the named-signal object model widgets are built
// on: an Emitter registers signals by name and dispatches emissions to
// connected slots synchronously, in connection order.
//
// Emitters are single-threaded by contract. All connects, disconnects, and
// emissions happen on the event loop that drives the toolkit, so no locking
// is performed and an emission runs every slot to completion before
// returning to the emitter.
package signal

import "fmt"

// Slot is a callback connected to a signal. Arguments are whatever the
// emitter passed to EmitSignal.
type Slot func(args ...any)

// Connection identifies one connected slot so it can be disconnected later.
// The zero Connection is invalid and disconnecting it is a no-op.
type Connection struct {
	signal string
	id     uint64
}

// Signaler is the capability contract an object must satisfy to participate
// in the widget protocol: signal registration, subscription, unsubscription,
// and emission.
type Signaler interface {
	AddSignal(name string)
	ConnectSignal(name string, slot Slot) Connection
	DisconnectSignal(conn Connection)
	EmitSignal(name string, args ...any)
}

type slotEntry struct {
	id   uint64
	slot Slot
}

// Emitter implements Signaler. The zero value is ready to use; embed it in
// any type that needs to emit named signals.
type Emitter struct {
	signals map[string][]slotEntry
	nextID  uint64
}

var _ Signaler = (*Emitter)(nil)

// AddSignal registers a signal name on the emitter. Registering a name that
// already exists is a no-op.
func (e *Emitter) AddSignal(name string) {
	if e.signals == nil {
		e.signals = make(map[string][]slotEntry)
	}
	if _, ok := e.signals[name]; !ok {
		e.signals[name] = nil
	}
}

// HasSignal returns true if the signal name has been registered.
func (e *Emitter) HasSignal(name string) bool {
	_, ok := e.signals[name]
	return ok
}

// ConnectSignal appends a slot to the signal's dispatch list and returns a
// handle for disconnecting it. Slots run in the order they were connected.
// Connecting to an unregistered signal panics: it indicates a typo or a
// widget that never registered its signal set.
func (e *Emitter) ConnectSignal(name string, slot Slot) Connection {
	entries, ok := e.signals[name]
	if !ok {
		panic(fmt.Sprintf("signal: connect to unknown signal %q", name))
	}
	e.nextID++
	e.signals[name] = append(entries, slotEntry{id: e.nextID, slot: slot})
	return Connection{signal: name, id: e.nextID}
}

// DisconnectSignal removes the slot identified by conn. Disconnecting an
// already-disconnected or zero connection is a no-op.
func (e *Emitter) DisconnectSignal(conn Connection) {
	entries, ok := e.signals[conn.signal]
	if !ok {
		return
	}
	for i, entry := range entries {
		if entry.id == conn.id {
			e.signals[conn.signal] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// EmitSignal invokes every slot connected to the signal, in connection
// order, passing args through unchanged. Emitting an unregistered signal
// panics (programmer error).
func (e *Emitter) EmitSignal(name string, args ...any) {
	entries, ok := e.signals[name]
	if !ok {
		panic(fmt.Sprintf("signal: emit of unknown signal %q", name))
	}
	// Iterate a snapshot so a slot that connects or disconnects during
	// dispatch does not perturb this emission.
	for _, entry := range entries {
		entry.slot(args...)
	}
}
