package event

import "github.com/google/uuid"

// Listener receives a dispatched signal
type Listener func(Event)

// Subscription identifies one registered listener, returned by On and Once
type Subscription struct {
	Type Type
	ID   uuid.UUID
}

// Valid reports whether the subscription refers to a registration
func (s Subscription) Valid() bool {
	return s.ID != uuid.Nil
}

type listenerEntry struct {
	id   uuid.UUID
	fn   Listener
	once bool
}

// Emitter dispatches signals to registered listeners
//
// Architecture:
//   - Single-threaded dispatch, no locking; callers share one execution context
//   - Listeners run in registration order
//   - A listener added or removed during Emit takes effect from the next Emit
type Emitter struct {
	listeners [typeCount][]listenerEntry
}

// NewEmitter creates an emitter with no listeners
func NewEmitter() *Emitter {
	return &Emitter{}
}

// On registers fn for every signal of type t
func (e *Emitter) On(t Type, fn Listener) Subscription {
	return e.add(t, fn, false)
}

// Once registers fn for the next signal of type t only
func (e *Emitter) Once(t Type, fn Listener) Subscription {
	return e.add(t, fn, true)
}

func (e *Emitter) add(t Type, fn Listener, once bool) Subscription {
	if t >= typeCount || fn == nil {
		return Subscription{}
	}
	id := uuid.New()
	e.listeners[t] = append(e.listeners[t], listenerEntry{id: id, fn: fn, once: once})
	return Subscription{Type: t, ID: id}
}

// Off removes a registration, returns false if it was not registered
func (e *Emitter) Off(sub Subscription) bool {
	if sub.Type >= typeCount || !sub.Valid() {
		return false
	}
	entries := e.listeners[sub.Type]
	for i, entry := range entries {
		if entry.id == sub.ID {
			e.listeners[sub.Type] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// OffType removes every listener of type t, returns how many were removed
func (e *Emitter) OffType(t Type) int {
	if t >= typeCount {
		return 0
	}
	n := len(e.listeners[t])
	e.listeners[t] = nil
	return n
}

// Count returns the number of listeners registered for t
func (e *Emitter) Count(t Type) int {
	if t >= typeCount {
		return 0
	}
	return len(e.listeners[t])
}

// Emit dispatches ev to the listeners of ev.Type
// Once-listeners are unregistered before they run
func (e *Emitter) Emit(ev Event) {
	if ev.Type >= typeCount {
		return
	}
	entries := e.listeners[ev.Type]
	if len(entries) == 0 {
		return
	}

	// Snapshot so listeners may subscribe/unsubscribe while being called
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)

	kept := entries[:0:0]
	for _, entry := range entries {
		if !entry.once {
			kept = append(kept, entry)
		}
	}
	if len(kept) != len(entries) {
		e.listeners[ev.Type] = kept
	}

	for _, entry := range snapshot {
		entry.fn(ev)
	}
}
