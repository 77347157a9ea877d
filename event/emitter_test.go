package event

import (
	"testing"

	"github.com/lixenwraith/antborder/geom"
)

func TestEmitterOrderAndPayload(t *testing.T) {
	e := NewEmitter()
	var order []int

	e.On(Change, func(ev Event) {
		order = append(order, 1)
		if ev.Change.Current.Width != 370 {
			t.Errorf("Current.Width = %v, want 370", ev.Change.Current.Width)
		}
	})
	e.On(Change, func(Event) { order = append(order, 2) })
	e.On(Drag, func(Event) { order = append(order, 99) })

	e.Emit(Event{Type: Change, Change: ChangePayload{Current: geom.Rect{Width: 370}}})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("dispatch order = %v, want [1 2]", order)
	}
}

func TestEmitterOnce(t *testing.T) {
	e := NewEmitter()
	calls := 0
	e.Once(DragStart, func(Event) { calls++ })

	e.Emit(Event{Type: DragStart})
	e.Emit(Event{Type: DragStart})

	if calls != 1 {
		t.Errorf("once listener called %d times, want 1", calls)
	}
	if got := e.Count(DragStart); got != 0 {
		t.Errorf("Count after once = %d, want 0", got)
	}
}

func TestEmitterOff(t *testing.T) {
	e := NewEmitter()
	calls := 0
	sub := e.On(DragEnd, func(Event) { calls++ })
	other := e.On(DragEnd, func(Event) {})

	if !e.Off(sub) {
		t.Fatal("Off returned false for a registered subscription")
	}
	if e.Off(sub) {
		t.Error("second Off returned true")
	}

	e.Emit(Event{Type: DragEnd})
	if calls != 0 {
		t.Errorf("removed listener called %d times", calls)
	}
	if got := e.Count(DragEnd); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}

	if got := e.OffType(DragEnd); got != 1 {
		t.Errorf("OffType = %d, want 1", got)
	}
	if e.Off(other) {
		t.Error("Off after OffType returned true")
	}
}

func TestEmitterRejectsInvalid(t *testing.T) {
	e := NewEmitter()
	if sub := e.On(Type(200), func(Event) {}); sub.Valid() {
		t.Error("On accepted an unknown type")
	}
	if sub := e.On(Drag, nil); sub.Valid() {
		t.Error("On accepted a nil listener")
	}
	if e.Off(Subscription{}) {
		t.Error("Off accepted a zero subscription")
	}
	e.Emit(Event{Type: Type(200)})
}

func TestEmitterMutationDuringEmit(t *testing.T) {
	e := NewEmitter()
	late := 0
	var first Subscription
	first = e.On(Drag, func(Event) {
		e.Off(first)
		e.On(Drag, func(Event) { late++ })
	})

	e.Emit(Event{Type: Drag})
	if late != 0 {
		t.Errorf("listener added during Emit ran in the same Emit")
	}

	e.Emit(Event{Type: Drag})
	if late != 1 {
		t.Errorf("late listener calls = %d, want 1", late)
	}
}

func TestTypeNames(t *testing.T) {
	for _, tt := range []struct {
		typ  Type
		name string
	}{
		{DragStart, "dragstart"},
		{Drag, "drag"},
		{DragEnd, "dragend"},
		{Change, "change"},
	} {
		if got := tt.typ.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got, ok := ParseType(tt.name); !ok || got != tt.typ {
			t.Errorf("ParseType(%q) = %v, %v", tt.name, got, ok)
		}
	}
}
