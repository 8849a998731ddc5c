package cad

import (
	"slices"
	"testing"
)

func TestEventOrder(t *testing.T) {
	var e Event[int]
	var got []string
	e.Subscribe(func(v int) { got = append(got, "a") })
	e.Subscribe(func(v int) { got = append(got, "b") })
	e.emit(1)

	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("handlers ran as %v, want [a b]", got)
	}
}

func TestEventUnsubscribe(t *testing.T) {
	var e Event[int]
	calls := 0
	unsub := e.Subscribe(func(int) { calls++ })
	e.emit(0)
	unsub()
	unsub()
	e.emit(0)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d, want 0", e.Len())
	}
}

func TestEventNilHandler(t *testing.T) {
	var e Event[string]
	unsub := e.Subscribe(nil)
	unsub()
	if e.Len() != 0 {
		t.Errorf("nil handler was registered")
	}
	e.emit("x")
}

func TestEventUnsubscribeDuringEmit(t *testing.T) {
	var e Event[int]
	calls := 0
	var unsub func()
	unsub = e.Subscribe(func(int) {
		calls++
		unsub()
	})
	e.Subscribe(func(int) { calls++ })

	e.emit(0)
	e.emit(0)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}
