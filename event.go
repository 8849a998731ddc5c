package cad

// Event is a list of handlers invoked synchronously, in subscription order,
// on the goroutine that raises it.
//
// The zero value is ready to use. Events are not safe for concurrent use;
// the scene core is single-threaded.
type Event[T any] struct {
	nextID   uint64
	handlers []handler[T]
}

type handler[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, handler[T]{id: id, fn: fn})
	return func() { e.remove(id) }
}

// Len returns the number of subscribed handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

func (e *Event[T]) remove(id uint64) {
	for i, h := range e.handlers {
		if h.id == id {
			// Copy so an emit in progress keeps iterating its own snapshot.
			hs := make([]handler[T], 0, len(e.handlers)-1)
			hs = append(hs, e.handlers[:i]...)
			e.handlers = append(hs, e.handlers[i+1:]...)
			return
		}
	}
}

func (e *Event[T]) emit(v T) {
	for _, h := range e.handlers {
		h.fn(v)
	}
}

// ValueChange carries the previous and the current value of a property.
type ValueChange[T any] struct {
	Old T
	New T
}
