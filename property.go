package cad

// EditTransaction is a committed property change that can be reverted and
// re-applied. Transactions are emitted through OnEditCommitted; keeping
// them on an undo stack is the application's job (see package history).
type EditTransaction interface {
	Undo()
	Redo()
}

// PropertyEdit records one property change on a draw object: the old and
// the new value and how to apply either of them to the same instance.
type PropertyEdit[T any] struct {
	Target   DrawObject
	Property string
	Old      T
	New      T

	apply  func(T)
	visual bool
}

// Undo restores the old value.
func (e *PropertyEdit[T]) Undo() { e.set(e.Old) }

// Redo re-applies the new value.
func (e *PropertyEdit[T]) Redo() { e.set(e.New) }

func (e *PropertyEdit[T]) set(v T) {
	e.apply(v)
	if e.visual {
		e.Target.RaiseVisualChanged()
	}
}

// PropertyOption adjusts how SetProperty commits a change.
type PropertyOption func(*propertySettings)

type propertySettings struct {
	noTransaction bool
	noVisual      bool
}

// WithoutTransaction applies the change without emitting an EditTransaction.
func WithoutTransaction() PropertyOption {
	return func(s *propertySettings) { s.noTransaction = true }
}

// WithoutVisualChange applies the change without a visual-changed
// notification, neither now nor on undo or redo.
func WithoutVisualChange() PropertyOption {
	return func(s *propertySettings) { s.noVisual = true }
}

// SetProperty is the commit path for settable properties of a draw object.
// If value differs from *field it is stored, visual-changed is raised and a
// PropertyEdit is emitted to the object's OnEditCommitted subscribers.
// It reports whether anything changed.
func SetProperty[T comparable](obj DrawObject, name string, field *T, value T, opts ...PropertyOption) bool {
	return SetPropertyFunc(obj, name, field, value, func(a, b T) bool { return a == b }, opts...)
}

// SetPropertyFunc is SetProperty for values that are not comparable with ==,
// such as slices. equal decides whether the value changed.
func SetPropertyFunc[T any](obj DrawObject, name string, field *T, value T, equal func(a, b T) bool, opts ...PropertyOption) bool {
	old := *field
	if equal(old, value) {
		return false
	}

	var s propertySettings
	for _, opt := range opts {
		opt(&s)
	}

	*field = value
	if !s.noVisual {
		obj.RaiseVisualChanged()
	}
	if s.noTransaction {
		return true
	}

	edit := &PropertyEdit[T]{
		Target:   obj,
		Property: name,
		Old:      old,
		New:      value,
		apply:    func(v T) { *field = v },
		visual:   !s.noVisual,
	}
	obj.objectBase().editCommitted.emit(edit)
	return true
}
