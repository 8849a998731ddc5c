package cad

import "github.com/google/uuid"

// DrawObject is a drawable, selectable, hit-testable unit of content held
// by at most one Layer.
//
// Implementations embed ObjectBase, which supplies the conservative
// defaults (no hit, no bounds, no drawing), and call Init from their
// constructor. A shape overrides only the capabilities it needs.
type DrawObject interface {
	Element

	// ID returns a stable identifier for the object.
	ID() uuid.UUID

	// Layer returns the layer holding the object, or nil when detached.
	Layer() *Layer

	IsSelected() bool
	SetSelected(selected bool)

	// PointInObject reports whether the model point hits the object. The
	// converter lets implementations apply a tolerance in screen pixels.
	PointInObject(p Point, conv *Converter) bool

	// ObjectInRectangle reports whether the object lies inside r. With
	// anyPoint set, touching the rectangle is enough.
	ObjectInRectangle(r Rect, conv *Converter, anyPoint bool) bool

	// BoundingRect returns the model-space bounds, or false when the
	// object has none.
	BoundingRect() (Rect, bool)

	// Input entry points. Each raises its preview notification first and
	// runs the object's handler only if the event is still unhandled.
	MouseDown(e *MouseButtonEvent)
	MouseUp(e *MouseButtonEvent)
	MouseMove(e *MouseEvent)
	KeyDown(e *KeyEvent)
	KeyUp(e *KeyEvent)
	TextInput(e *TextInputEvent)

	OnSelectedChanged(fn func(ValueChange[bool])) (unsubscribe func())
	OnEditCommitted(fn func(EditTransaction)) (unsubscribe func())

	objectBase() *ObjectBase
}

// SelectionChangingHook is implemented by draw objects that react to their
// own selection changes. It runs before the public notification.
type SelectionChangingHook interface {
	SelectionChanging(change ValueChange[bool])
}

// ObjectBase implements the shared part of DrawObject.
type ObjectBase struct {
	ElementBase

	self     DrawObject
	id       uuid.UUID
	layer    *Layer
	selected bool
	editing  bool

	selectedChanged Event[ValueChange[bool]]
	editingChanged  Event[ValueChange[bool]]
	editCommitted   Event[EditTransaction]

	previewMouseDown Event[*MouseButtonEvent]
	previewMouseUp   Event[*MouseButtonEvent]
	previewMouseMove Event[*MouseEvent]
	previewKeyDown   Event[*KeyEvent]
	previewKeyUp     Event[*KeyEvent]
	previewTextInput Event[*TextInputEvent]
}

// Init binds the base to the concrete object embedding it, so that hooks
// and handlers implemented by the outer type are found. Constructors call
// it once.
func (b *ObjectBase) Init(self DrawObject) {
	b.self = self
	if b.id == uuid.Nil {
		b.id = uuid.New()
	}
}

func (b *ObjectBase) objectBase() *ObjectBase { return b }

// ID returns the object's identifier.
func (b *ObjectBase) ID() uuid.UUID {
	if b.id == uuid.Nil {
		b.id = uuid.New()
	}
	return b.id
}

// Layer returns the layer holding the object, or nil.
func (b *ObjectBase) Layer() *Layer { return b.layer }

// IsSelected reports whether the object is selected.
func (b *ObjectBase) IsSelected() bool { return b.selected }

// SetSelected changes the selection state. A change runs the
// SelectionChanging hook, then the selection notification, then the
// visual-changed notification. Setting the current value does nothing.
func (b *ObjectBase) SetSelected(selected bool) {
	if b.selected == selected {
		return
	}
	b.selected = selected

	change := ValueChange[bool]{Old: !selected, New: selected}
	if h, ok := b.self.(SelectionChangingHook); ok {
		h.SelectionChanging(change)
	}
	b.selectedChanged.emit(change)
	b.RaiseVisualChanged()
}

// OnSelectedChanged subscribes to selection changes.
func (b *ObjectBase) OnSelectedChanged(fn func(ValueChange[bool])) func() {
	return b.selectedChanged.Subscribe(fn)
}

// IsEditing reports whether the object is in an interactive edit.
func (b *ObjectBase) IsEditing() bool { return b.editing }

// SetEditing marks the start or end of an interactive edit.
func (b *ObjectBase) SetEditing(editing bool) {
	if b.editing == editing {
		return
	}
	b.editing = editing
	b.editingChanged.emit(ValueChange[bool]{Old: !editing, New: editing})
}

// OnEditingChanged subscribes to edit state changes.
func (b *ObjectBase) OnEditingChanged(fn func(ValueChange[bool])) func() {
	return b.editingChanged.Subscribe(fn)
}

// OnEditCommitted subscribes to the transactions emitted by property
// changes.
func (b *ObjectBase) OnEditCommitted(fn func(EditTransaction)) func() {
	return b.editCommitted.Subscribe(fn)
}

// PointInObject reports false.
func (b *ObjectBase) PointInObject(Point, *Converter) bool { return false }

// ObjectInRectangle reports false.
func (b *ObjectBase) ObjectInRectangle(Rect, *Converter, bool) bool { return false }

// BoundingRect reports no bounds.
func (b *ObjectBase) BoundingRect() (Rect, bool) { return Rect{}, false }

// OnPreviewMouseDown subscribes to mouse presses before default handling.
func (b *ObjectBase) OnPreviewMouseDown(fn func(*MouseButtonEvent)) func() {
	return b.previewMouseDown.Subscribe(fn)
}

// OnPreviewMouseUp subscribes to mouse releases before default handling.
func (b *ObjectBase) OnPreviewMouseUp(fn func(*MouseButtonEvent)) func() {
	return b.previewMouseUp.Subscribe(fn)
}

// OnPreviewMouseMove subscribes to mouse moves before default handling.
func (b *ObjectBase) OnPreviewMouseMove(fn func(*MouseEvent)) func() {
	return b.previewMouseMove.Subscribe(fn)
}

// OnPreviewKeyDown subscribes to key presses before default handling.
func (b *ObjectBase) OnPreviewKeyDown(fn func(*KeyEvent)) func() {
	return b.previewKeyDown.Subscribe(fn)
}

// OnPreviewKeyUp subscribes to key releases before default handling.
func (b *ObjectBase) OnPreviewKeyUp(fn func(*KeyEvent)) func() {
	return b.previewKeyUp.Subscribe(fn)
}

// OnPreviewTextInput subscribes to text input before default handling.
func (b *ObjectBase) OnPreviewTextInput(fn func(*TextInputEvent)) func() {
	return b.previewTextInput.Subscribe(fn)
}

// MouseDown routes a press to the object.
func (b *ObjectBase) MouseDown(e *MouseButtonEvent) {
	b.previewMouseDown.emit(e)
	if e.Handled {
		return
	}
	if h, ok := b.self.(MouseDownHandler); ok {
		h.HandleMouseDown(e)
	}
}

// MouseUp routes a release to the object.
func (b *ObjectBase) MouseUp(e *MouseButtonEvent) {
	b.previewMouseUp.emit(e)
	if e.Handled {
		return
	}
	if h, ok := b.self.(MouseUpHandler); ok {
		h.HandleMouseUp(e)
	}
}

// MouseMove routes a pointer move to the object.
func (b *ObjectBase) MouseMove(e *MouseEvent) {
	b.previewMouseMove.emit(e)
	if e.Handled {
		return
	}
	if h, ok := b.self.(MouseMoveHandler); ok {
		h.HandleMouseMove(e)
	}
}

// KeyDown routes a key press to the object.
func (b *ObjectBase) KeyDown(e *KeyEvent) {
	b.previewKeyDown.emit(e)
	if e.Handled {
		return
	}
	if h, ok := b.self.(KeyDownHandler); ok {
		h.HandleKeyDown(e)
	}
}

// KeyUp routes a key release to the object.
func (b *ObjectBase) KeyUp(e *KeyEvent) {
	b.previewKeyUp.emit(e)
	if e.Handled {
		return
	}
	if h, ok := b.self.(KeyUpHandler); ok {
		h.HandleKeyUp(e)
	}
}

// TextInput routes composed text to the object.
func (b *ObjectBase) TextInput(e *TextInputEvent) {
	b.previewTextInput.emit(e)
	if e.Handled {
		return
	}
	if h, ok := b.self.(TextInputHandler); ok {
		h.HandleTextInput(e)
	}
}
