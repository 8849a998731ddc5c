package cad

import (
	"fmt"
	"slices"
)

// ObjectEdit pairs a committed transaction with the object it came from.
type ObjectEdit struct {
	Object      DrawObject
	Transaction EditTransaction
}

// ObjectSelection pairs a selection change with the object it happened on.
type ObjectSelection struct {
	Object DrawObject
	Change ValueChange[bool]
}

// Layer is an ordered collection of draw objects. Insertion order is the
// paint order, back to front.
//
// A layer is the only place that sets or clears an object's layer
// reference, and an object can be held by one layer at a time.
type Layer struct {
	ElementBase

	name       string
	background *Brush
	objects    []DrawObject
	subs       map[DrawObject][]func()

	added           Event[[]DrawObject]
	removed         Event[[]DrawObject]
	clearing        Event[struct{}]
	cleared         Event[struct{}]
	objectEdited    Event[ObjectEdit]
	objectSelection Event[ObjectSelection]
}

// NewLayer creates an empty, visible layer.
func NewLayer(name string) *Layer {
	return &Layer{
		name: name,
		subs: make(map[DrawObject][]func()),
	}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Background returns the background brush, or nil.
func (l *Layer) Background() *Brush { return l.background }

// SetBackground sets the brush painted over the whole viewport before the
// layer's objects. nil disables it.
func (l *Layer) SetBackground(b *Brush) {
	if l.background == b {
		return
	}
	l.background = b
	l.RaiseVisualChanged()
}

// Objects returns a copy of the layer's objects in paint order.
func (l *Layer) Objects() []DrawObject {
	return slices.Clone(l.objects)
}

// Len returns the number of objects.
func (l *Layer) Len() int { return len(l.objects) }

// Contains reports whether the layer holds obj.
func (l *Layer) Contains(obj DrawObject) bool {
	return obj != nil && obj.Layer() == l
}

// Add appends obj to the layer. It fails with ErrAlreadyAttached when obj
// belongs to any layer, including this one.
func (l *Layer) Add(obj DrawObject) error {
	if obj == nil {
		return ErrNilObject
	}
	if obj.Layer() != nil {
		return ErrAlreadyAttached
	}
	l.attach(obj)
	l.added.emit([]DrawObject{obj})
	l.RaiseVisualChanged()
	Logger().Debug("cad: object added", "layer", l.name, "id", obj.ID())
	return nil
}

// AddObjects appends several objects. The batch is checked first: a nil
// slice, a nil entry, an attached object or a repeated entry fails the
// whole call and leaves the layer unchanged. One added notification and
// one visual-changed notification are raised per call.
func (l *Layer) AddObjects(objs []DrawObject) error {
	if objs == nil {
		return fmt.Errorf("%w: object collection is nil", ErrInvalidArgument)
	}
	seen := make(map[DrawObject]struct{}, len(objs))
	for i, obj := range objs {
		if obj == nil {
			return fmt.Errorf("add objects: entry %d: %w", i, ErrNilObject)
		}
		if _, dup := seen[obj]; dup || obj.Layer() != nil {
			return fmt.Errorf("add objects: entry %d: %w", i, ErrAlreadyAttached)
		}
		seen[obj] = struct{}{}
	}

	for _, obj := range objs {
		l.attach(obj)
	}
	l.added.emit(slices.Clone(objs))
	l.RaiseVisualChanged()
	Logger().Debug("cad: objects added", "layer", l.name, "count", len(objs))
	return nil
}

// Remove detaches obj from the layer. It fails with ErrNotOwned when the
// layer does not hold obj. The selection state of obj is left as it is.
func (l *Layer) Remove(obj DrawObject) error {
	if obj == nil {
		return ErrNilObject
	}
	if obj.Layer() != l {
		return ErrNotOwned
	}
	l.detach(obj)
	l.removed.emit([]DrawObject{obj})
	l.RaiseVisualChanged()
	Logger().Debug("cad: object removed", "layer", l.name, "id", obj.ID())
	return nil
}

// RemoveObjects detaches every listed object the layer holds. Entries that
// are nil, absent or owned by another layer are skipped. The removed
// notification carries the objects actually detached.
func (l *Layer) RemoveObjects(objs []DrawObject) error {
	if objs == nil {
		return fmt.Errorf("%w: object collection is nil", ErrInvalidArgument)
	}
	removed := make([]DrawObject, 0, len(objs))
	for _, obj := range objs {
		if obj == nil || obj.Layer() != l {
			continue
		}
		l.detach(obj)
		removed = append(removed, obj)
	}
	l.removed.emit(removed)
	l.RaiseVisualChanged()
	Logger().Debug("cad: objects removed", "layer", l.name, "count", len(removed))
	return nil
}

// Clear detaches every object. Clearing subscribers run before anything is
// detached and can still read the old contents.
func (l *Layer) Clear() {
	l.clearing.emit(struct{}{})

	for _, obj := range l.objects {
		l.unsubscribe(obj)
		obj.objectBase().layer = nil
	}
	l.objects = nil

	l.cleared.emit(struct{}{})
	l.RaiseVisualChanged()
	Logger().Debug("cad: layer cleared", "layer", l.name)
}

// Draw paints the background, if any, over the whole viewport and then
// every visible object in paint order.
func (l *Layer) Draw(c *Canvas) {
	if l.background != nil {
		c.DrawRectangle(c.Converter().ViewportRect(), l.background, nil)
	}
	for _, obj := range l.objects {
		if obj.IsVisible() {
			obj.Draw(c)
		}
	}
}

// HitTest returns the visible objects under p, front to back.
func (l *Layer) HitTest(p Point, conv *Converter) []DrawObject {
	var hits []DrawObject
	for i := len(l.objects) - 1; i >= 0; i-- {
		obj := l.objects[i]
		if obj.IsVisible() && obj.PointInObject(p, conv) {
			hits = append(hits, obj)
		}
	}
	return hits
}

// ObjectsInRect returns the visible objects inside r, in paint order.
func (l *Layer) ObjectsInRect(r Rect, conv *Converter, anyPoint bool) []DrawObject {
	var hits []DrawObject
	for _, obj := range l.objects {
		if obj.IsVisible() && obj.ObjectInRectangle(r, conv, anyPoint) {
			hits = append(hits, obj)
		}
	}
	return hits
}

// OnAdded subscribes to additions; the slice holds the added objects.
func (l *Layer) OnAdded(fn func([]DrawObject)) func() { return l.added.Subscribe(fn) }

// OnRemoved subscribes to removals; the slice holds the removed objects.
func (l *Layer) OnRemoved(fn func([]DrawObject)) func() { return l.removed.Subscribe(fn) }

// OnClearing subscribes to the notification raised before Clear detaches
// anything.
func (l *Layer) OnClearing(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return l.clearing.Subscribe(func(struct{}) { fn() })
}

// OnCleared subscribes to the notification raised after Clear.
func (l *Layer) OnCleared(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return l.cleared.Subscribe(func(struct{}) { fn() })
}

// OnObjectEdited subscribes to transactions committed by held objects.
func (l *Layer) OnObjectEdited(fn func(ObjectEdit)) func() {
	return l.objectEdited.Subscribe(fn)
}

// OnObjectSelectionChanged subscribes to selection changes of held objects.
func (l *Layer) OnObjectSelectionChanged(fn func(ObjectSelection)) func() {
	return l.objectSelection.Subscribe(fn)
}

func (l *Layer) attach(obj DrawObject) {
	if l.subs == nil {
		l.subs = make(map[DrawObject][]func())
	}
	l.objects = append(l.objects, obj)
	obj.objectBase().layer = l
	l.subs[obj] = []func(){
		obj.OnVisualChanged(l.RaiseVisualChanged),
		obj.OnEditCommitted(func(tx EditTransaction) {
			l.objectEdited.emit(ObjectEdit{Object: obj, Transaction: tx})
		}),
		obj.OnSelectedChanged(func(ch ValueChange[bool]) {
			l.objectSelection.emit(ObjectSelection{Object: obj, Change: ch})
		}),
	}
}

func (l *Layer) detach(obj DrawObject) {
	if i := slices.Index(l.objects, obj); i >= 0 {
		l.objects = slices.Delete(l.objects, i, i+1)
	}
	l.unsubscribe(obj)
	obj.objectBase().layer = nil
}

func (l *Layer) unsubscribe(obj DrawObject) {
	for _, unsub := range l.subs[obj] {
		unsub()
	}
	delete(l.subs, obj)
}
