package cad

import "slices"

// ClickSelectingEvent is raised before a click changes the selection.
// Hits lists the objects under the pointer, front to back; the first entry
// is the one the click applies to. Listeners may reorder or trim Hits, or
// set Cancel to leave the selection untouched.
type ClickSelectingEvent struct {
	Position Point
	Hits     []DrawObject
	Cancel   bool
}

// DragSelectMoveEvent is raised while a drag selection is in progress.
// AnyPoint starts out true for right-to-left (crossing) drags; listeners
// may change it and the value is used when the drag ends.
type DragSelectMoveEvent struct {
	Rect     Rect
	Position Point
	AnyPoint bool
}

// DragSelectEvent is raised when a drag selection ends, before the
// selection is applied. It cannot be cancelled.
type DragSelectEvent struct {
	Rect     Rect
	AnyPoint bool
	Hits     []DrawObject
}

type pressState struct {
	screen   Point
	pos      Point
	dragging bool
	anyPoint bool
}

// OnClickSelecting subscribes to click selections before they apply.
func (s *Scene) OnClickSelecting(fn func(*ClickSelectingEvent)) func() {
	return s.clickSelecting.Subscribe(fn)
}

// OnDragSelectMove subscribes to drag rectangle updates.
func (s *Scene) OnDragSelectMove(fn func(*DragSelectMoveEvent)) func() {
	return s.dragMove.Subscribe(fn)
}

// OnDragSelect subscribes to completed drag selections.
func (s *Scene) OnDragSelect(fn func(DragSelectEvent)) func() {
	return s.dragSelect.Subscribe(fn)
}

// IsDragging reports whether a drag selection is in progress.
func (s *Scene) IsDragging() bool {
	return s.press != nil && s.press.dragging
}

// MouseDown handles a pointer press at a screen position. Selected objects
// get the event first; it reports whether one of them handled it. An
// unhandled left press may become a click or a drag selection.
func (s *Scene) MouseDown(screen Point, button MouseButton, mods Modifiers) bool {
	e := &MouseButtonEvent{MouseEvent: s.mouseEvent(screen, mods), Button: button}
	if button == ButtonLeft {
		s.press = nil
	}
	for _, obj := range s.routeTargets() {
		obj.MouseDown(e)
		if e.Handled {
			return true
		}
	}
	if button == ButtonLeft {
		s.press = &pressState{screen: screen, pos: e.Position}
	}
	return false
}

// MouseMove handles pointer movement. Once a held left button has moved
// past the drag threshold, every move raises OnDragSelectMove.
func (s *Scene) MouseMove(screen Point, mods Modifiers) bool {
	e := s.mouseEvent(screen, mods)
	for _, obj := range s.routeTargets() {
		obj.MouseMove(&e)
		if e.Handled {
			return true
		}
	}

	p := s.press
	if p == nil {
		return false
	}
	if !p.dragging {
		if screen.Distance(p.screen) < s.dragThreshold {
			return false
		}
		p.dragging = true
	}
	s.dragTo(p, e.Position)
	return false
}

// dragTo raises OnDragSelectMove for the rectangle from the press to pos
// and keeps the listeners' AnyPoint choice.
func (s *Scene) dragTo(p *pressState, pos Point) {
	ev := &DragSelectMoveEvent{
		Rect:     RectFromPoints(p.pos, pos),
		Position: pos,
		AnyPoint: pos.X < p.pos.X,
	}
	s.dragMove.emit(ev)
	p.anyPoint = ev.AnyPoint
}

// MouseUp handles a pointer release. Releasing the left button finishes a
// drag selection, or performs a click selection if the pointer did not
// travel past the drag threshold. A release past the threshold with no
// move in between still counts as a drag.
func (s *Scene) MouseUp(screen Point, button MouseButton, mods Modifiers) bool {
	e := &MouseButtonEvent{MouseEvent: s.mouseEvent(screen, mods), Button: button}
	p := s.press
	if button == ButtonLeft {
		s.press = nil
	}
	for _, obj := range s.routeTargets() {
		obj.MouseUp(e)
		if e.Handled {
			return true
		}
	}
	if p == nil || button != ButtonLeft {
		return false
	}

	if !p.dragging && screen.Distance(p.screen) >= s.dragThreshold {
		p.dragging = true
		s.dragTo(p, e.Position)
	}
	if p.dragging {
		s.DragSelect(RectFromPoints(p.pos, e.Position), p.anyPoint)
	} else {
		s.ClickSelect(e.Position)
	}
	return false
}

// KeyDown routes a key press to the selected objects while focused.
func (s *Scene) KeyDown(key string, mods Modifiers, repeat bool) bool {
	if !s.focused {
		return false
	}
	e := &KeyEvent{Key: key, Modifiers: mods, Repeat: repeat}
	for _, obj := range s.routeTargets() {
		obj.KeyDown(e)
		if e.Handled {
			return true
		}
	}
	return false
}

// KeyUp routes a key release to the selected objects while focused.
func (s *Scene) KeyUp(key string, mods Modifiers) bool {
	if !s.focused {
		return false
	}
	e := &KeyEvent{Key: key, Modifiers: mods}
	for _, obj := range s.routeTargets() {
		obj.KeyUp(e)
		if e.Handled {
			return true
		}
	}
	return false
}

// TextInput routes composed text to the selected objects while focused.
func (s *Scene) TextInput(text string) bool {
	if !s.focused {
		return false
	}
	e := NewTextInputEvent(text)
	for _, obj := range s.routeTargets() {
		obj.TextInput(e)
		if e.Handled {
			return true
		}
	}
	return false
}

// ClickSelect applies a click at a model point. It reports false when a
// listener cancelled the selection.
func (s *Scene) ClickSelect(p Point) bool {
	var hits []DrawObject
	layers := s.hitLayers()
	for i := len(layers) - 1; i >= 0; i-- {
		hits = append(hits, layers[i].HitTest(p, s.conv)...)
	}

	ev := &ClickSelectingEvent{Position: p, Hits: hits}
	s.clickSelecting.emit(ev)
	if ev.Cancel {
		Logger().Debug("cad: click selection cancelled", "x", p.X, "y", p.Y)
		return false
	}

	var target DrawObject
	if len(ev.Hits) > 0 {
		target = ev.Hits[0]
	}
	switch s.mode {
	case MultipleSelect:
		if target != nil {
			target.SetSelected(!target.IsSelected())
		}
	default:
		for _, obj := range s.allObjects() {
			if obj != target {
				obj.SetSelected(false)
			}
		}
		if target != nil {
			target.SetSelected(true)
		}
	}
	Logger().Debug("cad: click selection", "hits", len(ev.Hits), "mode", s.mode)
	return true
}

// DragSelect selects the objects inside a model rectangle. With anyPoint
// set, objects touching the rectangle count as well. It returns the
// objects that matched.
func (s *Scene) DragSelect(r Rect, anyPoint bool) []DrawObject {
	var hits []DrawObject
	for _, l := range s.hitLayers() {
		hits = append(hits, l.ObjectsInRect(r, s.conv, anyPoint)...)
	}

	s.dragSelect.emit(DragSelectEvent{Rect: r, AnyPoint: anyPoint, Hits: slices.Clone(hits)})

	if s.mode == SingleSelect {
		for _, obj := range s.allObjects() {
			if !slices.Contains(hits, obj) {
				obj.SetSelected(false)
			}
		}
	}
	for _, obj := range hits {
		obj.SetSelected(true)
	}
	Logger().Debug("cad: drag selection", "hits", len(hits), "anyPoint", anyPoint, "mode", s.mode)
	return hits
}

// SelectAll selects every visible object of the hit-tested layers.
func (s *Scene) SelectAll() {
	for _, l := range s.hitLayers() {
		for _, obj := range l.objects {
			if obj.IsVisible() {
				obj.SetSelected(true)
			}
		}
	}
}

// ClearSelection deselects every object in the scene.
func (s *Scene) ClearSelection() {
	for _, obj := range s.allObjects() {
		obj.SetSelected(false)
	}
}

// SelectedObjects returns the selected objects of all layers in paint
// order.
func (s *Scene) SelectedObjects() []DrawObject {
	var sel []DrawObject
	for _, obj := range s.allObjects() {
		if obj.IsSelected() {
			sel = append(sel, obj)
		}
	}
	return sel
}

func (s *Scene) mouseEvent(screen Point, mods Modifiers) MouseEvent {
	return MouseEvent{Position: s.conv.ToCad(screen), Screen: screen, Modifiers: mods}
}

// hitLayers returns the layers taking part in hit-testing: the active
// layer when one is set, otherwise every visible layer.
func (s *Scene) hitLayers() []*Layer {
	if s.active != nil {
		if s.active.IsVisible() {
			return []*Layer{s.active}
		}
		return nil
	}
	var ls []*Layer
	for _, l := range s.layers {
		if l.IsVisible() {
			ls = append(ls, l)
		}
	}
	return ls
}

// routeTargets returns the visible selected objects of the hit-tested
// layers, front to back.
func (s *Scene) routeTargets() []DrawObject {
	var targets []DrawObject
	layers := s.hitLayers()
	for i := len(layers) - 1; i >= 0; i-- {
		objs := layers[i].objects
		for j := len(objs) - 1; j >= 0; j-- {
			if objs[j].IsSelected() && objs[j].IsVisible() {
				targets = append(targets, objs[j])
			}
		}
	}
	return targets
}

func (s *Scene) allObjects() []DrawObject {
	var all []DrawObject
	for _, l := range s.layers {
		all = append(all, l.objects...)
	}
	return all
}
