package cad

import (
	"fmt"
	"slices"
)

// DefaultDragThreshold is the pointer travel, in pixels, that turns a press
// into a drag selection.
const DefaultDragThreshold = 4.0

// SelectMode controls how clicks and drags change the selection.
type SelectMode uint8

const (
	// SingleSelect replaces the selection with the new hit.
	SingleSelect SelectMode = iota
	// MultipleSelect toggles a clicked object and adds dragged objects to
	// the selection.
	MultipleSelect
)

// String returns the name of the mode.
func (m SelectMode) String() string {
	if m == MultipleSelect {
		return "Multiple"
	}
	return "Single"
}

// LayerObjects pairs a layer with objects added to or removed from it.
type LayerObjects struct {
	Layer   *Layer
	Objects []DrawObject
}

// Scene aggregates layers, owns the coordinate converter and turns host
// input, given in screen space, into routed object events and selection
// changes.
//
// A Scene is not safe for concurrent use. All calls, including the
// notifications they raise, happen on the caller's goroutine.
type Scene struct {
	conv          *Converter
	layers        []*Layer
	layerSubs     map[*Layer][]func()
	active        *Layer
	mode          SelectMode
	focused       bool
	dragThreshold float64
	press         *pressState

	repaint         Event[struct{}]
	activeChanged   Event[ValueChange[*Layer]]
	objectsAdded    Event[LayerObjects]
	objectsRemoved  Event[LayerObjects]
	objectSelection Event[ObjectSelection]
	editCommitted   Event[ObjectEdit]
	clickSelecting  Event[*ClickSelectingEvent]
	dragMove        Event[*DragSelectMoveEvent]
	dragSelect      Event[DragSelectEvent]
}

// NewScene creates a scene. Without options it has zoom 1, no pan, an
// empty viewport, no layers and single selection.
func NewScene(opts ...SceneOption) *Scene {
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}

	conv := o.converter
	if conv == nil {
		conv = NewConverter()
	}
	if o.zoom > 0 {
		_ = conv.SetZoom(o.zoom)
	}
	if o.pan != nil {
		conv.SetPan(*o.pan)
	}
	if o.viewport != nil {
		conv.SetViewport(o.viewport[0], o.viewport[1])
	}

	s := &Scene{
		conv:          conv,
		layerSubs:     make(map[*Layer][]func()),
		mode:          o.mode,
		dragThreshold: o.dragThreshold,
	}
	s.SetLayers(o.layers)
	return s
}

// Converter returns the scene's coordinate converter.
func (s *Scene) Converter() *Converter { return s.conv }

// Zoom returns the current zoom.
func (s *Scene) Zoom() float64 { return s.conv.Zoom() }

// SetZoom changes the zoom and requests a repaint. Non-positive values fail
// with ErrNonPositiveZoom and leave the zoom unchanged.
func (s *Scene) SetZoom(zoom float64) error {
	if err := s.conv.SetZoom(zoom); err != nil {
		return err
	}
	s.requestRepaint()
	return nil
}

// ZoomAt scales the zoom by factor around a screen position.
func (s *Scene) ZoomAt(screen Point, factor float64) error {
	if err := s.conv.ZoomAt(screen, factor); err != nil {
		return err
	}
	s.requestRepaint()
	return nil
}

// Pan returns the screen position of the model origin.
func (s *Scene) Pan() Point { return s.conv.Pan() }

// SetPan moves the model origin and requests a repaint.
func (s *Scene) SetPan(p Point) {
	if s.conv.Pan() == p {
		return
	}
	s.conv.SetPan(p)
	s.requestRepaint()
}

// SetViewport records the size of the rendering surface.
func (s *Scene) SetViewport(width, height float64) {
	s.conv.SetViewport(width, height)
	s.requestRepaint()
}

// SelectMode returns the selection mode.
func (s *Scene) SelectMode() SelectMode { return s.mode }

// SetSelectMode changes the selection mode.
func (s *Scene) SetSelectMode(m SelectMode) { s.mode = m }

// IsFocused reports whether the host surface has keyboard focus.
func (s *Scene) IsFocused() bool { return s.focused }

// SetFocused records keyboard focus. Key and text events are ignored while
// the scene is not focused.
func (s *Scene) SetFocused(focused bool) { s.focused = focused }

// Layers returns a copy of the layer list in paint order.
func (s *Scene) Layers() []*Layer { return slices.Clone(s.layers) }

// SetLayers replaces the layer list. nil entries and repeats are dropped.
// If the active layer is not in the new list, the first layer becomes
// active (or none if the list is empty).
func (s *Scene) SetLayers(layers []*Layer) {
	for l := range s.layerSubs {
		s.unwatch(l)
	}
	next := make([]*Layer, 0, len(layers))
	for _, l := range layers {
		if l == nil || slices.Contains(next, l) {
			continue
		}
		next = append(next, l)
		s.watch(l)
	}
	s.layers = next

	if s.active == nil || !slices.Contains(s.layers, s.active) {
		var first *Layer
		if len(s.layers) > 0 {
			first = s.layers[0]
		}
		s.setActive(first)
	}
	s.requestRepaint()
}

// AddLayer appends a layer on top of the others.
func (s *Scene) AddLayer(l *Layer) error {
	if l == nil {
		return fmt.Errorf("%w: layer is nil", ErrInvalidArgument)
	}
	if slices.Contains(s.layers, l) {
		return fmt.Errorf("%w: layer %q already in scene", ErrInvalidState, l.Name())
	}
	s.layers = append(s.layers, l)
	s.watch(l)
	if s.active == nil {
		s.setActive(l)
	}
	s.requestRepaint()
	return nil
}

// RemoveLayer removes a layer from the scene. The layer keeps its objects.
func (s *Scene) RemoveLayer(l *Layer) error {
	i := slices.Index(s.layers, l)
	if l == nil || i < 0 {
		return fmt.Errorf("%w: layer not in scene", ErrInvalidState)
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	s.unwatch(l)
	if s.active == l {
		var next *Layer
		if len(s.layers) > 0 {
			next = s.layers[0]
		}
		s.setActive(next)
	}
	s.requestRepaint()
	return nil
}

// ActiveLayer returns the layer that receives hit-testing, or nil.
func (s *Scene) ActiveLayer() *Layer { return s.active }

// SetActiveLayer makes l the active layer. l must be part of the scene;
// nil clears the active layer so that every visible layer is hit-tested.
func (s *Scene) SetActiveLayer(l *Layer) error {
	if l != nil && !slices.Contains(s.layers, l) {
		return fmt.Errorf("%w: layer %q not in scene", ErrInvalidState, l.Name())
	}
	s.setActive(l)
	return nil
}

func (s *Scene) setActive(l *Layer) {
	if s.active == l {
		return
	}
	old := s.active
	s.active = l
	s.activeChanged.emit(ValueChange[*Layer]{Old: old, New: l})
}

// Render paints every visible layer in order onto r.
func (s *Scene) Render(r Renderer) {
	c := NewCanvas(s.conv, r)
	for _, l := range s.layers {
		if l.IsVisible() {
			l.Draw(c)
		}
	}
}

// OnRepaint subscribes to repaint requests: any visual change in a layer or
// object, and zoom, pan or viewport changes.
func (s *Scene) OnRepaint(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return s.repaint.Subscribe(func(struct{}) { fn() })
}

// OnActiveLayerChanged subscribes to active layer changes.
func (s *Scene) OnActiveLayerChanged(fn func(ValueChange[*Layer])) func() {
	return s.activeChanged.Subscribe(fn)
}

// OnObjectsAdded subscribes to objects added to any scene layer.
func (s *Scene) OnObjectsAdded(fn func(LayerObjects)) func() {
	return s.objectsAdded.Subscribe(fn)
}

// OnObjectsRemoved subscribes to objects removed from any scene layer.
func (s *Scene) OnObjectsRemoved(fn func(LayerObjects)) func() {
	return s.objectsRemoved.Subscribe(fn)
}

// OnObjectSelectedChanged subscribes to selection changes of any object in
// the scene.
func (s *Scene) OnObjectSelectedChanged(fn func(ObjectSelection)) func() {
	return s.objectSelection.Subscribe(fn)
}

// OnEditCommitted subscribes to transactions committed by any object in the
// scene. Push them onto a history.Stack to get undo and redo.
func (s *Scene) OnEditCommitted(fn func(ObjectEdit)) func() {
	return s.editCommitted.Subscribe(fn)
}

func (s *Scene) requestRepaint() {
	s.repaint.emit(struct{}{})
}

func (s *Scene) watch(l *Layer) {
	s.layerSubs[l] = []func(){
		l.OnVisualChanged(s.requestRepaint),
		l.OnAdded(func(objs []DrawObject) {
			s.objectsAdded.emit(LayerObjects{Layer: l, Objects: objs})
		}),
		l.OnRemoved(func(objs []DrawObject) {
			s.objectsRemoved.emit(LayerObjects{Layer: l, Objects: objs})
		}),
		l.OnObjectSelectionChanged(s.objectSelection.emit),
		l.OnObjectEdited(s.editCommitted.emit),
	}
}

func (s *Scene) unwatch(l *Layer) {
	for _, unsub := range s.layerSubs[l] {
		unsub()
	}
	delete(s.layerSubs, l)
}
