package cad

// Element is the common contract of layers and draw objects: something that
// can be shown or hidden and that announces changes to its appearance.
type Element interface {
	// Draw paints the element onto the canvas.
	Draw(c *Canvas)

	IsVisible() bool
	SetVisible(visible bool)

	// RaiseVisualChanged notifies subscribers that the element must be
	// repainted.
	RaiseVisualChanged()

	OnVisualChanged(fn func()) (unsubscribe func())
	OnVisibilityChanged(fn func()) (unsubscribe func())
}

// ElementBase implements Element and is meant to be embedded.
// The zero value is visible.
type ElementBase struct {
	hidden            bool
	visibilityChanged Event[struct{}]
	visualChanged     Event[struct{}]
}

// IsVisible reports whether the element is shown. Defaults to true.
func (e *ElementBase) IsVisible() bool { return !e.hidden }

// SetVisible shows or hides the element. A change raises the visibility
// notification followed by the visual-changed notification.
func (e *ElementBase) SetVisible(visible bool) {
	if e.hidden == !visible {
		return
	}
	e.hidden = !visible
	e.visibilityChanged.emit(struct{}{})
	e.RaiseVisualChanged()
}

// RaiseVisualChanged notifies the visual-changed subscribers.
func (e *ElementBase) RaiseVisualChanged() {
	e.visualChanged.emit(struct{}{})
}

// OnVisualChanged subscribes to appearance changes.
func (e *ElementBase) OnVisualChanged(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return e.visualChanged.Subscribe(func(struct{}) { fn() })
}

// OnVisibilityChanged subscribes to visibility toggles.
func (e *ElementBase) OnVisibilityChanged(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return e.visibilityChanged.Subscribe(func(struct{}) { fn() })
}

// Draw does nothing.
func (e *ElementBase) Draw(*Canvas) {}
