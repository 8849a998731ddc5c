package cad

import "golang.org/x/text/unicode/norm"

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// String returns the name of the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	}
	return "Unknown"
}

// Modifiers is a bit set of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether all bits of m2 are set in m.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// RoutedEvent carries the handled flag shared by all routed input events.
// A preview subscriber that sets Handled suppresses the default handling.
type RoutedEvent struct {
	Handled bool
}

// MouseEvent is a pointer movement. Position is in model space; Screen is
// the raw position reported by the host.
type MouseEvent struct {
	RoutedEvent
	Position  Point
	Screen    Point
	Modifiers Modifiers
}

// MouseButtonEvent is a pointer press or release.
type MouseButtonEvent struct {
	MouseEvent
	Button MouseButton
}

// KeyEvent is a key press or release. Key is the host's key name, e.g.
// "Delete", "Escape" or "a".
type KeyEvent struct {
	RoutedEvent
	Key       string
	Modifiers Modifiers
	Repeat    bool
}

// TextInputEvent carries composed text, normalised to NFC.
type TextInputEvent struct {
	RoutedEvent
	Text string
}

// NewTextInputEvent creates a text event with the text normalised to NFC so
// that composed and decomposed input compare equal.
func NewTextInputEvent(text string) *TextInputEvent {
	return &TextInputEvent{Text: norm.NFC.String(text)}
}

// Optional input handlers. A draw object implements the ones it reacts to;
// they run only when no preview subscriber marked the event handled.
type (
	MouseDownHandler interface{ HandleMouseDown(e *MouseButtonEvent) }
	MouseUpHandler   interface{ HandleMouseUp(e *MouseButtonEvent) }
	MouseMoveHandler interface{ HandleMouseMove(e *MouseEvent) }
	KeyDownHandler   interface{ HandleKeyDown(e *KeyEvent) }
	KeyUpHandler     interface{ HandleKeyUp(e *KeyEvent) }
	TextInputHandler interface{ HandleTextInput(e *TextInputEvent) }
)
