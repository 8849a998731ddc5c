package cad

import (
	"slices"
	"testing"

	"github.com/google/uuid"
)

func TestSetSelectedNotificationOrder(t *testing.T) {
	var log []string
	b := newBox(NewRect(0, 0, 1, 1))
	b.log = &log
	b.OnSelectedChanged(func(ch ValueChange[bool]) {
		log = append(log, "selected")
		if ch.Old || !ch.New {
			t.Errorf("change = %+v, want false -> true", ch)
		}
		if !b.IsSelected() {
			t.Error("state must be updated before notifications")
		}
	})
	b.OnVisualChanged(func() { log = append(log, "visual") })

	b.SetSelected(true)

	if want := []string{"hook", "selected", "visual"}; !slices.Equal(log, want) {
		t.Errorf("notifications = %v, want %v", log, want)
	}
}

func TestSetSelectedUnchangedIsSilent(t *testing.T) {
	var log []string
	b := newBox(NewRect(0, 0, 1, 1))
	b.log = &log
	b.OnSelectedChanged(func(ValueChange[bool]) { log = append(log, "selected") })
	b.OnVisualChanged(func() { log = append(log, "visual") })

	b.SetSelected(false)
	if len(log) != 0 {
		t.Errorf("notifications = %v, want none", log)
	}

	b.SetSelected(true)
	log = nil
	b.SetSelected(true)
	if len(log) != 0 {
		t.Errorf("notifications = %v, want none", log)
	}
}

func TestObjectID(t *testing.T) {
	a, b := newBox(Rect{}), newBox(Rect{})
	if a.ID() == uuid.Nil {
		t.Error("ID() is nil")
	}
	if a.ID() != a.ID() {
		t.Error("ID() is not stable")
	}
	if a.ID() == b.ID() {
		t.Error("two objects share an ID")
	}
}

type bareObject struct{ ObjectBase }

func TestObjectBaseDefaults(t *testing.T) {
	o := &bareObject{}
	o.Init(o)
	conv := NewConverter()

	if o.PointInObject(Pt(0, 0), conv) {
		t.Error("PointInObject default should be false")
	}
	if o.ObjectInRectangle(NewRect(-10, -10, 20, 20), conv, true) {
		t.Error("ObjectInRectangle default should be false")
	}
	if _, ok := o.BoundingRect(); ok {
		t.Error("BoundingRect default should report no bounds")
	}
	if o.Layer() != nil {
		t.Error("new object should have no layer")
	}
	if !o.IsVisible() {
		t.Error("new object should be visible")
	}
	// No handlers: routing must not panic.
	o.MouseDown(&MouseButtonEvent{})
	o.KeyDown(&KeyEvent{})
	o.TextInput(NewTextInputEvent("x"))
}

func TestRoutingPreviewHandled(t *testing.T) {
	tests := []struct {
		name        string
		handled     bool
		wantHandler int
	}{
		{"preview leaves event unhandled", false, 1},
		{"preview handles event", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBox(Rect{})
			var order []string
			b.OnPreviewMouseDown(func(e *MouseButtonEvent) {
				order = append(order, "preview")
				e.Handled = tt.handled
			})

			e := &MouseButtonEvent{Button: ButtonLeft}
			b.MouseDown(e)

			if b.downs != tt.wantHandler {
				t.Errorf("handler ran %d times, want %d", b.downs, tt.wantHandler)
			}
			if len(order) != 1 {
				t.Errorf("preview ran %d times, want 1", len(order))
			}
			if e.Handled != tt.handled {
				t.Errorf("Handled = %v, want %v", e.Handled, tt.handled)
			}
		})
	}
}

func TestRoutingKeyAndText(t *testing.T) {
	b := newBox(Rect{})
	b.OnPreviewKeyDown(func(e *KeyEvent) {
		if e.Key == "Escape" {
			e.Handled = true
		}
	})

	b.KeyDown(&KeyEvent{Key: "a"})
	b.KeyDown(&KeyEvent{Key: "Escape"})
	b.TextInput(NewTextInputEvent("e\u0301"))

	if !slices.Equal(b.keys, []string{"a"}) {
		t.Errorf("keys = %v, want [a]", b.keys)
	}
	if len(b.texts) != 1 || b.texts[0] != "\u00e9" {
		t.Errorf("texts = %q, want NFC composed é", b.texts)
	}
}

func TestSetEditing(t *testing.T) {
	b := newBox(Rect{})
	var changes []ValueChange[bool]
	b.OnEditingChanged(func(ch ValueChange[bool]) { changes = append(changes, ch) })

	b.SetEditing(true)
	b.SetEditing(true)
	b.SetEditing(false)

	if len(changes) != 2 || !changes[0].New || changes[1].New {
		t.Errorf("editing changes = %+v", changes)
	}
}

func TestSetVisible(t *testing.T) {
	b := newBox(Rect{})
	var log []string
	b.OnVisibilityChanged(func() { log = append(log, "visibility") })
	b.OnVisualChanged(func() { log = append(log, "visual") })

	b.SetVisible(false)
	b.SetVisible(false)

	if want := []string{"visibility", "visual"}; !slices.Equal(log, want) {
		t.Errorf("notifications = %v, want %v", log, want)
	}
	if b.IsVisible() {
		t.Error("IsVisible() = true after SetVisible(false)")
	}
}
