package shape

import (
	"math"
	"testing"

	"github.com/draftline/cad"
	"github.com/draftline/cad/recording"
)

func TestTextBoundingRect(t *testing.T) {
	txt := NewText("Hello", cad.Pt(0, 10), 1, testBrush)
	b, ok := txt.BoundingRect()
	if !ok {
		t.Fatal("BoundingRect() reported no bounds")
	}
	if b.X != 0 || math.Abs(b.Y+b.Height-10) > 1e-9 {
		t.Errorf("box %v is not anchored at its top-left corner (0, 10)", b)
	}
	if b.Width <= 1 || b.Height < 1 || b.Height > 2 {
		t.Errorf("box %v has an implausible size for 1 unit text", b)
	}

	txt.SetSize(2)
	b2, _ := txt.BoundingRect()
	if math.Abs(b2.Width-2*b.Width) > 1e-9 {
		t.Errorf("width at size 2 = %v, want %v", b2.Width, 2*b.Width)
	}

	if _, ok := NewText("", cad.Pt(0, 0), 1, testBrush).BoundingRect(); ok {
		t.Error("empty text should have no bounds")
	}
}

func TestTextHitTesting(t *testing.T) {
	txt := NewText("Hello", cad.Pt(0, 10), 1, testBrush)
	if !txt.PointInObject(cad.Pt(0.1, 9.5), nil) {
		t.Error("point inside the text box missed")
	}
	if txt.PointInObject(cad.Pt(0.1, 10.5), nil) {
		t.Error("point above the text box hit")
	}
	checkInRectangle(t, txt, []rectCase{
		{"encloses", cad.NewRect(-1, 8, 10, 3), true, true},
		{"overlaps", cad.NewRect(0.5, 9.5, 10, 3), false, true},
		{"apart", cad.NewRect(0, 0, 1, 1), false, false},
	})
}

func TestTextNormalisesToNFC(t *testing.T) {
	txt := NewText("e\u0301", cad.Pt(0, 0), 1, testBrush)
	if txt.Text() != "\u00e9" {
		t.Errorf("Text() = %q, want composed form", txt.Text())
	}

	commits := 0
	txt.OnEditCommitted(func(cad.EditTransaction) { commits++ })
	txt.SetText("cafe\u0301")
	txt.SetText("caf\u00e9")
	if txt.Text() != "caf\u00e9" || commits != 1 {
		t.Errorf("Text() = %q after %d commits", txt.Text(), commits)
	}
}

func TestTextEditing(t *testing.T) {
	txt := NewText("ab", cad.Pt(0, 0), 1, testBrush)
	commits := 0
	txt.OnEditCommitted(func(cad.EditTransaction) { commits++ })

	e := cad.NewTextInputEvent("c")
	txt.HandleTextInput(e)
	if e.Handled || txt.Text() != "ab" {
		t.Fatal("text changed while not editing")
	}

	txt.SetEditing(true)
	txt.HandleTextInput(cad.NewTextInputEvent("ce\u0301"))
	if txt.Text() != "abc\u00e9" {
		t.Errorf("after typing: %q", txt.Text())
	}

	k := &cad.KeyEvent{Key: "BackSpace"}
	txt.HandleKeyDown(k)
	if !k.Handled || txt.Text() != "abc" {
		t.Errorf("after backspace: %q, handled %v", txt.Text(), k.Handled)
	}

	other := &cad.KeyEvent{Key: "a"}
	txt.HandleKeyDown(other)
	if other.Handled {
		t.Error("plain keys should be left to other handlers")
	}

	txt.HandleKeyDown(&cad.KeyEvent{Key: "Escape"})
	if txt.IsEditing() {
		t.Error("Escape should end editing")
	}
	if commits != 2 {
		t.Errorf("commits = %d, want 2", commits)
	}
}

func TestTextEditingThroughScene(t *testing.T) {
	layer := cad.NewLayer("notes")
	s := cad.NewScene(cad.WithLayers(layer))
	txt := NewText("x", cad.Pt(0, 0), 1, testBrush)
	_ = layer.Add(txt)

	txt.SetSelected(true)
	txt.SetEditing(true)
	s.SetFocused(true)

	if !s.TextInput("yz") {
		t.Error("scene text input not handled by the editing text")
	}
	if !s.KeyDown("Return", 0, false) {
		t.Error("Return not handled")
	}
	if txt.Text() != "xyz" || txt.IsEditing() {
		t.Errorf("text = %q, editing = %v", txt.Text(), txt.IsEditing())
	}
}

func TestTextDraw(t *testing.T) {
	rec, c := newCanvas()
	txt := NewText("Hi", cad.Pt(1, 1), 0.5, testBrush)
	txt.SetSelectionPen(testPen)

	txt.Draw(c)
	if rec.Count(recording.CmdDrawText) != 1 || rec.Count(recording.CmdDrawRectangle) != 0 {
		t.Errorf("unselected text recorded %d commands", len(rec.Commands()))
	}
	cmd := rec.Commands()[0].(recording.DrawTextCommand)
	if cmd.Size != 48 || cmd.Origin != cad.Pt(96, -96) {
		t.Errorf("text drawn as %+v", cmd)
	}

	txt.SetSelected(true)
	rec.Reset()
	txt.Draw(c)
	if rec.Count(recording.CmdDrawRectangle) != 1 {
		t.Error("selected text should be framed")
	}
}
