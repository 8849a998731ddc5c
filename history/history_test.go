package history

import (
	"errors"
	"slices"
	"testing"

	"github.com/draftline/cad"
	"github.com/draftline/cad/shape"
)

// counter is an edit that moves an int by a fixed step.
type counter struct {
	v    *int
	step int
	log  *[]string
	name string
}

func (c counter) Undo() {
	*c.v -= c.step
	if c.log != nil {
		*c.log = append(*c.log, "undo "+c.name)
	}
}

func (c counter) Redo() {
	*c.v += c.step
	if c.log != nil {
		*c.log = append(*c.log, "redo "+c.name)
	}
}

func TestUndoRedo(t *testing.T) {
	v := 0
	s := New()
	for _, step := range []int{1, 10, 100} {
		v += step
		s.Push(counter{v: &v, step: step})
	}

	if err := s.Undo(); err != nil || v != 11 {
		t.Fatalf("Undo() = %v, v = %d", err, v)
	}
	if err := s.Undo(); err != nil || v != 1 {
		t.Fatalf("Undo() = %v, v = %d", err, v)
	}
	if err := s.Redo(); err != nil || v != 11 {
		t.Fatalf("Redo() = %v, v = %d", err, v)
	}
	if s.UndoLen() != 2 || s.RedoLen() != 1 {
		t.Errorf("lens = %d/%d, want 2/1", s.UndoLen(), s.RedoLen())
	}

	v += 1000
	s.Push(counter{v: &v, step: 1000})
	if s.CanRedo() {
		t.Error("a new edit should discard the redo history")
	}
	if err := s.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() = %v, want ErrNothingToRedo", err)
	}
}

func TestEmptyStack(t *testing.T) {
	var s Stack
	if err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() = %v, want ErrNothingToUndo", err)
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("zero stack reports history")
	}
	s.Push(nil)
	if s.CanUndo() {
		t.Error("nil edit recorded")
	}
}

func TestWithLimit(t *testing.T) {
	v := 0
	s := New(WithLimit(2))
	for i := range 5 {
		v += i
		s.Push(counter{v: &v, step: i})
	}
	if s.UndoLen() != 2 {
		t.Fatalf("UndoLen() = %d, want 2", s.UndoLen())
	}
	_ = s.Undo()
	_ = s.Undo()
	if v != 0+1+2 {
		t.Errorf("v = %d after undoing the kept steps, want 3", v)
	}

	s.Clear()
	if s.CanUndo() || s.CanRedo() {
		t.Error("Clear left history")
	}
}

func TestBatch(t *testing.T) {
	v := 0
	var log []string
	s := New()

	s.Batch(func() {
		v++
		s.Push(counter{v: &v, step: 1, log: &log, name: "a"})
		s.Batch(func() {
			v += 2
			s.Push(counter{v: &v, step: 2, log: &log, name: "b"})
		})
		v += 4
		s.Push(counter{v: &v, step: 4, log: &log, name: "c"})
	})
	if s.UndoLen() != 1 {
		t.Fatalf("UndoLen() = %d, want one grouped step", s.UndoLen())
	}

	_ = s.Undo()
	if v != 0 {
		t.Errorf("v = %d after undoing the batch", v)
	}
	_ = s.Redo()
	if v != 7 {
		t.Errorf("v = %d after redoing the batch", v)
	}
	want := []string{"undo c", "undo b", "undo a", "redo a", "redo b", "redo c"}
	if !slices.Equal(log, want) {
		t.Errorf("replay order = %v, want %v", log, want)
	}

	s.Batch(func() {})
	if s.UndoLen() != 1 {
		t.Error("empty batch recorded a step")
	}
	s.Batch(func() { s.Push(counter{v: &v, step: 0}) })
	if _, grouped := s.undo[len(s.undo)-1].(Group); grouped {
		t.Error("single edit batch should not be wrapped in a group")
	}
}

func TestWatchScene(t *testing.T) {
	layer := cad.NewLayer("main")
	scene := cad.NewScene(cad.WithLayers(layer))
	r := shape.NewRectangle(cad.NewRect(0, 0, 1, 1), nil)
	_ = layer.Add(r)

	s := New()
	unwatch := s.Watch(scene)

	r.SetRect(cad.NewRect(1, 1, 1, 1))
	r.SetRect(cad.NewRect(2, 2, 1, 1))
	if s.UndoLen() != 2 {
		t.Fatalf("UndoLen() = %d, want 2", s.UndoLen())
	}

	_ = s.Undo()
	if r.Rect() != cad.NewRect(1, 1, 1, 1) {
		t.Errorf("after undo: %v", r.Rect())
	}
	if s.UndoLen() != 1 || s.RedoLen() != 1 {
		t.Errorf("undo replay was recorded: lens %d/%d", s.UndoLen(), s.RedoLen())
	}
	_ = s.Redo()
	if r.Rect() != cad.NewRect(2, 2, 1, 1) {
		t.Errorf("after redo: %v", r.Rect())
	}

	unwatch()
	r.SetRect(cad.NewRect(3, 3, 1, 1))
	if s.UndoLen() != 2 {
		t.Error("edits recorded after unwatch")
	}
}
