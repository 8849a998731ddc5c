// Package history keeps undo and redo stacks of committed edits.
//
// A Stack is fed with cad.EditTransaction values, typically by watching a
// scene:
//
//	h := history.New(history.WithLimit(100))
//	defer h.Watch(scene)()
//
//	rect.SetRect(r) // recorded
//	_ = h.Undo()    // rect is back where it was
package history

import (
	"errors"
	"slices"

	"github.com/draftline/cad"
)

// Sentinel errors.
var (
	ErrNothingToUndo = errors.New("history: nothing to undo")
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// Stack is an undo/redo history. The zero value is an empty, unbounded
// stack. A Stack is not safe for concurrent use.
type Stack struct {
	undo  []cad.EditTransaction
	redo  []cad.EditTransaction
	limit int

	group     Group
	grouping  int
	replaying bool
}

// Option configures a Stack.
type Option func(*Stack)

// WithLimit bounds the number of undo steps kept. The oldest steps are
// dropped first. Zero or less means unbounded.
func WithLimit(n int) Option {
	return func(s *Stack) {
		if n > 0 {
			s.limit = n
		}
	}
}

// New creates an empty stack.
func New(opts ...Option) *Stack {
	s := &Stack{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push records a committed edit and discards the redo history. Edits
// committed while an Undo or Redo is being applied are ignored.
func (s *Stack) Push(tx cad.EditTransaction) {
	if tx == nil || s.replaying {
		return
	}
	if s.grouping > 0 {
		s.group = append(s.group, tx)
		return
	}
	s.push(tx)
}

func (s *Stack) push(tx cad.EditTransaction) {
	s.undo = append(s.undo, tx)
	if s.limit > 0 && len(s.undo) > s.limit {
		s.undo = slices.Delete(s.undo, 0, len(s.undo)-s.limit)
	}
	s.redo = s.redo[:0]
}

// Undo reverts the most recent edit.
func (s *Stack) Undo() error {
	if len(s.undo) == 0 {
		return ErrNothingToUndo
	}
	tx := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.replay(tx.Undo)
	s.redo = append(s.redo, tx)
	cad.Logger().Debug("history: undo", "undo", len(s.undo), "redo", len(s.redo))
	return nil
}

// Redo re-applies the most recently undone edit.
func (s *Stack) Redo() error {
	if len(s.redo) == 0 {
		return ErrNothingToRedo
	}
	tx := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.replay(tx.Redo)
	s.undo = append(s.undo, tx)
	cad.Logger().Debug("history: redo", "undo", len(s.undo), "redo", len(s.redo))
	return nil
}

func (s *Stack) replay(fn func()) {
	s.replaying = true
	defer func() { s.replaying = false }()
	fn()
}

// CanUndo reports whether Undo has something to revert.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo has something to re-apply.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// UndoLen returns the number of undo steps.
func (s *Stack) UndoLen() int { return len(s.undo) }

// RedoLen returns the number of redo steps.
func (s *Stack) RedoLen() int { return len(s.redo) }

// Clear drops both histories.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}

// Batch runs fn and records every edit it commits as a single step.
// Batches nest; only the outermost one pushes. A batch without edits
// records nothing.
func (s *Stack) Batch(fn func()) {
	s.grouping++
	defer func() {
		s.grouping--
		if s.grouping > 0 || len(s.group) == 0 {
			return
		}
		g := s.group
		s.group = nil
		if len(g) == 1 {
			s.push(g[0])
			return
		}
		s.push(g)
	}()
	fn()
}

// Watch records every edit committed in the scene until the returned
// function is called.
func (s *Stack) Watch(scene *cad.Scene) (unsubscribe func()) {
	return scene.OnEditCommitted(func(e cad.ObjectEdit) {
		s.Push(e.Transaction)
	})
}

// Group is a sequence of edits undone and redone as one.
type Group []cad.EditTransaction

// Undo reverts the edits last to first.
func (g Group) Undo() {
	for _, tx := range slices.Backward(g) {
		tx.Undo()
	}
}

// Redo re-applies the edits first to last.
func (g Group) Redo() {
	for _, tx := range g {
		tx.Redo()
	}
}
