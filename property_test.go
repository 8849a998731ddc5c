package cad

import (
	"slices"
	"testing"
)

func TestSetPropertyCommits(t *testing.T) {
	b := newBox(NewRect(0, 0, 1, 1))
	var log []string
	var txs []EditTransaction
	b.OnVisualChanged(func() { log = append(log, "visual") })
	b.OnEditCommitted(func(tx EditTransaction) {
		log = append(log, "edit")
		txs = append(txs, tx)
	})

	b.SetRect(NewRect(1, 1, 2, 2))

	if want := []string{"visual", "edit"}; !slices.Equal(log, want) {
		t.Fatalf("notifications = %v, want %v", log, want)
	}
	edit, ok := txs[0].(*PropertyEdit[Rect])
	if !ok {
		t.Fatalf("transaction = %T, want *PropertyEdit[Rect]", txs[0])
	}
	if edit.Property != "Rect" || edit.Old != NewRect(0, 0, 1, 1) || edit.New != NewRect(1, 1, 2, 2) {
		t.Errorf("edit = %+v", edit)
	}
	if edit.Target != b {
		t.Error("edit target is not the object")
	}
}

func TestSetPropertyUndoRedo(t *testing.T) {
	b := newBox(NewRect(0, 0, 1, 1))
	var tx EditTransaction
	b.OnEditCommitted(func(e EditTransaction) { tx = e })
	b.SetRect(NewRect(5, 5, 1, 1))

	visuals := 0
	b.OnVisualChanged(func() { visuals++ })

	tx.Undo()
	if b.rect != NewRect(0, 0, 1, 1) {
		t.Errorf("after Undo rect = %+v", b.rect)
	}
	tx.Redo()
	if b.rect != NewRect(5, 5, 1, 1) {
		t.Errorf("after Redo rect = %+v", b.rect)
	}
	if visuals != 2 {
		t.Errorf("visual notifications = %d, want one per Undo and Redo", visuals)
	}
}

func TestSetPropertyUnchanged(t *testing.T) {
	b := newBox(NewRect(0, 0, 1, 1))
	events := 0
	b.OnVisualChanged(func() { events++ })
	b.OnEditCommitted(func(EditTransaction) { events++ })

	if SetProperty(b, "Rect", &b.rect, NewRect(0, 0, 1, 1)) {
		t.Error("SetProperty reported a change for an equal value")
	}
	if events != 0 {
		t.Errorf("events = %d, want 0", events)
	}
}

func TestSetPropertyOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []PropertyOption
		wantVisual int
		wantEdits  int
	}{
		{"default", nil, 1, 1},
		{"without transaction", []PropertyOption{WithoutTransaction()}, 1, 0},
		{"without visual change", []PropertyOption{WithoutVisualChange()}, 0, 1},
		{"neither", []PropertyOption{WithoutTransaction(), WithoutVisualChange()}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBox(Rect{})
			visual, edits := 0, 0
			b.OnVisualChanged(func() { visual++ })
			b.OnEditCommitted(func(EditTransaction) { edits++ })

			if !SetProperty(b, "Rect", &b.rect, NewRect(1, 2, 3, 4), tt.opts...) {
				t.Fatal("SetProperty reported no change")
			}
			if visual != tt.wantVisual || edits != tt.wantEdits {
				t.Errorf("visual = %d, edits = %d, want %d, %d", visual, edits, tt.wantVisual, tt.wantEdits)
			}
		})
	}
}

func TestSetPropertyFuncSlices(t *testing.T) {
	b := newBox(Rect{})
	pts := []Point{Pt(0, 0)}
	var tx EditTransaction
	b.OnEditCommitted(func(e EditTransaction) { tx = e })

	if SetPropertyFunc(b, "Points", &pts, []Point{Pt(0, 0)}, slices.Equal[[]Point, Point]) {
		t.Error("equal slices reported as a change")
	}
	if !SetPropertyFunc(b, "Points", &pts, []Point{Pt(1, 1), Pt(2, 2)}, slices.Equal[[]Point, Point]) {
		t.Fatal("different slices reported as unchanged")
	}
	tx.Undo()
	if !slices.Equal(pts, []Point{Pt(0, 0)}) {
		t.Errorf("after Undo points = %v", pts)
	}
}
