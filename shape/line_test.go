package shape

import (
	"image/color"
	"testing"

	"github.com/draftline/cad"
	"github.com/draftline/cad/recording"
)

func TestLinePointInObject(t *testing.T) {
	conv := cad.NewConverter()
	l := NewLine(cad.Pt(0, 0), cad.Pt(1, 0), testPen)

	tests := []struct {
		name string
		p    cad.Point
		want bool
	}{
		{"on segment", cad.Pt(0.5, 0), true},
		{"within pick distance", cad.Pt(0.5, pick-0.001), true},
		{"beyond pick distance", cad.Pt(0.5, pick+0.001), false},
		{"past the end", cad.Pt(1+pick-0.001, 0), true},
		{"far", cad.Pt(3, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.PointInObject(tt.p, conv); got != tt.want {
				t.Errorf("PointInObject(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestLineHitToleranceScalesWithZoom(t *testing.T) {
	conv := cad.NewConverter()
	l := NewLine(cad.Pt(0, 0), cad.Pt(1, 0), testPen)
	l.SetHitTolerance(0)
	if l.HitTolerance() != 0 {
		t.Fatalf("HitTolerance() = %v", l.HitTolerance())
	}

	p := cad.Pt(0.5, 0.5/96)
	if !l.PointInObject(p, conv) {
		t.Error("point within half the pen width should hit")
	}
	_ = conv.SetZoom(4)
	if l.PointInObject(p, conv) {
		t.Error("pick distance should shrink in model units when zoomed in")
	}

	l.SetPen(nil)
	if l.PointInObject(cad.Pt(0.5, 0), conv) {
		t.Error("line without a pen should not be pickable")
	}
}

func TestLineObjectInRectangle(t *testing.T) {
	l := NewLine(cad.Pt(0, 0), cad.Pt(1, 0), testPen)
	checkInRectangle(t, l, []rectCase{
		{"encloses", cad.NewRect(-1, -1, 3, 2), true, true},
		{"one end", cad.NewRect(0.5, -1, 2, 2), false, true},
		{"crosses", cad.NewRect(0.4, -0.5, 0.2, 1), false, true},
		{"apart", cad.NewRect(2, 2, 1, 1), false, false},
	})
}

func TestLineDraw(t *testing.T) {
	sel := cad.NewPen(color.White, 3)
	l := NewLine(cad.Pt(0, 0), cad.Pt(1, 1), testPen)
	l.SetSelectionPen(sel)

	rec, c := newCanvas()
	l.Draw(c)
	l.SetSelected(true)
	l.Draw(c)

	cmds := rec.Commands()
	if len(cmds) != 2 {
		t.Fatalf("recorded %d commands, want 2", len(cmds))
	}
	first, second := cmds[0].(recording.DrawLineCommand), cmds[1].(recording.DrawLineCommand)
	if rec.Resources().GetPen(first.Pen) != testPen {
		t.Error("unselected line should use its pen")
	}
	if rec.Resources().GetPen(second.Pen) != sel {
		t.Error("selected line should use the selection pen")
	}
	if second.P1 != cad.Pt(96, -96) {
		t.Errorf("end point drawn at %v, want (96, -96)", second.P1)
	}
}

func TestLineSettersCommit(t *testing.T) {
	l := NewLine(cad.Pt(0, 0), cad.Pt(1, 0), testPen)
	var txs []cad.EditTransaction
	l.OnEditCommitted(func(tx cad.EditTransaction) { txs = append(txs, tx) })

	l.SetStart(cad.Pt(2, 2))
	l.SetStart(cad.Pt(2, 2))
	l.SetEnd(cad.Pt(3, 3))
	if len(txs) != 2 {
		t.Fatalf("committed %d transactions, want 2", len(txs))
	}

	txs[1].Undo()
	txs[0].Undo()
	if l.Start() != cad.Pt(0, 0) || l.End() != cad.Pt(1, 0) {
		t.Errorf("after undo: %v -> %v", l.Start(), l.End())
	}
	txs[0].Redo()
	if l.Start() != cad.Pt(2, 2) {
		t.Errorf("after redo: start = %v", l.Start())
	}
}
