package shape

import (
	"testing"

	"github.com/draftline/cad"
)

func TestCurveFlatten(t *testing.T) {
	c := NewCurve([]cad.Point{cad.Pt(0, 0), cad.Pt(1, 1), cad.Pt(2, 1), cad.Pt(3, 0)}, testPen)
	pts := c.flatten()
	if want := 1 + 2*curveSteps/4; len(pts) != want {
		t.Fatalf("flatten() returned %d points, want %d", len(pts), want)
	}
	if pts[0] != cad.Pt(0, 0) || pts[len(pts)-1] != cad.Pt(3, 0) {
		t.Errorf("flatten() runs %v -> %v", pts[0], pts[len(pts)-1])
	}
	if NewCurve(nil, testPen).flatten() != nil {
		t.Error("empty curve should flatten to nothing")
	}
}

func TestCurvePointInObject(t *testing.T) {
	conv := cad.NewConverter()
	c := NewCurve([]cad.Point{cad.Pt(0, 0), cad.Pt(1, 1), cad.Pt(2, 1)}, testPen)

	tests := []struct {
		name string
		p    cad.Point
		want bool
	}{
		// The midpoint of the cubic (0,0) (0,0) (1,1) (2,1).
		{"midpoint", cad.Pt(0.625, 0.5), true},
		{"end", cad.Pt(2, 1), true},
		{"below", cad.Pt(1.5, 0), false},
		{"control hull corner", cad.Pt(2, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.PointInObject(tt.p, conv); got != tt.want {
				t.Errorf("PointInObject(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCurveObjectInRectangle(t *testing.T) {
	c := NewCurve([]cad.Point{cad.Pt(0, 0), cad.Pt(1, 1), cad.Pt(2, 1)}, testPen)
	checkInRectangle(t, c, []rectCase{
		{"encloses", cad.NewRect(-0.5, -0.5, 3, 2), true, true},
		{"end only", cad.NewRect(1.5, 0.5, 1, 1), false, true},
		{"apart", cad.NewRect(5, 5, 1, 1), false, false},
	})
}

func TestCurveSetPoints(t *testing.T) {
	pts := []cad.Point{cad.Pt(0, 0), cad.Pt(1, 1)}
	c := NewCurve(pts, testPen)
	pts[0] = cad.Pt(9, 9)
	if c.Points()[0] != cad.Pt(0, 0) {
		t.Error("NewCurve kept a reference to the caller's slice")
	}

	commits := 0
	c.OnEditCommitted(func(cad.EditTransaction) { commits++ })
	c.SetPoints([]cad.Point{cad.Pt(0, 0), cad.Pt(1, 1)})
	if commits != 0 {
		t.Error("equal points committed an edit")
	}
	c.SetPoints([]cad.Point{cad.Pt(0, 0), cad.Pt(2, 2)})
	if commits != 1 {
		t.Errorf("commits = %d, want 1", commits)
	}
	if b, _ := c.BoundingRect(); b != cad.NewRect(0, 0, 2, 2) {
		t.Errorf("BoundingRect() = %v", b)
	}
}
