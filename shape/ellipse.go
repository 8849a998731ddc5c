package shape

import (
	"math"

	"github.com/draftline/cad"
)

// Ellipse is an axis-aligned ellipse. With RadiusX equal to RadiusY it is a
// circle.
type Ellipse struct {
	cad.ObjectBase
	tolerance

	center       cad.Point
	rx, ry       float64
	pen          *cad.Pen
	selectionPen *cad.Pen
	fill         *cad.Brush
}

// NewEllipse creates an ellipse outlined with pen.
func NewEllipse(center cad.Point, rx, ry float64, pen *cad.Pen) *Ellipse {
	e := &Ellipse{center: center, rx: rx, ry: ry, pen: pen}
	e.Init(e)
	return e
}

// NewCircle creates a circle outlined with pen.
func NewCircle(center cad.Point, radius float64, pen *cad.Pen) *Ellipse {
	return NewEllipse(center, radius, radius, pen)
}

// Center returns the ellipse center.
func (e *Ellipse) Center() cad.Point { return e.center }

// SetCenter moves the ellipse.
func (e *Ellipse) SetCenter(p cad.Point) { cad.SetProperty(e, "Center", &e.center, p) }

// RadiusX returns the horizontal radius.
func (e *Ellipse) RadiusX() float64 { return e.rx }

// SetRadiusX changes the horizontal radius.
func (e *Ellipse) SetRadiusX(r float64) { cad.SetProperty(e, "RadiusX", &e.rx, r) }

// RadiusY returns the vertical radius.
func (e *Ellipse) RadiusY() float64 { return e.ry }

// SetRadiusY changes the vertical radius.
func (e *Ellipse) SetRadiusY(r float64) { cad.SetProperty(e, "RadiusY", &e.ry, r) }

// Pen returns the outline pen.
func (e *Ellipse) Pen() *cad.Pen { return e.pen }

// SetPen replaces the outline pen.
func (e *Ellipse) SetPen(pen *cad.Pen) { cad.SetProperty(e, "Pen", &e.pen, pen) }

// SelectionPen returns the pen used while selected.
func (e *Ellipse) SelectionPen() *cad.Pen { return e.selectionPen }

// SetSelectionPen replaces the pen used while selected.
func (e *Ellipse) SetSelectionPen(pen *cad.Pen) {
	cad.SetProperty(e, "SelectionPen", &e.selectionPen, pen)
}

// Fill returns the fill brush, or nil.
func (e *Ellipse) Fill() *cad.Brush { return e.fill }

// SetFill replaces the fill brush.
func (e *Ellipse) SetFill(b *cad.Brush) { cad.SetProperty(e, "Fill", &e.fill, b) }

// Draw fills and outlines the ellipse.
func (e *Ellipse) Draw(c *cad.Canvas) {
	c.DrawEllipse(e.fill, strokePen(e.IsSelected(), e.pen, e.selectionPen), e.center, e.rx, e.ry)
}

// BoundingRect returns the box around the ellipse.
func (e *Ellipse) BoundingRect() (cad.Rect, bool) {
	return cad.NewRect(e.center.X-e.rx, e.center.Y-e.ry, 2*e.rx, 2*e.ry), true
}

// PointInObject reports whether p lies inside a filled ellipse or within
// the pick distance of the outline.
func (e *Ellipse) PointInObject(p cad.Point, conv *cad.Converter) bool {
	if e.rx <= 0 || e.ry <= 0 {
		return false
	}
	if e.fill != nil && e.inside(p) {
		return true
	}
	dx, dy := (p.X-e.center.X)/e.rx, (p.Y-e.center.Y)/e.ry
	k := math.Hypot(dx, dy)
	if e.pen == nil {
		return false
	}
	// Radial distance to the outline, exact for circles.
	r := math.Min(e.rx, e.ry)
	if k > 0 {
		r = math.Hypot(dx*e.rx, dy*e.ry) / k
	}
	return math.Abs(k-1)*r <= e.model(conv, e.pen)
}

// ObjectInRectangle reports whether the ellipse lies in r or, with anyPoint,
// whether its outline touches r.
func (e *Ellipse) ObjectInRectangle(r cad.Rect, _ *cad.Converter, anyPoint bool) bool {
	if b, _ := e.BoundingRect(); r.ContainsRect(b) {
		return true
	}
	if !anyPoint {
		return false
	}
	pts := e.outline()
	if anyInside(pts, r) || segmentsCross(polyline(pts, true), r) {
		return true
	}
	// A filled ellipse also counts when r lies entirely inside it.
	return e.fill != nil && e.inside(r.Center())
}

// inside reports whether p lies in the ellipse area.
func (e *Ellipse) inside(p cad.Point) bool {
	if e.rx <= 0 || e.ry <= 0 {
		return false
	}
	dx, dy := (p.X-e.center.X)/e.rx, (p.Y-e.center.Y)/e.ry
	return dx*dx+dy*dy <= 1
}

func (e *Ellipse) outline() []cad.Point {
	pts := make([]cad.Point, 0, curveSteps)
	for i := range curveSteps {
		t := 2 * math.Pi * float64(i) / curveSteps
		pts = append(pts, cad.Pt(e.center.X+e.rx*math.Cos(t), e.center.Y+e.ry*math.Sin(t)))
	}
	return pts
}
