package shape

import (
	"slices"

	"github.com/draftline/cad"
)

// Curve is an open chain of cubic Bezier segments. The first point starts
// the figure and doubles as its first control point; points are then taken
// three at a time as control, control and end point, the last point
// repeated to fill a short tail.
type Curve struct {
	cad.ObjectBase
	tolerance

	points       []cad.Point
	pen          *cad.Pen
	selectionPen *cad.Pen
}

// NewCurve creates a curve through the given control points.
func NewCurve(points []cad.Point, pen *cad.Pen) *Curve {
	c := &Curve{points: slices.Clone(points), pen: pen}
	c.Init(c)
	return c
}

// Points returns a copy of the control points.
func (c *Curve) Points() []cad.Point { return slices.Clone(c.points) }

// SetPoints replaces the control points.
func (c *Curve) SetPoints(points []cad.Point) {
	cad.SetPropertyFunc(c, "Points", &c.points, slices.Clone(points), slices.Equal[[]cad.Point, cad.Point])
}

// Pen returns the stroke pen.
func (c *Curve) Pen() *cad.Pen { return c.pen }

// SetPen replaces the stroke pen.
func (c *Curve) SetPen(pen *cad.Pen) { cad.SetProperty(c, "Pen", &c.pen, pen) }

// SelectionPen returns the pen used while selected.
func (c *Curve) SelectionPen() *cad.Pen { return c.selectionPen }

// SetSelectionPen replaces the pen used while selected.
func (c *Curve) SetSelectionPen(pen *cad.Pen) {
	cad.SetProperty(c, "SelectionPen", &c.selectionPen, pen)
}

// Draw strokes the curve.
func (c *Curve) Draw(cv *cad.Canvas) {
	cv.DrawCurve(strokePen(c.IsSelected(), c.pen, c.selectionPen), c.points)
}

// BoundingRect returns the box around the control points, which contains
// the curve.
func (c *Curve) BoundingRect() (cad.Rect, bool) { return boundsOf(c.points) }

// PointInObject reports whether p is within the pick distance of the curve.
func (c *Curve) PointInObject(p cad.Point, conv *cad.Converter) bool {
	if c.pen == nil || len(c.points) == 0 {
		return false
	}
	return nearSegments(polyline(c.flatten(), false), p, c.model(conv, c.pen))
}

// ObjectInRectangle reports whether the whole curve lies in r or, with
// anyPoint, whether it touches r.
func (c *Curve) ObjectInRectangle(r cad.Rect, _ *cad.Converter, anyPoint bool) bool {
	pts := c.flatten()
	if allInside(pts, r) {
		return true
	}
	if !anyPoint {
		return false
	}
	return anyInside(pts, r) || segmentsCross(polyline(pts, false), r)
}

// flatten samples the curve into a polyline using the same control layout
// as cad.CurvePath.
func (c *Curve) flatten() []cad.Point {
	if len(c.points) == 0 {
		return nil
	}
	ctrl := slices.Clone(c.points)
	last := ctrl[len(ctrl)-1]
	for len(ctrl)%3 != 0 {
		ctrl = append(ctrl, last)
	}
	pts := []cad.Point{ctrl[0]}
	cur := ctrl[0]
	const steps = curveSteps / 4
	for i := 0; i+2 < len(ctrl); i += 3 {
		for s := 1; s <= steps; s++ {
			pts = append(pts, cubicPoint(cur, ctrl[i], ctrl[i+1], ctrl[i+2], float64(s)/steps))
		}
		cur = ctrl[i+2]
	}
	return pts
}
