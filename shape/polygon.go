package shape

import (
	"slices"

	"github.com/draftline/cad"
)

// Polygon is a closed figure through its vertices with an optional fill.
type Polygon struct {
	cad.ObjectBase
	tolerance

	points       []cad.Point
	pen          *cad.Pen
	selectionPen *cad.Pen
	fill         *cad.Brush
}

// NewPolygon creates a polygon through the given vertices.
func NewPolygon(points []cad.Point, pen *cad.Pen, fill *cad.Brush) *Polygon {
	p := &Polygon{points: slices.Clone(points), pen: pen, fill: fill}
	p.Init(p)
	return p
}

// Points returns a copy of the vertices.
func (p *Polygon) Points() []cad.Point { return slices.Clone(p.points) }

// SetPoints replaces the vertices.
func (p *Polygon) SetPoints(points []cad.Point) {
	cad.SetPropertyFunc(p, "Points", &p.points, slices.Clone(points), slices.Equal[[]cad.Point, cad.Point])
}

// Pen returns the outline pen.
func (p *Polygon) Pen() *cad.Pen { return p.pen }

// SetPen replaces the outline pen.
func (p *Polygon) SetPen(pen *cad.Pen) { cad.SetProperty(p, "Pen", &p.pen, pen) }

// SelectionPen returns the pen used while selected.
func (p *Polygon) SelectionPen() *cad.Pen { return p.selectionPen }

// SetSelectionPen replaces the pen used while selected.
func (p *Polygon) SetSelectionPen(pen *cad.Pen) {
	cad.SetProperty(p, "SelectionPen", &p.selectionPen, pen)
}

// Fill returns the fill brush, or nil.
func (p *Polygon) Fill() *cad.Brush { return p.fill }

// SetFill replaces the fill brush.
func (p *Polygon) SetFill(b *cad.Brush) { cad.SetProperty(p, "Fill", &p.fill, b) }

// Draw fills and outlines the polygon.
func (p *Polygon) Draw(c *cad.Canvas) {
	c.DrawPolygon(p.points, p.fill, strokePen(p.IsSelected(), p.pen, p.selectionPen))
}

// BoundingRect returns the box around the vertices.
func (p *Polygon) BoundingRect() (cad.Rect, bool) { return boundsOf(p.points) }

// PointInObject reports whether pt lies inside a filled polygon or within
// the pick distance of the outline.
func (p *Polygon) PointInObject(pt cad.Point, conv *cad.Converter) bool {
	if p.fill != nil && p.inside(pt) {
		return true
	}
	if p.pen == nil {
		return false
	}
	return nearSegments(polyline(p.points, true), pt, p.model(conv, p.pen))
}

// ObjectInRectangle reports whether every vertex lies in r or, with
// anyPoint, whether the polygon touches r.
func (p *Polygon) ObjectInRectangle(r cad.Rect, _ *cad.Converter, anyPoint bool) bool {
	if allInside(p.points, r) {
		return true
	}
	if !anyPoint {
		return false
	}
	if anyInside(p.points, r) || segmentsCross(polyline(p.points, true), r) {
		return true
	}
	return p.fill != nil && p.inside(r.Center())
}

// inside is the even-odd ray casting test.
func (p *Polygon) inside(pt cad.Point) bool {
	in := false
	n := len(p.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.points[i], p.points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
