package shape

import "github.com/draftline/cad"

// Line is a straight segment between two model points.
type Line struct {
	cad.ObjectBase
	tolerance

	start, end   cad.Point
	pen          *cad.Pen
	selectionPen *cad.Pen
}

// NewLine creates a line from start to end stroked with pen.
func NewLine(start, end cad.Point, pen *cad.Pen) *Line {
	l := &Line{start: start, end: end, pen: pen}
	l.Init(l)
	return l
}

// Start returns the first end point.
func (l *Line) Start() cad.Point { return l.start }

// SetStart moves the first end point.
func (l *Line) SetStart(p cad.Point) { cad.SetProperty(l, "Start", &l.start, p) }

// End returns the second end point.
func (l *Line) End() cad.Point { return l.end }

// SetEnd moves the second end point.
func (l *Line) SetEnd(p cad.Point) { cad.SetProperty(l, "End", &l.end, p) }

// Pen returns the stroke pen. A line without a pen is invisible and cannot
// be picked with a point.
func (l *Line) Pen() *cad.Pen { return l.pen }

// SetPen replaces the stroke pen.
func (l *Line) SetPen(pen *cad.Pen) { cad.SetProperty(l, "Pen", &l.pen, pen) }

// SelectionPen returns the pen used while the line is selected.
func (l *Line) SelectionPen() *cad.Pen { return l.selectionPen }

// SetSelectionPen replaces the pen used while the line is selected.
func (l *Line) SetSelectionPen(pen *cad.Pen) {
	cad.SetProperty(l, "SelectionPen", &l.selectionPen, pen)
}

// Segment returns the line as a geometric segment.
func (l *Line) Segment() cad.Line { return cad.Ln(l.start, l.end) }

// Draw strokes the segment.
func (l *Line) Draw(c *cad.Canvas) {
	c.DrawLine(strokePen(l.IsSelected(), l.pen, l.selectionPen), l.start, l.end)
}

// BoundingRect returns the box spanned by the end points.
func (l *Line) BoundingRect() (cad.Rect, bool) { return l.Segment().Bounds(), true }

// PointInObject reports whether p is within the pick distance of the
// segment.
func (l *Line) PointInObject(p cad.Point, conv *cad.Converter) bool {
	if l.pen == nil {
		return false
	}
	return l.Segment().DistanceTo(p) <= l.model(conv, l.pen)
}

// ObjectInRectangle reports whether both end points lie in r or, with
// anyPoint, whether the segment touches r at all.
func (l *Line) ObjectInRectangle(r cad.Rect, _ *cad.Converter, anyPoint bool) bool {
	pts := []cad.Point{l.start, l.end}
	if allInside(pts, r) {
		return true
	}
	if !anyPoint {
		return false
	}
	return anyInside(pts, r) || segmentsCross([]cad.Line{l.Segment()}, r)
}
