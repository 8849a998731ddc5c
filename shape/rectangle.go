package shape

import (
	"image/color"

	"github.com/draftline/cad"
)

// DefaultSelectionPen outlines selected rectangles.
var DefaultSelectionPen = cad.NewPen(color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}, 2)

// Rectangle is an axis-aligned rectangle with an optional fill.
type Rectangle struct {
	cad.ObjectBase

	rect         cad.Rect
	pen          *cad.Pen
	selectionPen *cad.Pen
	background   *cad.Brush
}

// NewRectangle creates a rectangle outlined with pen. Selected rectangles
// are outlined with DefaultSelectionPen.
func NewRectangle(rect cad.Rect, pen *cad.Pen) *Rectangle {
	r := &Rectangle{rect: rect, pen: pen, selectionPen: DefaultSelectionPen}
	r.Init(r)
	return r
}

// Rect returns the rectangle geometry.
func (r *Rectangle) Rect() cad.Rect { return r.rect }

// SetRect replaces the rectangle geometry.
func (r *Rectangle) SetRect(rect cad.Rect) { cad.SetProperty(r, "Rect", &r.rect, rect) }

// Pen returns the outline pen.
func (r *Rectangle) Pen() *cad.Pen { return r.pen }

// SetPen replaces the outline pen.
func (r *Rectangle) SetPen(pen *cad.Pen) { cad.SetProperty(r, "Pen", &r.pen, pen) }

// SelectionPen returns the outline pen used while selected.
func (r *Rectangle) SelectionPen() *cad.Pen { return r.selectionPen }

// SetSelectionPen replaces the outline pen used while selected. Nil keeps
// the regular pen on selection.
func (r *Rectangle) SetSelectionPen(pen *cad.Pen) {
	cad.SetProperty(r, "SelectionPen", &r.selectionPen, pen)
}

// Background returns the fill brush, or nil.
func (r *Rectangle) Background() *cad.Brush { return r.background }

// SetBackground replaces the fill brush.
func (r *Rectangle) SetBackground(b *cad.Brush) { cad.SetProperty(r, "Background", &r.background, b) }

// Draw fills and outlines the rectangle.
func (r *Rectangle) Draw(c *cad.Canvas) {
	c.DrawRectangle(r.rect, r.background, strokePen(r.IsSelected(), r.pen, r.selectionPen))
}

// BoundingRect returns the rectangle itself.
func (r *Rectangle) BoundingRect() (cad.Rect, bool) { return r.rect, true }

// PointInObject reports whether p lies inside the rectangle, borders
// included.
func (r *Rectangle) PointInObject(p cad.Point, _ *cad.Converter) bool {
	return r.rect.Contains(p)
}

// ObjectInRectangle reports whether all four corners lie in sel or, with
// anyPoint, whether a corner lies in sel or a border crosses it.
func (r *Rectangle) ObjectInRectangle(sel cad.Rect, _ *cad.Converter, anyPoint bool) bool {
	v := r.rect.Vertices()
	if allInside(v[:], sel) {
		return true
	}
	if !anyPoint {
		return false
	}
	b := r.rect.Borders()
	return anyInside(v[:], sel) || segmentsCross(b[:], sel)
}
