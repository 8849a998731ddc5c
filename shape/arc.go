package shape

import (
	"math"

	"github.com/draftline/cad"
)

// Arc is a circular arc around Center. It starts at angle Begin (radians,
// counterclockwise from the +X axis) and sweeps Sweep radians; a negative
// sweep runs clockwise.
type Arc struct {
	cad.ObjectBase
	tolerance

	center       cad.Point
	radius       float64
	begin        float64
	sweep        float64
	pen          *cad.Pen
	selectionPen *cad.Pen
}

// NewArc creates an arc stroked with pen.
func NewArc(center cad.Point, radius, begin, sweep float64, pen *cad.Pen) *Arc {
	a := &Arc{center: center, radius: radius, begin: begin, sweep: sweep, pen: pen}
	a.Init(a)
	return a
}

// Center returns the arc center.
func (a *Arc) Center() cad.Point { return a.center }

// SetCenter moves the arc.
func (a *Arc) SetCenter(p cad.Point) { cad.SetProperty(a, "Center", &a.center, p) }

// Radius returns the arc radius.
func (a *Arc) Radius() float64 { return a.radius }

// SetRadius changes the radius.
func (a *Arc) SetRadius(r float64) { cad.SetProperty(a, "Radius", &a.radius, r) }

// Begin returns the start angle in radians.
func (a *Arc) Begin() float64 { return a.begin }

// SetBegin changes the start angle.
func (a *Arc) SetBegin(angle float64) { cad.SetProperty(a, "Begin", &a.begin, angle) }

// Sweep returns the signed sweep in radians.
func (a *Arc) Sweep() float64 { return a.sweep }

// SetSweep changes the sweep.
func (a *Arc) SetSweep(angle float64) { cad.SetProperty(a, "Sweep", &a.sweep, angle) }

// Pen returns the stroke pen.
func (a *Arc) Pen() *cad.Pen { return a.pen }

// SetPen replaces the stroke pen.
func (a *Arc) SetPen(pen *cad.Pen) { cad.SetProperty(a, "Pen", &a.pen, pen) }

// SelectionPen returns the pen used while selected.
func (a *Arc) SelectionPen() *cad.Pen { return a.selectionPen }

// SetSelectionPen replaces the pen used while selected.
func (a *Arc) SetSelectionPen(pen *cad.Pen) {
	cad.SetProperty(a, "SelectionPen", &a.selectionPen, pen)
}

// StartPoint returns the point at the begin angle.
func (a *Arc) StartPoint() cad.Point { return a.pointAt(a.begin) }

// EndPoint returns the point at the end of the sweep.
func (a *Arc) EndPoint() cad.Point { return a.pointAt(a.begin + a.sweep) }

func (a *Arc) pointAt(angle float64) cad.Point {
	return cad.Pt(a.center.X+a.radius*math.Cos(angle), a.center.Y+a.radius*math.Sin(angle))
}

// span returns the arc as a counterclockwise range [from, from+length].
func (a *Arc) span() (from, length float64) {
	length = math.Min(math.Abs(a.sweep), 2*math.Pi)
	from = a.begin
	if a.sweep < 0 {
		from += a.sweep
	}
	return from, length
}

// covers reports whether the direction angle lies on the arc.
func (a *Arc) covers(angle float64) bool {
	from, length := a.span()
	d := math.Mod(angle-from, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= length+1e-12
}

// Draw strokes the arc. Sweeps of half a turn or more are drawn as two
// halves so each piece is a small arc.
func (a *Arc) Draw(c *cad.Canvas) {
	pen := strokePen(a.IsSelected(), a.pen, a.selectionPen)
	if pen == nil || a.sweep == 0 {
		return
	}
	if math.Abs(a.sweep) < math.Pi {
		c.DrawArc(pen, a.center, a.radius, a.begin, a.sweep, true)
		return
	}
	half := a.sweep / 2
	c.DrawArc(pen, a.center, a.radius, a.begin, half, true)
	c.DrawArc(pen, a.center, a.radius, a.begin+half, half, true)
}

// BoundingRect returns the box around the end points and every axis
// extreme the sweep passes through.
func (a *Arc) BoundingRect() (cad.Rect, bool) {
	pts := []cad.Point{a.StartPoint(), a.EndPoint()}
	for k := range 4 {
		angle := float64(k) * math.Pi / 2
		if a.covers(angle) {
			pts = append(pts, a.pointAt(angle))
		}
	}
	return boundsOf(pts)
}

// PointInObject reports whether p lies within the pick distance of the
// arc outline.
func (a *Arc) PointInObject(p cad.Point, conv *cad.Converter) bool {
	if a.pen == nil {
		return false
	}
	d := a.model(conv, a.pen)
	if math.Abs(p.Distance(a.center)-a.radius) <= d &&
		a.covers(math.Atan2(p.Y-a.center.Y, p.X-a.center.X)) {
		return true
	}
	// Round caps at the end points.
	return p.Distance(a.StartPoint()) <= d || p.Distance(a.EndPoint()) <= d
}

// ObjectInRectangle reports whether the whole arc lies in r or, with
// anyPoint, whether the arc touches r.
func (a *Arc) ObjectInRectangle(r cad.Rect, _ *cad.Converter, anyPoint bool) bool {
	if b, ok := a.BoundingRect(); ok && r.ContainsRect(b) {
		return true
	}
	if !anyPoint {
		return false
	}
	pts := a.outline()
	return anyInside(pts, r) || segmentsCross(polyline(pts, false), r)
}

// outline approximates the arc with points along the sweep.
func (a *Arc) outline() []cad.Point {
	pts := make([]cad.Point, 0, curveSteps+1)
	for i := range curveSteps + 1 {
		pts = append(pts, a.pointAt(a.begin+a.sweep*float64(i)/curveSteps))
	}
	return pts
}
