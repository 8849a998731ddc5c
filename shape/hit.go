package shape

import (
	"math"

	"github.com/draftline/cad"
)

// DefaultHitTolerance is the pick distance, in pixels, around outlines.
const DefaultHitTolerance = 4.0

// curveSteps is the number of straight pieces a curved outline is split
// into for hit-testing.
const curveSteps = 32

// tolerance holds a shape's pick distance in pixels.
type tolerance struct {
	px    float64
	isSet bool
}

// HitTolerance returns the pick distance in pixels.
func (t *tolerance) HitTolerance() float64 {
	if !t.isSet {
		return DefaultHitTolerance
	}
	return t.px
}

// SetHitTolerance sets the pick distance in pixels. Negative values are
// treated as zero.
func (t *tolerance) SetHitTolerance(px float64) {
	t.px = math.Max(px, 0)
	t.isSet = true
}

// model returns the pick distance in model units for a stroke drawn with
// pen.
func (t *tolerance) model(conv *cad.Converter, pen *cad.Pen) float64 {
	px := t.HitTolerance()
	if pen != nil {
		px += pen.Thickness / 2
	}
	return conv.ToCadLength(px)
}

// strokePen picks the pen to draw with: the selection pen while selected,
// if there is one.
func strokePen(selected bool, pen, selectionPen *cad.Pen) *cad.Pen {
	if selected && selectionPen != nil {
		return selectionPen
	}
	return pen
}

// segmentsCross reports whether any segment crosses any border of r.
func segmentsCross(segs []cad.Line, r cad.Rect) bool {
	borders := r.Borders()
	for _, s := range segs {
		for _, b := range borders {
			if _, ok := s.Intersect(b); ok {
				return true
			}
		}
	}
	return false
}

// allInside reports whether every point lies in r. An empty set is not
// inside anything.
func allInside(pts []cad.Point, r cad.Rect) bool {
	if len(pts) == 0 {
		return false
	}
	for _, p := range pts {
		if !r.Contains(p) {
			return false
		}
	}
	return true
}

// anyInside reports whether at least one point lies in r.
func anyInside(pts []cad.Point, r cad.Rect) bool {
	for _, p := range pts {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// nearSegments reports whether p is within d of any segment.
func nearSegments(segs []cad.Line, p cad.Point, d float64) bool {
	for _, s := range segs {
		if s.DistanceTo(p) <= d {
			return true
		}
	}
	return false
}

// polyline joins consecutive points into segments. With closed set the
// last point is joined back to the first.
func polyline(pts []cad.Point, closed bool) []cad.Line {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]cad.Line, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		segs = append(segs, cad.Ln(pts[i-1], pts[i]))
	}
	if closed && len(pts) > 2 {
		segs = append(segs, cad.Ln(pts[len(pts)-1], pts[0]))
	}
	return segs
}

// boundsOf returns the bounding rectangle of a point set.
func boundsOf(pts []cad.Point) (cad.Rect, bool) {
	if len(pts) == 0 {
		return cad.Rect{}, false
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return cad.RectFromPoints(cad.Pt(minX, minY), cad.Pt(maxX, maxY)), true
}

// cubicPoint evaluates a cubic Bezier curve at t.
func cubicPoint(p0, p1, p2, p3 cad.Point, t float64) cad.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return cad.Pt(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}
