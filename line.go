package cad

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Line is a segment between two model points.
type Line struct {
	Start, End Point
}

// Ln is a convenience function to create a Line.
func Ln(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Bounds returns the bounding rectangle of the segment.
func (l Line) Bounds() Rect {
	return RectFromPoints(l.Start, l.End)
}

// Intersect returns the point where two segments cross. Endpoints touching
// count as an intersection. Parallel and zero-length segments report no
// intersection.
func (l Line) Intersect(o Line) (Point, bool) {
	p, q := l.Start.vec(), o.Start.vec()
	r := r2.Sub(l.End.vec(), p)
	s := r2.Sub(o.End.vec(), q)

	denom := r2.Cross(r, s)
	if denom == 0 {
		return Point{}, false
	}

	qp := r2.Sub(q, p)
	t := r2.Cross(qp, s) / denom
	u := r2.Cross(qp, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return fromVec(r2.Add(p, r2.Scale(t, r))), true
}

// DistanceTo returns the shortest distance from p to the segment.
func (l Line) DistanceTo(p Point) float64 {
	a, b, v := l.Start.vec(), l.End.vec(), p.vec()
	ab := r2.Sub(b, a)
	lenSq := r2.Dot(ab, ab)
	if lenSq == 0 {
		return r2.Norm(r2.Sub(v, a))
	}
	t := r2.Dot(r2.Sub(v, a), ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return r2.Norm(r2.Sub(v, r2.Add(a, r2.Scale(t, ab))))
}
