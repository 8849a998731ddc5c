package ggrender

import (
	"math"

	"github.com/draftline/cad"
)

// arcCenter converts an endpoint arc from p0 into center form. sweep is
// the on-screen direction with Y pointing down, so Clockwise runs toward
// increasing angles. The radius grows when it is too small to span the
// chord. ok is false for a degenerate arc.
func arcCenter(p0 cad.Point, a cad.ArcTo) (center cad.Point, radius, theta, delta float64, ok bool) {
	p1 := a.Point
	radius = math.Abs(a.Radius)
	if radius == 0 || p0.Approx(p1, 1e-9) {
		return cad.Point{}, 0, 0, 0, false
	}

	// Half chord in a frame centred on the chord midpoint.
	hx, hy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	d2 := hx*hx + hy*hy
	if lambda := d2 / (radius * radius); lambda > 1 {
		radius *= math.Sqrt(lambda)
	}

	clockwise := a.Sweep == cad.Clockwise
	coef := math.Sqrt(math.Max(0, (radius*radius-d2)/d2))
	if a.LargeArc == clockwise {
		coef = -coef
	}
	cx, cy := coef*hy, -coef*hx
	center = cad.Pt(cx+(p0.X+p1.X)/2, cy+(p0.Y+p1.Y)/2)

	theta = math.Atan2((hy-cy)/radius, (hx-cx)/radius)
	delta = math.Atan2((-hy-cy)/radius, (-hx-cx)/radius) - theta
	switch {
	case clockwise && delta < 0:
		delta += 2 * math.Pi
	case !clockwise && delta > 0:
		delta -= 2 * math.Pi
	}
	return center, radius, theta, delta, true
}

// arcToCubics approximates an endpoint arc with cubic Bezier segments of
// at most a quarter turn each. A degenerate arc becomes a straight line.
func arcToCubics(p0 cad.Point, a cad.ArcTo) []cad.CubicTo {
	center, r, theta, delta, ok := arcCenter(p0, a)
	if !ok {
		if p0.Approx(a.Point, 1e-9) {
			return nil
		}
		return []cad.CubicTo{{Control1: p0, Control2: a.Point, Point: a.Point}}
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	n = max(n, 1)
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	out := make([]cad.CubicTo, 0, n)
	for i := range n {
		a0 := theta + float64(i)*step
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)
		out = append(out, cad.CubicTo{
			Control1: cad.Pt(center.X+r*(cos0-k*sin0), center.Y+r*(sin0+k*cos0)),
			Control2: cad.Pt(center.X+r*(cos1+k*sin1), center.Y+r*(sin1-k*cos1)),
			Point:    cad.Pt(center.X+r*cos1, center.Y+r*sin1),
		})
	}
	// Land exactly on the requested end point.
	out[n-1].Point = a.Point
	return out
}
