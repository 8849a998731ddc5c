package cad

import "math"

const fullTurn = 2 * math.Pi

// ArcPath builds the screen path of a circular arc.
//
// The arc starts at begin radians from the positive X axis and spans angle
// radians (positive is counterclockwise in model space). Both angles are
// reduced modulo a full turn. smallAngle selects the minor arc between the
// two endpoints, otherwise the major arc is taken.
func ArcPath(conv *Converter, center Point, radius, begin, angle float64, smallAngle bool) *Path {
	begin = math.Mod(begin, fullTurn)
	angle = math.Mod(angle, fullTurn)
	end := begin + angle

	startPt := Pt(center.X+math.Cos(begin)*radius, center.Y+math.Sin(begin)*radius)
	endPt := Pt(center.X+math.Cos(end)*radius, center.Y+math.Sin(end)*radius)

	p := NewPath()
	p.MoveTo(conv.ToScreen(startPt))
	p.ArcTo(conv.ToScreen(endPt), conv.ToScreenLength(radius), !smallAngle, arcSweep(begin, end))
	return p
}

// arcSweep derives the screen sweep from the sign of the cross product of
// the two angle directions.
func arcSweep(begin, end float64) SweepDirection {
	cross := math.Cos(begin)*math.Sin(end) - math.Sin(begin)*math.Cos(end)
	if cross < 0 {
		return Clockwise
	}
	return Counterclockwise
}

// CurvePath builds an open path of cubic Bezier segments through the given
// model points. The first point is the start of the figure and also the
// first control point; the control list is padded with the last point up to
// a multiple of three. An empty input yields an empty path.
func CurvePath(conv *Converter, points []Point) *Path {
	p := NewPath()
	if len(points) < 1 {
		return p
	}

	ctrl := make([]Point, 0, len(points)+2)
	for _, pt := range points {
		ctrl = append(ctrl, conv.ToScreen(pt))
	}
	last := ctrl[len(ctrl)-1]
	for pad := (3 - len(ctrl)%3) % 3; pad > 0; pad-- {
		ctrl = append(ctrl, last)
	}

	p.MoveTo(ctrl[0])
	for i := 0; i+2 < len(ctrl); i += 3 {
		p.CubicTo(ctrl[i], ctrl[i+1], ctrl[i+2])
	}
	return p
}

// FillPath builds a closed polygon path: the first point starts the figure
// and each following point adds a straight edge. An empty input yields an
// empty path.
func FillPath(conv *Converter, points []Point) *Path {
	p := NewPath()
	if len(points) < 1 {
		return p
	}
	p.MoveTo(conv.ToScreen(points[0]))
	for _, pt := range points[1:] {
		p.LineTo(conv.ToScreen(pt))
	}
	p.Close()
	return p
}

// ScreenRect is a rectangle in screen space, anchored at its top-left.
type ScreenRect struct {
	X, Y          float64
	Width, Height float64
}

// RectToScreen converts a model rectangle to screen space.
func RectToScreen(conv *Converter, r Rect) ScreenRect {
	tl := conv.ToScreen(r.TopLeft())
	return ScreenRect{
		X:      tl.X,
		Y:      tl.Y,
		Width:  conv.ToScreenLength(r.Width),
		Height: conv.ToScreenLength(r.Height),
	}
}
