package cad

import "slices"

// PathElement represents a single element in a screen-space path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new figure at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight edge to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// SweepDirection is the direction a circular arc travels, as seen on screen.
type SweepDirection uint8

const (
	Counterclockwise SweepDirection = iota
	Clockwise
)

// String returns the name of the direction.
func (d SweepDirection) String() string {
	if d == Clockwise {
		return "Clockwise"
	}
	return "Counterclockwise"
}

// ArcTo draws a circular arc from the current point to Point, in the form
// used by SVG path data: the radius, which of the two candidate arcs to take
// and the direction of travel.
type ArcTo struct {
	Point    Point
	Radius   float64
	LargeArc bool
	Sweep    SweepDirection
}

func (ArcTo) isPathElement() {}

// Close closes the current figure with a straight edge to its start.
type Close struct{}

func (Close) isPathElement() {}

// Path is a screen-space vector path handed to a Renderer.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new figure.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a straight edge.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.elements = append(p.elements, CubicTo{Control1: c1, Control2: c2, Point: pt})
	p.current = pt
}

// ArcTo adds a circular arc.
func (p *Path) ArcTo(pt Point, radius float64, largeArc bool, sweep SweepDirection) {
	p.elements = append(p.elements, ArcTo{Point: pt, Radius: radius, LargeArc: largeArc, Sweep: sweep})
	p.current = pt
}

// Close closes the current figure.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Start returns the start point of the current figure.
func (p *Path) Start() Point {
	return p.start
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		elements: slices.Clone(p.elements),
		start:    p.start,
		current:  p.current,
	}
}
