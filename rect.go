package cad

import "math"

// Rect is an axis-aligned rectangle in model space, anchored at its
// bottom-left corner. Width and Height extend right and up.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle from its bottom-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromPoints returns the smallest rectangle spanning both points.
func RectFromPoints(p1, p2 Point) Rect {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)

	// Clamp to zero so rounding never yields a (-epsilon, 0) extent.
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Max(math.Max(p1.X, p2.X)-x, 0),
		Height: math.Max(math.Max(p1.Y, p2.Y)-y, 0),
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point { return Pt(r.X+r.Width/2, r.Y+r.Height/2) }

// BottomLeft returns the anchor corner.
func (r Rect) BottomLeft() Point { return Pt(r.X, r.Y) }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Pt(r.X+r.Width, r.Y) }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Pt(r.X+r.Width, r.Y+r.Height) }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Pt(r.X, r.Y+r.Height) }

// Contains reports whether p lies inside the rectangle. Points on the
// boundary are contained.
func (r Rect) Contains(p Point) bool {
	dx := p.X - r.X
	dy := p.Y - r.Y
	return dx >= 0 && dx <= r.Width && dy >= 0 && dy <= r.Height
}

// ContainsRect reports whether every corner of o lies inside r.
func (r Rect) ContainsRect(o Rect) bool {
	for _, v := range o.Vertices() {
		if !r.Contains(v) {
			return false
		}
	}
	return true
}

// Vertices returns the four corners clockwise, starting at bottom-left.
func (r Rect) Vertices() [4]Point {
	return [4]Point{r.BottomLeft(), r.BottomRight(), r.TopRight(), r.TopLeft()}
}

// Borders returns the four boundary segments clockwise, starting with the
// bottom edge. The last segment closes back to the bottom-left corner.
func (r Rect) Borders() [4]Line {
	bl, br, tr, tl := r.BottomLeft(), r.BottomRight(), r.TopRight(), r.TopLeft()
	return [4]Line{
		{Start: bl, End: br},
		{Start: br, End: tr},
		{Start: tr, End: tl},
		{Start: tl, End: bl},
	}
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return RectFromPoints(
		Pt(math.Min(r.X, o.X), math.Min(r.Y, o.Y)),
		Pt(math.Max(r.X+r.Width, o.X+o.Width), math.Max(r.Y+r.Height, o.Y+o.Height)),
	)
}

// Inflate grows the rectangle by d on every side. A negative d shrinks it;
// the extent never drops below zero.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		X:      r.X - d,
		Y:      r.Y - d,
		Width:  math.Max(r.Width+2*d, 0),
		Height: math.Max(r.Height+2*d, 0),
	}
}

// Intersects reports whether the two rectangles overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width &&
		r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}
