package cad

import (
	"fmt"
	"math"
)

// DefaultResolution is the number of screen pixels per model unit at zoom 1.
const DefaultResolution = 96

// DefaultZoom is the zoom a new Converter starts with.
const DefaultZoom = 1.0

// Converter maps between model space (Y up) and screen space (Y down).
//
// A model length becomes length*zoom*resolution pixels. The pan offset is
// the screen position of the model origin.
//
// The zero value is not usable; create converters with NewConverter.
type Converter struct {
	zoom       float64
	resolution float64
	pan        Point
	width      float64
	height     float64
}

// ConverterOption configures a Converter during creation.
type ConverterOption func(*Converter)

// WithResolution sets the pixels-per-unit density at zoom 1.
// Non-positive values are ignored.
func WithResolution(res float64) ConverterOption {
	return func(c *Converter) {
		if res > 0 {
			c.resolution = res
		}
	}
}

// NewConverter creates a converter at DefaultZoom with no pan and an empty
// viewport.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		zoom:       DefaultZoom,
		resolution: DefaultResolution,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Zoom returns the current zoom.
func (c *Converter) Zoom() float64 { return c.zoom }

// SetZoom sets the zoom. Values of zero or less are rejected with
// ErrNonPositiveZoom, infinite ones with ErrInvalidArgument; either way the
// previous zoom is kept.
func (c *Converter) SetZoom(zoom float64) error {
	if !(zoom > 0) {
		return ErrNonPositiveZoom
	}
	if math.IsInf(zoom, 0) {
		return fmt.Errorf("%w: zoom %v is not finite", ErrInvalidArgument, zoom)
	}
	c.zoom = zoom
	Logger().Debug("cad: zoom changed", "zoom", zoom)
	return nil
}

// Resolution returns the pixels-per-unit density at zoom 1.
func (c *Converter) Resolution() float64 { return c.resolution }

// Pan returns the screen position of the model origin.
func (c *Converter) Pan() Point { return c.pan }

// SetPan moves the model origin to the given screen position.
func (c *Converter) SetPan(p Point) { c.pan = p }

// Viewport returns the size of the rendering surface in pixels.
func (c *Converter) Viewport() (width, height float64) { return c.width, c.height }

// SetViewport records the size of the rendering surface in pixels.
func (c *Converter) SetViewport(width, height float64) {
	c.width = width
	c.height = height
}

// ToScreenLength converts a model length to pixels.
func (c *Converter) ToScreenLength(v float64) float64 {
	return v * c.zoom * c.resolution
}

// ToCadLength converts a pixel length to model units.
func (c *Converter) ToCadLength(v float64) float64 {
	return v / (c.resolution * c.zoom)
}

// ToScreen converts a model point to a screen point.
func (c *Converter) ToScreen(p Point) Point {
	return Point{
		X: c.ToScreenLength(p.X) + c.pan.X,
		Y: -c.ToScreenLength(p.Y) + c.pan.Y,
	}
}

// ToCad converts a screen point to a model point.
func (c *Converter) ToCad(p Point) Point {
	return Point{
		X: c.ToCadLength(p.X - c.pan.X),
		Y: c.ToCadLength(-p.Y + c.pan.Y),
	}
}

// ViewportTopLeft returns the model point shown at the top-left pixel.
func (c *Converter) ViewportTopLeft() Point {
	return c.ToCad(Pt(0, 0))
}

// ViewportBottomRight returns the model point shown at the bottom-right pixel.
func (c *Converter) ViewportBottomRight() Point {
	return c.ToCad(Pt(c.width, c.height))
}

// ViewportRect returns the visible area in model space.
func (c *Converter) ViewportRect() Rect {
	return RectFromPoints(c.ViewportTopLeft(), c.ViewportBottomRight())
}

// ZoomAt multiplies the zoom by factor while keeping the model point under
// the given screen position fixed.
func (c *Converter) ZoomAt(screen Point, factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: zoom factor %v", ErrInvalidArgument, factor)
	}
	anchor := c.ToCad(screen)
	if err := c.SetZoom(c.zoom * factor); err != nil {
		return err
	}
	moved := c.ToScreen(anchor)
	c.pan = c.pan.Add(screen.Sub(moved))
	return nil
}
