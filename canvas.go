package cad

import "golang.org/x/text/unicode/norm"

// Canvas is the model-space drawing surface handed to Draw. It converts
// every primitive with its Converter and forwards the result to a Renderer.
type Canvas struct {
	conv *Converter
	r    Renderer
}

// NewCanvas creates a canvas drawing onto r through conv.
func NewCanvas(conv *Converter, r Renderer) *Canvas {
	return &Canvas{conv: conv, r: r}
}

// Converter returns the converter used by the canvas.
func (c *Canvas) Converter() *Converter { return c.conv }

// Renderer returns the screen-space renderer behind the canvas.
func (c *Canvas) Renderer() Renderer { return c.r }

// DrawLine draws a segment between two model points. Nothing is drawn
// without a pen.
func (c *Canvas) DrawLine(pen *Pen, p0, p1 Point) {
	if pen == nil {
		return
	}
	c.r.DrawLine(pen, c.conv.ToScreen(p0), c.conv.ToScreen(p1))
}

// DrawArc draws a circular arc. begin is measured from the positive X axis
// and angle is the counterclockwise span, both in radians. See ArcPath.
func (c *Canvas) DrawArc(pen *Pen, center Point, radius, begin, angle float64, smallAngle bool) {
	if pen == nil {
		return
	}
	c.r.DrawPath(nil, pen, ArcPath(c.conv, center, radius, begin, angle, smallAngle))
}

// DrawEllipse draws an axis-aligned ellipse with radii in model units.
func (c *Canvas) DrawEllipse(brush *Brush, pen *Pen, center Point, rx, ry float64) {
	if brush == nil && pen == nil {
		return
	}
	c.r.DrawEllipse(brush, pen, c.conv.ToScreen(center), c.conv.ToScreenLength(rx), c.conv.ToScreenLength(ry))
}

// DrawText draws text with its top-left corner at origin. size is the em
// size in model units.
func (c *Canvas) DrawText(text string, size float64, brush *Brush, origin Point) {
	if text == "" {
		return
	}
	run := TextRun{
		Text:  norm.NFC.String(text),
		Size:  c.conv.ToScreenLength(size),
		Brush: brush,
	}
	c.r.DrawText(run, c.conv.ToScreen(origin))
}

// DrawCurve draws an open cubic Bezier path through the points.
// See CurvePath.
func (c *Canvas) DrawCurve(pen *Pen, points []Point) {
	if pen == nil || len(points) == 0 {
		return
	}
	c.r.DrawPath(nil, pen, CurvePath(c.conv, points))
}

// DrawPolygon fills and strokes the closed figure through the points.
func (c *Canvas) DrawPolygon(points []Point, brush *Brush, pen *Pen) {
	if (brush == nil && pen == nil) || len(points) == 0 {
		return
	}
	c.r.DrawPath(brush, pen, FillPath(c.conv, points))
}

// DrawRectangle fills and strokes a model rectangle.
func (c *Canvas) DrawRectangle(rect Rect, brush *Brush, pen *Pen) {
	if brush == nil && pen == nil {
		return
	}
	c.r.DrawRectangle(brush, pen, RectToScreen(c.conv, rect))
}
