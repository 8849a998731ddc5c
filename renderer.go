package cad

// Renderer is the screen-space drawing collaborator. Every coordinate it
// receives is already in pixels with the Y axis pointing down; it performs
// no coordinate math of its own.
//
// A nil pen means no outline and a nil brush means no fill.
type Renderer interface {
	// DrawLine strokes a straight segment.
	DrawLine(pen *Pen, p0, p1 Point)

	// DrawPath fills and strokes a path built by ArcPath, CurvePath or
	// FillPath.
	DrawPath(brush *Brush, pen *Pen, path *Path)

	// DrawEllipse fills and strokes an axis-aligned ellipse.
	DrawEllipse(brush *Brush, pen *Pen, center Point, rx, ry float64)

	// DrawText draws a run of text whose box has its top-left at origin.
	DrawText(run TextRun, origin Point)

	// DrawRectangle fills and strokes a rectangle.
	DrawRectangle(brush *Brush, pen *Pen, rect ScreenRect)
}
