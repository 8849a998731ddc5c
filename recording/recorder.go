package recording

import (
	"slices"

	"github.com/draftline/cad"
)

// Recorder captures renderer calls as commands. It implements
// cad.Renderer.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
}

var _ cad.Renderer = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// DrawLine implements cad.Renderer.
func (r *Recorder) DrawLine(pen *cad.Pen, p0, p1 cad.Point) {
	r.commands = append(r.commands, DrawLineCommand{Pen: r.resources.AddPen(pen), P0: p0, P1: p1})
}

// DrawPath implements cad.Renderer.
func (r *Recorder) DrawPath(brush *cad.Brush, pen *cad.Pen, path *cad.Path) {
	r.commands = append(r.commands, DrawPathCommand{
		Brush: r.resources.AddBrush(brush),
		Pen:   r.resources.AddPen(pen),
		Path:  r.resources.AddPath(path),
	})
}

// DrawEllipse implements cad.Renderer.
func (r *Recorder) DrawEllipse(brush *cad.Brush, pen *cad.Pen, center cad.Point, rx, ry float64) {
	r.commands = append(r.commands, DrawEllipseCommand{
		Brush:  r.resources.AddBrush(brush),
		Pen:    r.resources.AddPen(pen),
		Center: center,
		RX:     rx,
		RY:     ry,
	})
}

// DrawText implements cad.Renderer.
func (r *Recorder) DrawText(run cad.TextRun, origin cad.Point) {
	r.commands = append(r.commands, DrawTextCommand{
		Text:   run.Text,
		Size:   run.Size,
		Brush:  r.resources.AddBrush(run.Brush),
		Origin: origin,
	})
}

// DrawRectangle implements cad.Renderer.
func (r *Recorder) DrawRectangle(brush *cad.Brush, pen *cad.Pen, rect cad.ScreenRect) {
	r.commands = append(r.commands, DrawRectangleCommand{
		Brush: r.resources.AddBrush(brush),
		Pen:   r.resources.AddPen(pen),
		Rect:  rect,
	})
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recorder) Resources() *ResourcePool { return r.resources }

// Count returns the number of recorded commands of the given type.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
}

// FinishRecording returns the recording made so far and starts a new one.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		commands:  slices.Clip(r.commands),
		resources: r.resources,
	}
	r.commands = make([]Command, 0, 64)
	r.resources = NewResourcePool()
	return rec
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Playback replays the recording onto another renderer.
func (r *Recording) Playback(dst cad.Renderer) {
	res := r.resources
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawLineCommand:
			dst.DrawLine(res.GetPen(c.Pen), c.P0, c.P1)
		case DrawPathCommand:
			dst.DrawPath(res.GetBrush(c.Brush), res.GetPen(c.Pen), res.GetPath(c.Path))
		case DrawEllipseCommand:
			dst.DrawEllipse(res.GetBrush(c.Brush), res.GetPen(c.Pen), c.Center, c.RX, c.RY)
		case DrawTextCommand:
			dst.DrawText(cad.TextRun{Text: c.Text, Size: c.Size, Brush: res.GetBrush(c.Brush)}, c.Origin)
		case DrawRectangleCommand:
			dst.DrawRectangle(res.GetBrush(c.Brush), res.GetPen(c.Pen), c.Rect)
		}
	}
}
