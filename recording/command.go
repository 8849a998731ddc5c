package recording

import "github.com/draftline/cad"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawLine      CommandType = iota // Stroke a segment
	CmdDrawPath                         // Fill and stroke a path
	CmdDrawEllipse                      // Fill and stroke an ellipse
	CmdDrawText                         // Draw a text run
	CmdDrawRectangle                    // Fill and stroke a rectangle
)

var commandTypeNames = [...]string{
	CmdDrawLine:      "DrawLine",
	CmdDrawPath:      "DrawPath",
	CmdDrawEllipse:   "DrawEllipse",
	CmdDrawText:      "DrawText",
	CmdDrawRectangle: "DrawRectangle",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// PenRef is a reference to a pen in the resource pool.
type PenRef uint32

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// InvalidRef marks an absent resource, such as a shape drawn without a pen.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a path.
func (r PathRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a pen.
func (r PenRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a brush.
func (r BrushRef) IsValid() bool { return uint32(r) != InvalidRef }

// DrawLineCommand strokes a segment between two screen points.
type DrawLineCommand struct {
	Pen    PenRef
	P0, P1 cad.Point
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawPathCommand fills and strokes a path.
type DrawPathCommand struct {
	Brush BrushRef
	Pen   PenRef
	Path  PathRef
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// DrawEllipseCommand fills and strokes an axis-aligned ellipse.
type DrawEllipseCommand struct {
	Brush  BrushRef
	Pen    PenRef
	Center cad.Point
	RX, RY float64
}

// Type implements Command.
func (DrawEllipseCommand) Type() CommandType { return CmdDrawEllipse }

// DrawTextCommand draws a text run with its top-left corner at Origin.
type DrawTextCommand struct {
	Text   string
	Size   float64
	Brush  BrushRef
	Origin cad.Point
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawRectangleCommand fills and strokes a screen rectangle.
type DrawRectangleCommand struct {
	Brush BrushRef
	Pen   PenRef
	Rect  cad.ScreenRect
}

// Type implements Command.
func (DrawRectangleCommand) Type() CommandType { return CmdDrawRectangle }
