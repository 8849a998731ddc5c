package cad

import "image/color"

// Pen describes how outlines are stroked. A nil *Pen means "no outline".
//
// Pens are compared by pointer identity when a property changes, so
// replace a pen rather than mutating one that is already in use.
type Pen struct {
	Color     color.Color
	Thickness float64 // in screen pixels
	Dash      []float64
}

// NewPen creates a solid pen.
func NewPen(c color.Color, thickness float64) *Pen {
	return &Pen{Color: c, Thickness: thickness}
}

// Brush describes how areas are filled. A nil *Brush means "no fill".
type Brush struct {
	Color color.Color
}

// SolidBrush creates a brush filling with a single color.
func SolidBrush(c color.Color) *Brush {
	return &Brush{Color: c}
}

// TextRun is a piece of text ready for the renderer. Size is in pixels.
type TextRun struct {
	Text  string
	Size  float64
	Brush *Brush
}
