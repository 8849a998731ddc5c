// Package ggrender draws cad scenes into raster images with gogpu/gg.
//
//	r := ggrender.New(800, 600)
//	defer r.Close()
//
//	r.Clear(color.White)
//	scene.Render(r)
//	if err := r.SavePNG("scene.png"); err != nil {
//		log.Fatal(err)
//	}
package ggrender

import (
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/draftline/cad"
	"github.com/draftline/cad/cache"
)

// DefaultFontSize is the text size, in pixels, used when a run has none.
const DefaultFontSize = 12.0

// faceCacheSize bounds the faces kept per renderer. Text size follows the
// zoom, so every zoom level asks for new sizes.
const faceCacheSize = 32

var defaultFonts = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Renderer implements cad.Renderer on top of a gg.Context.
type Renderer struct {
	dc    *gg.Context
	opts  options
	faces *cache.Cache[float64, text.Face]
}

var _ cad.Renderer = (*Renderer)(nil)

// New creates a renderer drawing into a new width x height image.
func New(width, height int, opts ...Option) *Renderer {
	return NewForContext(gg.NewContext(width, height), opts...)
}

// NewForContext creates a renderer drawing into an existing context.
func NewForContext(dc *gg.Context, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{dc: dc, opts: o, faces: cache.New[float64, text.Face](faceCacheSize)}
}

// Context returns the underlying gg context.
func (r *Renderer) Context() *gg.Context { return r.dc }

// Image returns the rendered image.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// Clear fills the whole image with c.
func (r *Renderer) Clear(c color.Color) { r.dc.ClearWithColor(gg.FromColor(c)) }

// SavePNG writes the image to a PNG file.
func (r *Renderer) SavePNG(path string) error { return r.dc.SavePNG(path) }

// EncodePNG writes the image as PNG to w.
func (r *Renderer) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// Close releases the context.
func (r *Renderer) Close() error { return r.dc.Close() }

// DrawLine implements cad.Renderer.
func (r *Renderer) DrawLine(pen *cad.Pen, p0, p1 cad.Point) {
	if pen == nil {
		return
	}
	r.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	r.paint(nil, pen)
}

// DrawPath implements cad.Renderer.
func (r *Renderer) DrawPath(brush *cad.Brush, pen *cad.Pen, path *cad.Path) {
	if path == nil || path.IsEmpty() {
		return
	}
	r.appendPath(path)
	r.paint(brush, pen)
}

// DrawEllipse implements cad.Renderer.
func (r *Renderer) DrawEllipse(brush *cad.Brush, pen *cad.Pen, center cad.Point, rx, ry float64) {
	r.dc.DrawEllipse(center.X, center.Y, rx, ry)
	r.paint(brush, pen)
}

// DrawRectangle implements cad.Renderer.
func (r *Renderer) DrawRectangle(brush *cad.Brush, pen *cad.Pen, rect cad.ScreenRect) {
	r.dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	r.paint(brush, pen)
}

// DrawText implements cad.Renderer. The run is placed with the top of its
// line box at origin.
func (r *Renderer) DrawText(run cad.TextRun, origin cad.Point) {
	if run.Text == "" {
		return
	}
	face := r.face(run.Size)
	if face == nil {
		return
	}
	r.dc.SetFont(face)
	if run.Brush != nil && run.Brush.Color != nil {
		r.dc.SetColor(run.Brush.Color)
	} else {
		r.dc.SetColor(color.Black)
	}
	r.dc.DrawString(run.Text, origin.X, origin.Y+face.Metrics().Ascent)
}

func (r *Renderer) face(size float64) text.Face {
	if size <= 0 {
		size = r.opts.defaultSize
	}
	if f, ok := r.faces.Get(size); ok {
		return f
	}
	src := r.opts.fonts
	if src == nil {
		var err error
		if src, err = defaultFonts(); err != nil {
			cad.Logger().Warn("ggrender: default font unavailable", "err", err)
			return nil
		}
	}
	f := src.Face(size)
	r.faces.Set(size, f)
	return f
}

// paint fills, then strokes the current path and clears it.
func (r *Renderer) paint(brush *cad.Brush, pen *cad.Pen) {
	defer r.dc.ClearPath()
	if brush != nil && brush.Color != nil {
		r.dc.SetColor(brush.Color)
		if err := r.dc.FillPreserve(); err != nil {
			cad.Logger().Warn("ggrender: fill failed", "err", err)
		}
	}
	if pen != nil && pen.Color != nil && pen.Thickness > 0 {
		r.dc.SetColor(pen.Color)
		r.dc.SetLineWidth(pen.Thickness)
		if len(pen.Dash) > 0 {
			r.dc.SetDash(pen.Dash...)
		} else {
			r.dc.ClearDash()
		}
		if err := r.dc.StrokePreserve(); err != nil {
			cad.Logger().Warn("ggrender: stroke failed", "err", err)
		}
	}
}

func (r *Renderer) appendPath(path *cad.Path) {
	var cur, start cad.Point
	for _, el := range path.Elements() {
		switch e := el.(type) {
		case cad.MoveTo:
			r.dc.MoveTo(e.Point.X, e.Point.Y)
			cur, start = e.Point, e.Point
		case cad.LineTo:
			r.dc.LineTo(e.Point.X, e.Point.Y)
			cur = e.Point
		case cad.CubicTo:
			r.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			cur = e.Point
		case cad.ArcTo:
			for _, c := range arcToCubics(cur, e) {
				r.dc.CubicTo(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
			}
			cur = e.Point
		case cad.Close:
			r.dc.ClosePath()
			cur = start
		}
	}
}
