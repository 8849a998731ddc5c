// Command caddemo builds a small drawing, drives selection and editing
// through the scene the way a host window would, and saves the result as a
// PNG image.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/draftline/cad"
	"github.com/draftline/cad/ggrender"
	"github.com/draftline/cad/history"
	"github.com/draftline/cad/shape"
)

func main() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	output := flag.String("output", cfg.Output, "output file")
	flag.Parse()

	cad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	mode := cad.SingleSelect
	if cfg.Multi {
		mode = cad.MultipleSelect
	}
	w, h := float64(cfg.Width), float64(cfg.Height)
	scene := cad.NewScene(
		cad.WithViewport(w, h),
		cad.WithZoom(cfg.Zoom),
		cad.WithPan(cad.Pt(w/2, h/2)),
		cad.WithSelectMode(mode),
	)

	hist := history.New(history.WithLimit(64))
	defer hist.Watch(scene)()

	grid := cad.NewLayer("grid")
	grid.SetBackground(cad.SolidBrush(color.RGBA{R: 0xf4, G: 0xf4, B: 0xf0, A: 0xff}))
	drawing := cad.NewLayer("drawing")
	scene.SetLayers([]*cad.Layer{grid, drawing})
	if err := scene.SetActiveLayer(drawing); err != nil {
		log.Fatal(err)
	}

	if err := grid.AddObjects(gridLines(scene.Converter().ViewportRect())); err != nil {
		log.Fatal(err)
	}

	black := cad.NewPen(color.Black, 2)
	frame := shape.NewRectangle(cad.NewRect(-2, -1.5, 4, 3), black)
	frame.SetBackground(cad.SolidBrush(color.RGBA{R: 0xff, G: 0xf8, B: 0xdc, A: 0xff}))
	label := shape.NewText("draftline", cad.Pt(-1.8, 1.3), 0.3, cad.SolidBrush(color.Black))
	objs := []cad.DrawObject{
		frame,
		shape.NewLine(cad.Pt(-2, -1.5), cad.Pt(2, 1.5), black),
		shape.NewArc(cad.Pt(0, 0), 1, 0, 3*math.Pi/2, cad.NewPen(color.RGBA{R: 0xc0, A: 0xff}, 3)),
		shape.NewCircle(cad.Pt(1.2, -0.6), 0.4, black),
		shape.NewCurve([]cad.Point{cad.Pt(-1.8, -1.2), cad.Pt(-1, 0), cad.Pt(-0.5, -1), cad.Pt(0, -0.6)}, black),
		shape.NewPolygon([]cad.Point{cad.Pt(0.6, 0.4), cad.Pt(1.6, 0.4), cad.Pt(1.1, 1.2)}, black,
			cad.SolidBrush(color.RGBA{G: 0x80, B: 0xc0, A: 0x80})),
		label,
	}
	if err := drawing.AddObjects(objs); err != nil {
		log.Fatal(err)
	}

	scene.OnClickSelecting(func(e *cad.ClickSelectingEvent) {
		slog.Info("click", "x", e.Position.X, "y", e.Position.Y, "hits", len(e.Hits))
	})
	scene.OnDragSelect(func(e cad.DragSelectEvent) {
		slog.Info("drag select", "anyPoint", e.AnyPoint, "hits", len(e.Hits))
	})

	conv := scene.Converter()
	click := func(p cad.Point) {
		s := conv.ToScreen(p)
		scene.MouseDown(s, cad.ButtonLeft, 0)
		scene.MouseUp(s, cad.ButtonLeft, 0)
	}

	// Click the circle, then drag a crossing window over the lower half.
	click(cad.Pt(1.2, -0.2))
	from, to := conv.ToScreen(cad.Pt(2.5, -0.5)), conv.ToScreen(cad.Pt(-2.5, -2))
	scene.MouseDown(from, cad.ButtonLeft, 0)
	scene.MouseMove(to, 0)
	scene.MouseUp(to, cad.ButtonLeft, 0)

	// Edit the label through keyboard input, then undo the last keystroke.
	scene.SetFocused(true)
	label.SetSelected(true)
	label.SetEditing(true)
	scene.TextInput(" demo")
	scene.KeyDown("BackSpace", 0, false)
	scene.KeyDown("Enter", 0, false)
	if err := hist.Undo(); err != nil {
		slog.Warn("undo", "err", err)
	}
	slog.Info("label", "text", label.Text(), "undo", hist.UndoLen(), "redo", hist.RedoLen())

	r := ggrender.New(cfg.Width, cfg.Height)
	defer r.Close()
	r.Clear(color.White)
	scene.Render(r)
	if err := r.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	slog.Info("saved", "file", *output, "width", cfg.Width, "height", cfg.Height,
		"selected", len(scene.SelectedObjects()))
}

// gridLines returns light lines at every whole model unit inside r.
func gridLines(r cad.Rect) []cad.DrawObject {
	pen := cad.NewPen(color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}, 1)
	var out []cad.DrawObject
	for x := math.Ceil(r.X); x <= r.X+r.Width; x++ {
		out = append(out, shape.NewLine(cad.Pt(x, r.Y), cad.Pt(x, r.Y+r.Height), pen))
	}
	for y := math.Ceil(r.Y); y <= r.Y+r.Height; y++ {
		out = append(out, shape.NewLine(cad.Pt(r.X, y), cad.Pt(r.X+r.Width, y), pen))
	}
	return out
}
