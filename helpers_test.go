package cad

// box is a minimal draw object used across the package tests.
type box struct {
	ObjectBase

	rect    Rect
	pen     *Pen
	log     *[]string
	consume bool
	downs   int
	keys    []string
	texts   []string
}

func newBox(r Rect) *box {
	b := &box{rect: r}
	b.Init(b)
	return b
}

func (b *box) Draw(c *Canvas) { c.DrawRectangle(b.rect, nil, b.pen) }

func (b *box) PointInObject(p Point, _ *Converter) bool { return b.rect.Contains(p) }

func (b *box) ObjectInRectangle(r Rect, _ *Converter, anyPoint bool) bool {
	if r.ContainsRect(b.rect) {
		return true
	}
	return anyPoint && r.Intersects(b.rect)
}

func (b *box) BoundingRect() (Rect, bool) { return b.rect, true }

func (b *box) SetRect(r Rect) { SetProperty(b, "Rect", &b.rect, r) }

func (b *box) SelectionChanging(ValueChange[bool]) { b.note("hook") }

func (b *box) HandleMouseDown(e *MouseButtonEvent) {
	b.downs++
	e.Handled = b.consume
}

func (b *box) HandleKeyDown(e *KeyEvent) {
	b.keys = append(b.keys, e.Key)
	e.Handled = b.consume
}

func (b *box) HandleTextInput(e *TextInputEvent) {
	b.texts = append(b.texts, e.Text)
	e.Handled = b.consume
}

func (b *box) note(s string) {
	if b.log != nil {
		*b.log = append(*b.log, s)
	}
}

// fakeRenderer counts the calls it receives.
type fakeRenderer struct {
	lines    int
	paths    []*Path
	ellipses int
	texts    []TextRun
	rects    []ScreenRect
}

func (f *fakeRenderer) DrawLine(*Pen, Point, Point)                       { f.lines++ }
func (f *fakeRenderer) DrawPath(_ *Brush, _ *Pen, p *Path)                { f.paths = append(f.paths, p) }
func (f *fakeRenderer) DrawEllipse(*Brush, *Pen, Point, float64, float64) { f.ellipses++ }
func (f *fakeRenderer) DrawText(run TextRun, _ Point)                     { f.texts = append(f.texts, run) }
func (f *fakeRenderer) DrawRectangle(_ *Brush, _ *Pen, r ScreenRect)      { f.rects = append(f.rects, r) }
