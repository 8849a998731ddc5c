package shape

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/draftline/cad"
	"github.com/draftline/cad/cache"
)

// measureSize is the em size text is measured at before scaling.
const measureSize = 100

// advances caches the advance width of strings at measureSize. Hit-testing
// asks for text bounds on every pointer event.
var advances = cache.New[string, fixed.Int26_6](1024)

var measureFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: measureSize, DPI: 72, Hinting: font.HintingNone})
})

// Text is a single line of text anchored at its top-left corner. Its size
// is the em size in model units, so text scales with zoom.
//
// While editing (see ObjectBase.SetEditing) a text object consumes text
// input and the Backspace, Enter and Escape keys.
type Text struct {
	cad.ObjectBase

	text   string
	origin cad.Point
	size   float64
	brush  *cad.Brush
	pen    *cad.Pen
}

// NewText creates a text object. The content is normalised to NFC.
func NewText(text string, origin cad.Point, size float64, brush *cad.Brush) *Text {
	t := &Text{text: norm.NFC.String(text), origin: origin, size: size, brush: brush}
	t.Init(t)
	return t
}

// Text returns the content.
func (t *Text) Text() string { return t.text }

// SetText replaces the content, normalised to NFC.
func (t *Text) SetText(s string) { cad.SetProperty(t, "Text", &t.text, norm.NFC.String(s)) }

// Origin returns the top-left corner.
func (t *Text) Origin() cad.Point { return t.origin }

// SetOrigin moves the text.
func (t *Text) SetOrigin(p cad.Point) { cad.SetProperty(t, "Origin", &t.origin, p) }

// Size returns the em size in model units.
func (t *Text) Size() float64 { return t.size }

// SetSize changes the em size.
func (t *Text) SetSize(size float64) { cad.SetProperty(t, "Size", &t.size, size) }

// Brush returns the glyph brush.
func (t *Text) Brush() *cad.Brush { return t.brush }

// SetBrush replaces the glyph brush.
func (t *Text) SetBrush(b *cad.Brush) { cad.SetProperty(t, "Brush", &t.brush, b) }

// SelectionPen returns the pen that frames the text while selected.
func (t *Text) SelectionPen() *cad.Pen { return t.pen }

// SetSelectionPen replaces the selection frame pen.
func (t *Text) SetSelectionPen(pen *cad.Pen) { cad.SetProperty(t, "SelectionPen", &t.pen, pen) }

// Draw renders the glyphs and, while selected, a frame around them.
func (t *Text) Draw(c *cad.Canvas) {
	c.DrawText(t.text, t.size, t.brush, t.origin)
	if t.IsSelected() && t.pen != nil {
		if b, ok := t.BoundingRect(); ok {
			c.DrawRectangle(b, nil, t.pen)
		}
	}
}

// BoundingRect returns the measured box of the text. Empty text has none.
func (t *Text) BoundingRect() (cad.Rect, bool) {
	if t.text == "" || t.size <= 0 {
		return cad.Rect{}, false
	}
	w, h, err := measure(t.text, t.size)
	if err != nil {
		cad.Logger().Warn("shape: text measurement failed", "err", err)
		return cad.Rect{}, false
	}
	return cad.NewRect(t.origin.X, t.origin.Y-h, w, h), true
}

// PointInObject reports whether p lies in the text box.
func (t *Text) PointInObject(p cad.Point, _ *cad.Converter) bool {
	b, ok := t.BoundingRect()
	return ok && b.Contains(p)
}

// ObjectInRectangle reports whether the text box lies in r or, with
// anyPoint, whether the boxes overlap.
func (t *Text) ObjectInRectangle(r cad.Rect, _ *cad.Converter, anyPoint bool) bool {
	b, ok := t.BoundingRect()
	if !ok {
		return false
	}
	if r.ContainsRect(b) {
		return true
	}
	return anyPoint && r.Intersects(b)
}

// HandleTextInput appends typed text while editing.
func (t *Text) HandleTextInput(e *cad.TextInputEvent) {
	if !t.IsEditing() || e.Text == "" {
		return
	}
	t.SetText(t.text + e.Text)
	e.Handled = true
}

// HandleKeyDown deletes the last character on Backspace and leaves edit
// mode on Enter or Escape.
func (t *Text) HandleKeyDown(e *cad.KeyEvent) {
	if !t.IsEditing() {
		return
	}
	switch e.Key {
	case "BackSpace", "Backspace":
		if t.text != "" {
			_, n := utf8.DecodeLastRuneInString(t.text)
			t.SetText(t.text[:len(t.text)-n])
		}
	case "Enter", "Return", "Escape":
		t.SetEditing(false)
	default:
		return
	}
	e.Handled = true
}

// measure returns the advance width and line height of s at the given em
// size.
func measure(s string, size float64) (width, height float64, err error) {
	face, err := measureFace()
	if err != nil {
		return 0, 0, err
	}
	m := face.Metrics()
	scale := size / measureSize
	adv := advances.GetOrCreate(s, func() fixed.Int26_6 { return font.MeasureString(face, s) })
	return fixedToFloat(adv) * scale, fixedToFloat(m.Ascent+m.Descent) * scale, nil
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
