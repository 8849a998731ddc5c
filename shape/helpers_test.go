package shape

import (
	"image/color"
	"math"
	"testing"

	"github.com/draftline/cad"
	"github.com/draftline/cad/recording"
)

var (
	testPen   = cad.NewPen(color.Black, 2)
	testBrush = cad.SolidBrush(color.Gray{Y: 0x80})
)

// pick is the model pick distance of testPen at zoom 1: (4 + 1) px.
const pick = 5.0 / 96

func newCanvas() (*recording.Recorder, *cad.Canvas) {
	rec := recording.NewRecorder()
	return rec, cad.NewCanvas(cad.NewConverter(), rec)
}

func rectNear(a, b cad.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

type rectCase struct {
	name     string
	r        cad.Rect
	strict   bool
	anyPoint bool
}

type inRectangle interface {
	ObjectInRectangle(r cad.Rect, conv *cad.Converter, anyPoint bool) bool
}

func checkInRectangle(t *testing.T, obj inRectangle, tests []rectCase) {
	t.Helper()
	conv := cad.NewConverter()
	for _, tt := range tests {
		if got := obj.ObjectInRectangle(tt.r, conv, false); got != tt.strict {
			t.Errorf("%s: strict = %v, want %v", tt.name, got, tt.strict)
		}
		if got := obj.ObjectInRectangle(tt.r, conv, true); got != tt.anyPoint {
			t.Errorf("%s: anyPoint = %v, want %v", tt.name, got, tt.anyPoint)
		}
	}
}
