package render

import "image/color"

// OpKind names a recorded drawing call.
type OpKind string

const (
	OpClear      OpKind = "clear"
	OpFillRect   OpKind = "fill_rect"
	OpDrawString OpKind = "draw_string"
)

// Op is one recorded drawing call.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	Text       string
	Color      color.Color
	Background color.Color
}

// Recorder is a Surface that records calls instead of drawing. Used by
// tests and headless runs.
type Recorder struct {
	Width  int
	Height int
	Ops    []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Clear starts a new frame, dropping the calls recorded for the last one.
func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawString(x, y float64, text string, fg, bg color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawString, X: x, Y: y, Text: text, Color: fg, Background: bg})
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded calls of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
