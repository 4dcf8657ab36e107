package render

import "image/color"

// OpKind names a Surface call.
type OpKind string

const (
	OpSetSize     OpKind = "size"
	OpStrokeColor OpKind = "strokeStyle"
	OpFillColor   OpKind = "fillStyle"
	OpLineWidth   OpKind = "lineWidth"
	OpClearRect   OpKind = "clearRect"
	OpBeginPath   OpKind = "beginPath"
	OpRect        OpKind = "rect"
	OpFill        OpKind = "fill"
	OpStroke      OpKind = "stroke"
)

// Op is one recorded Surface call. Fields not used by Kind are zero.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	Color      color.Color
	Width      float64
}

// DrawnRect is a path rectangle together with how it was painted.
type DrawnRect struct {
	X, Y, W, H float64
	Filled     bool
}

// Recorder is a Surface that keeps every call for later inspection. Setting
// Err makes the next Fill, Stroke or ClearRect fail with it.
type Recorder struct {
	Ops []Op
	Err error

	path []Op
}

func (r *Recorder) fail() error {
	err := r.Err
	r.Err = nil
	return err
}

func (r *Recorder) SetSize(w, h int) error {
	r.Ops = append(r.Ops, Op{Kind: OpSetSize, W: float64(w), H: float64(h)})
	return nil
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeColor, Color: c})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillColor, Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineWidth, Width: w})
}

func (r *Recorder) ClearRect(x, y, w, h float64) error {
	if err := r.fail(); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h})
	return nil
}

func (r *Recorder) BeginPath() {
	r.path = r.path[:0]
	r.Ops = append(r.Ops, Op{Kind: OpBeginPath})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	op := Op{Kind: OpRect, X: x, Y: y, W: w, H: h}
	r.path = append(r.path, op)
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Fill() error {
	if err := r.fail(); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Kind: OpFill})
	return nil
}

func (r *Recorder) Stroke() error {
	if err := r.fail(); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Kind: OpStroke})
	return nil
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.path = r.path[:0]
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Rects pairs every rect call with the fill or stroke that painted its path.
func (r *Recorder) Rects() []DrawnRect {
	var out, pending []DrawnRect
	for _, op := range r.Ops {
		switch op.Kind {
		case OpBeginPath:
			pending = pending[:0]
		case OpRect:
			pending = append(pending, DrawnRect{X: op.X, Y: op.Y, W: op.W, H: op.H})
		case OpFill, OpStroke:
			for _, p := range pending {
				p.Filled = op.Kind == OpFill
				out = append(out, p)
			}
		}
	}
	return out
}
