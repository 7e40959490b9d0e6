// Package render turns the graph plus transient interaction state into
// draw calls against an abstract 2D surface. Each host (terminal cells,
// HTML canvas, Swing) adapts Surface to its native drawing API; the
// renderer itself keeps no state beyond its palette.
package render

// Surface is the complete drawing contract a host must provide.
// Coordinates are logical canvas units. Colors are "#rrggbb" strings.
type Surface interface {
	FillRect(x, y, w, h float64, color string)
	StrokeRect(x, y, w, h float64, color string)
	DrawLine(x1, y1, x2, y2 float64, color string)
	DrawDashedLine(x1, y1, x2, y2 float64, color string)
	FillCircle(cx, cy, r float64, color string)
	// DrawText draws text centered on (x, y).
	DrawText(x, y float64, text, color string)
}

// OpKind tags a recorded draw operation.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpLine
	OpDashedLine
	OpFillCircle
	OpText
)

// Op is one recorded Surface call.
type Op struct {
	Kind           OpKind
	X1, Y1, X2, Y2 float64
	R              float64
	Text           string
	Color          string
}

// Recorder is a Surface that captures every call, for tests and for
// diffing renderer output.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, w, h float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X1: x, Y1: y, X2: w, Y2: h, Color: color})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, X1: x, Y1: y, X2: w, Y2: h, Color: color})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color})
}

func (r *Recorder) DrawDashedLine(x1, y1, x2, y2 float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpDashedLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X1: cx, Y1: cy, R: rad, Color: color})
}

func (r *Recorder) DrawText(x, y float64, text, color string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X1: x, Y1: y, Text: text, Color: color})
}

// OfKind returns the recorded ops with the given kind.
func (r *Recorder) OfKind(kind OpKind) []Op {
	var result []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			result = append(result, op)
		}
	}
	return result
}
