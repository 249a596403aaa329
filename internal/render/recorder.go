package render

import "github.com/san-kum/backdrop/internal/particle"

// Op is one recorded drawing call.
type Op struct {
	Name  string
	Pts   []particle.Vec
	Args  []float64
	Text  string
	Paint Paint
}

// Recorder is a Surface that logs calls instead of drawing.
type Recorder struct {
	w, h   int
	Ops    []Op
	Clears int
	depth  int
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() particle.Bounds {
	return particle.Bounds{W: float64(r.w), H: float64(r.h)}
}

func (r *Recorder) Resize(w, h int) { r.w, r.h = max(w, 0), max(h, 0) }

// Clear drops the ops of the previous frame.
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Clears++
}

func (r *Recorder) Push() {
	r.depth++
	r.add(Op{Name: "push"})
}

func (r *Recorder) Pop() {
	r.depth--
	r.add(Op{Name: "pop"})
}

// Depth is the current Push nesting, zero when balanced.
func (r *Recorder) Depth() int { return r.depth }

func (r *Recorder) Translate(x, y float64) {
	r.add(Op{Name: "translate", Args: []float64{x, y}})
}

func (r *Recorder) Rotate(angle float64) {
	r.add(Op{Name: "rotate", Args: []float64{angle}})
}

func (r *Recorder) FillCircle(c particle.Vec, rad float64, p Paint) {
	r.add(Op{Name: "fillCircle", Pts: []particle.Vec{c}, Args: []float64{rad}, Paint: p})
}

func (r *Recorder) StrokeCircle(c particle.Vec, rad, width float64, p Paint) {
	r.add(Op{Name: "strokeCircle", Pts: []particle.Vec{c}, Args: []float64{rad, width}, Paint: p})
}

func (r *Recorder) FillRect(x, y, w, h float64, p Paint) {
	r.add(Op{Name: "fillRect", Args: []float64{x, y, w, h}, Paint: p})
}

func (r *Recorder) StrokeLine(a, b particle.Vec, width float64, p Paint) {
	r.add(Op{Name: "strokeLine", Pts: []particle.Vec{a, b}, Args: []float64{width}, Paint: p})
}

func (r *Recorder) StrokePath(pts []particle.Vec, width float64, p Paint) {
	r.add(Op{Name: "strokePath", Pts: append([]particle.Vec(nil), pts...), Args: []float64{width}, Paint: p})
}

func (r *Recorder) FillPath(pts []particle.Vec, p Paint) {
	r.add(Op{Name: "fillPath", Pts: append([]particle.Vec(nil), pts...), Paint: p})
}

func (r *Recorder) Text(s string, at particle.Vec, size float64, p Paint) {
	r.add(Op{Name: "text", Pts: []particle.Vec{at}, Args: []float64{size}, Text: s, Paint: p})
}

// Count returns the number of recorded ops called name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }
