package render

import "github.com/san-kum/backdrop/internal/particle"

// Surface is a 2D drawing context bound to one section canvas.
// Coordinates are logical pixels; Push/Pop save and restore the transform.
type Surface interface {
	Size() particle.Bounds
	Resize(w, h int)
	Clear()

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	FillCircle(c particle.Vec, r float64, p Paint)
	StrokeCircle(c particle.Vec, r, width float64, p Paint)
	FillRect(x, y, w, h float64, p Paint)
	StrokeLine(a, b particle.Vec, width float64, p Paint)
	StrokePath(pts []particle.Vec, width float64, p Paint)
	FillPath(pts []particle.Vec, p Paint)
	// Text draws s centered on at.
	Text(s string, at particle.Vec, size float64, p Paint)
}
