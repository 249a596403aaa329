package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/san-kum/backdrop/internal/particle"
)

// Image is a raster Surface backed by a gg context.
type Image struct {
	dc    *gg.Context
	w, h  int
	faces faceCache

	// Background fills the canvas on Clear. Nil clears to transparent.
	Background color.Color
}

func NewImage(w, h int) *Image {
	img := &Image{faces: faceCache{}}
	img.Resize(w, h)
	return img
}

func (img *Image) Size() particle.Bounds {
	return particle.Bounds{W: float64(img.w), H: float64(img.h)}
}

// Resize replaces the backing context. A zero size keeps a 1x1 context so
// that drawing stays valid.
func (img *Image) Resize(w, h int) {
	img.w, img.h = max(w, 0), max(h, 0)
	img.dc = gg.NewContext(max(w, 1), max(h, 1))
}

func (img *Image) Clear() {
	img.dc.Identity()
	if img.Background != nil {
		img.dc.SetColor(img.Background)
	} else {
		img.dc.SetColor(color.Transparent)
	}
	img.dc.Clear()
}

func (img *Image) Push() { img.dc.Push() }
func (img *Image) Pop()  { img.dc.Pop() }

func (img *Image) Translate(x, y float64) { img.dc.Translate(x, y) }
func (img *Image) Rotate(angle float64)   { img.dc.Rotate(angle) }

func (img *Image) FillCircle(c particle.Vec, r float64, p Paint) {
	if r <= 0 {
		return
	}
	img.dc.DrawCircle(c.X, c.Y, r)
	img.dc.SetFillStyle(img.pattern(p))
	img.dc.Fill()
}

func (img *Image) StrokeCircle(c particle.Vec, r, width float64, p Paint) {
	if r <= 0 {
		return
	}
	img.dc.DrawCircle(c.X, c.Y, r)
	img.stroke(width, p)
}

func (img *Image) FillRect(x, y, w, h float64, p Paint) {
	img.dc.DrawRectangle(x, y, w, h)
	img.dc.SetFillStyle(img.pattern(p))
	img.dc.Fill()
}

func (img *Image) StrokeLine(a, b particle.Vec, width float64, p Paint) {
	img.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	img.stroke(width, p)
}

func (img *Image) StrokePath(pts []particle.Vec, width float64, p Paint) {
	if len(pts) < 2 {
		return
	}
	img.trace(pts)
	img.stroke(width, p)
}

func (img *Image) FillPath(pts []particle.Vec, p Paint) {
	if len(pts) < 3 {
		return
	}
	img.trace(pts)
	img.dc.ClosePath()
	img.dc.SetFillStyle(img.pattern(p))
	img.dc.Fill()
}

func (img *Image) Text(s string, at particle.Vec, size float64, p Paint) {
	if img.faces == nil {
		img.faces = faceCache{}
	}
	face, err := img.faces.get(size)
	if err != nil {
		return
	}
	img.dc.SetFontFace(face)
	img.dc.SetColor(p.Average())
	img.dc.DrawStringAnchored(s, at.X, at.Y, 0.5, 0.5)
}

// Image returns the backing raster.
func (img *Image) Image() image.Image { return img.dc.Image() }

func (img *Image) EncodePNG(w io.Writer) error { return img.dc.EncodePNG(w) }

func (img *Image) SavePNG(path string) error { return img.dc.SavePNG(path) }

func (img *Image) trace(pts []particle.Vec) {
	img.dc.NewSubPath()
	img.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		img.dc.LineTo(pt.X, pt.Y)
	}
}

func (img *Image) stroke(width float64, p Paint) {
	img.dc.SetLineWidth(width)
	img.dc.SetStrokeStyle(img.pattern(p))
	img.dc.Stroke()
}

// pattern converts p into a gg pattern. gg evaluates gradients in device
// space, so gradient geometry goes through the current transform.
func (img *Image) pattern(p Paint) gg.Pattern {
	switch p.Kind {
	case PaintLinear:
		x0, y0 := img.dc.TransformPoint(p.From.X, p.From.Y)
		x1, y1 := img.dc.TransformPoint(p.To.X, p.To.Y)
		g := gg.NewLinearGradient(x0, y0, x1, y1)
		addStops(g, p.Stops)
		return g
	case PaintRadial:
		x, y := img.dc.TransformPoint(p.From.X, p.From.Y)
		g := gg.NewRadialGradient(x, y, p.R0, x, y, p.R1)
		addStops(g, p.Stops)
		return g
	default:
		return gg.NewSolidPattern(p.Color)
	}
}

func addStops(g gg.Gradient, stops []Stop) {
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
}
