package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/backdrop/internal/particle"
)

type PaintKind uint8

const (
	PaintSolid PaintKind = iota
	PaintLinear
	PaintRadial
)

// Stop is a gradient colour stop at Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

func At(offset float64, c color.NRGBA) Stop { return Stop{offset, c} }

// Paint is a fill or stroke source: a solid colour or a gradient.
// Gradient coordinates are in the current (transformed) user space.
type Paint struct {
	Kind  PaintKind
	Color color.NRGBA

	From, To particle.Vec
	R0, R1   float64
	Stops    []Stop
}

func Solid(c color.NRGBA) Paint { return Paint{Kind: PaintSolid, Color: c} }

func LinearGradient(from, to particle.Vec, stops ...Stop) Paint {
	return Paint{Kind: PaintLinear, From: from, To: to, Stops: stops}
}

// RadialGradient runs from radius r0 to r1 around center.
func RadialGradient(center particle.Vec, r0, r1 float64, stops ...Stop) Paint {
	return Paint{Kind: PaintRadial, From: center, To: center, R0: r0, R1: r1, Stops: stops}
}

func RGB(r, g, b uint8) color.NRGBA { return color.NRGBA{r, g, b, 0xff} }

// Alpha returns c with its alpha set to a in [0, 1].
func Alpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = unit(a)
	return c
}

// Fade multiplies every colour alpha of p by a.
func (p Paint) Fade(a float64) Paint {
	p.Color = fade(p.Color, a)
	if len(p.Stops) > 0 {
		stops := make([]Stop, len(p.Stops))
		for i, s := range p.Stops {
			stops[i] = Stop{s.Offset, fade(s.Color, a)}
		}
		p.Stops = stops
	}
	return p
}

// Average collapses a gradient into one representative colour.
func (p Paint) Average() color.NRGBA {
	if p.Kind == PaintSolid || len(p.Stops) == 0 {
		return p.Color
	}
	var r, g, b, a float64
	for _, s := range p.Stops {
		r += float64(s.Color.R)
		g += float64(s.Color.G)
		b += float64(s.Color.B)
		a += float64(s.Color.A)
	}
	n := float64(len(p.Stops))
	return color.NRGBA{uint8(r / n), uint8(g / n), uint8(b / n), uint8(a / n)}
}

// Opacity is the strongest alpha anywhere in the paint, in [0, 1].
func (p Paint) Opacity() float64 {
	if p.Kind == PaintSolid || len(p.Stops) == 0 {
		return float64(p.Color.A) / 255
	}
	var m uint8
	for _, s := range p.Stops {
		if s.Color.A > m {
			m = s.Color.A
		}
	}
	return float64(m) / 255
}

// Hex formats c as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func fade(c color.NRGBA, a float64) color.NRGBA {
	c.A = unit(float64(c.A) / 255 * a)
	return c
}

func unit(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}
