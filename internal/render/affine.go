package render

import (
	"math"

	"github.com/san-kum/backdrop/internal/particle"
)

// affine maps x' = a*x + c*y + e, y' = b*x + d*y + f.
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

// mul returns the transform applying n first, then m.
func (m affine) mul(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func (m affine) translate(x, y float64) affine {
	return m.mul(affine{a: 1, d: 1, e: x, f: y})
}

func (m affine) rotate(angle float64) affine {
	s, c := math.Sincos(angle)
	return m.mul(affine{a: c, b: s, c: -s, d: c})
}

func (m affine) apply(p particle.Vec) particle.Vec {
	return particle.Vec{
		X: m.a*p.X + m.c*p.Y + m.e,
		Y: m.b*p.X + m.d*p.Y + m.f,
	}
}
