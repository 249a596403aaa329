package scene

import (
	"math"
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

// drift scatters an entity with the common wrap margin of its size.
func drift(rng *rand.Rand, b particle.Bounds, speed, size float64) particle.Entity {
	e := particle.Scatter(rng, b, speed)
	e.Size = size
	e.Extent = particle.Vec{X: size, Y: size}
	return e
}

// spread returns a uniform value in [-w/2, w/2).
func spread(rng *rand.Rand, w float64) float64 {
	return (rng.Float64() - 0.5) * w
}

// glow fills a soft halo of radius r fading from the primary colour.
func glow(s render.Surface, pal render.Palette, c particle.Vec, r float64) {
	s.FillCircle(c, r, render.RadialGradient(c, 0, r,
		render.At(0, render.Alpha(pal.Primary, 0.6)),
		render.At(0.5, render.Alpha(pal.Secondary, 0.3)),
		render.At(1, render.Alpha(pal.Primary, 0)),
	))
}

// star returns the outline of an n-point star rotated by angle.
func star(c particle.Vec, n int, outer, inner, angle float64) []particle.Vec {
	pts := make([]particle.Vec, 0, 2*n)
	step := math.Pi / float64(n)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := angle - math.Pi/2 + float64(i)*step
		pts = append(pts, c.Add(particle.Polar(a, r)))
	}
	return pts
}

// arc returns points along a circle from a0 to a1.
func arc(c particle.Vec, r, a0, a1 float64, steps int) []particle.Vec {
	pts := make([]particle.Vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		pts = append(pts, c.Add(particle.Polar(a, r)))
	}
	return pts
}

// wave samples y(x) across the canvas every step pixels.
func wave(b particle.Bounds, step float64, y func(x float64) float64) []particle.Vec {
	if b.W <= 0 {
		return nil
	}
	pts := make([]particle.Vec, 0, int(b.W/step)+2)
	for x := 0.0; x <= b.W; x += step {
		pts = append(pts, particle.Vec{X: x, Y: y(x)})
	}
	return pts
}
