package scene

import (
	"math"
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

var (
	equationSymbols = []string{"∑", "∫", "∂", "λ", "π", "∞", "≈", "∇"}

	nucleusBeat    = particle.Pulse{Offset: 0.8, Amp: 0.3, Freq: 1}
	equationBreath = particle.Pulse{Offset: 0.7, Amp: 0.3, Freq: 1}
)

// Research combines brain waves, orbiting molecules and drifting equations.
func Research() Section {
	return Section{
		Name:   "research",
		Canvas: "research-bg-canvas",
		Layers: []Layer{
			{
				Name:  "brainwaves",
				Count: 5,
				Spawn: func(rng *rand.Rand, b particle.Bounds, i int) particle.Entity {
					return particle.Entity{
						Pos:       particle.Vec{Y: b.H / 6 * float64(i+1)},
						Phase:     rng.Float64() * particle.TwoPi,
						Size:      particle.Between(rng, 10, 30),
						PhaseStep: particle.Between(rng, 0.01, 0.03),
						Opacity:   particle.Between(rng, 0.1, 0.4),
						Kind:      i,
					}
				},
				Draw: drawBrainWave,
			},
			{
				Name:  "molecules",
				Count: 12,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := drift(rng, b, 0.3, particle.Between(rng, 4, 12))
					e.PhaseStep = 0.03
					for j := 0; j < 3; j++ {
						e.Orbits = append(e.Orbits, particle.Orbit{
							Angle:  float64(j) / 3 * particle.TwoPi,
							Radius: e.Size * 2,
							Speed:  particle.Between(rng, 0.05, 0.08),
						})
					}
					return e
				},
				Rule: particle.Rule{Boundary: particle.BoundaryWrap},
				Draw: drawMolecule,
			},
			{
				Name:  "equations",
				Count: 8,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := drift(rng, b, 0.2, particle.Between(rng, 15, 35))
					e.Opacity = particle.Between(rng, 0.2, 0.6)
					e.Kind = rng.Intn(len(equationSymbols))
					e.PhaseStep = 0.04
					return e
				},
				Rule: particle.Rule{Boundary: particle.BoundaryWrap},
				Draw: func(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
					a := equationBreath.Apply(e.Opacity, e.Phase)
					s.Text(equationSymbols[e.Kind%len(equationSymbols)], e.Pos, e.Size, render.Solid(render.Alpha(pal.Primary, a)))
				},
			},
		},
	}
}

func drawBrainWave(s render.Surface, pal render.Palette, e *particle.Entity, b particle.Bounds) {
	pts := wave(b, 5, func(x float64) float64 {
		return e.Pos.Y + math.Sin(x*0.01+e.Phase)*e.Size
	})
	edge := render.Alpha(pal.Primary, 0)
	s.StrokePath(pts, 2, render.LinearGradient(particle.Vec{}, particle.Vec{X: b.W},
		render.At(0, edge),
		render.At(0.5, render.Alpha(pal.Primary, e.Opacity)),
		render.At(1, edge),
	))
}

func drawMolecule(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	r := nucleusBeat.Apply(e.Size, e.Phase)
	s.FillCircle(e.Pos, r, render.RadialGradient(e.Pos, 0, r,
		render.At(0, render.Alpha(pal.Primary, 0.8)),
		render.At(1, render.Alpha(pal.Primary, 0.2)),
	))

	electron := render.Solid(render.Alpha(pal.Secondary, 0.7))
	orbit := render.Solid(render.Alpha(pal.Primary, 0.1))
	for _, o := range e.Orbits {
		s.FillCircle(o.Position(e.Pos), 2, electron)
		s.StrokeCircle(e.Pos, o.Radius, 1, orbit)
	}
}
