package scene

import (
	"math"
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

var bookBreath = particle.Pulse{Offset: 0.7, Amp: 0.3, Freq: 1}

// Education layers rolling knowledge waves under floating books.
func Education() Section {
	return Section{
		Name:   "education",
		Canvas: "education-bg-canvas",
		Layers: []Layer{
			{
				Name:  "waves",
				Count: 4,
				// Phase counts frames and serves as the wave clock.
				Spawn: func(_ *rand.Rand, _ particle.Bounds, i int) particle.Entity {
					return particle.Entity{Kind: i, PhaseStep: 1}
				},
				Draw: drawKnowledgeWave,
			},
			{
				Name:  "books",
				Count: 12,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := drift(rng, b, 0.3, particle.Between(rng, 8, 23))
					e.Rotation = rng.Float64() * particle.TwoPi
					e.Spin = spread(rng, 0.02)
					e.Opacity = particle.Between(rng, 0.1, 0.5)
					e.PhaseStep = 0.05
					return e
				},
				Rule: particle.Rule{Boundary: particle.BoundaryWrap},
				Draw: drawBook,
			},
		},
	}
}

func drawKnowledgeWave(s render.Surface, pal render.Palette, e *particle.Entity, b particle.Bounds) {
	i := float64(e.Kind)
	t := e.Phase
	pts := wave(b, 8, func(x float64) float64 {
		return b.H/2 +
			math.Sin((x+t*1.5+i*80)*0.008)*(15+i*8) +
			math.Cos((x+t*2+i*60)*0.012)*(8+i*4)
	})
	edge := render.Alpha(pal.Primary, 0.08-i*0.015)
	paint := render.LinearGradient(particle.Vec{}, particle.Vec{X: b.W},
		render.At(0, edge),
		render.At(0.5, render.Alpha(pal.Secondary, 0.12-i*0.02)),
		render.At(1, edge),
	)
	s.StrokePath(pts, 2+i*0.5, paint)
}

func drawBook(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	a := bookBreath.Apply(e.Opacity, e.Phase)
	sz := e.Size

	s.Push()
	s.Translate(e.Pos.X, e.Pos.Y)
	s.Rotate(e.Rotation)
	s.FillRect(-sz/2, -sz/3, sz, sz*0.7, render.Solid(render.Alpha(pal.Primary, a)))
	s.FillRect(-sz/2, -sz/3, sz*0.15, sz*0.7, render.Solid(render.Alpha(pal.Secondary, a*0.8)))
	s.Pop()
}
