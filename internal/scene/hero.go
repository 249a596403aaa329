package scene

import (
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

var heroTwinkle = particle.Pulse{Offset: 0.85, Amp: 0.15, Freq: 1}

// Hero is a field of slow drifting dots.
func Hero() Section {
	return Section{
		Name:   "hero",
		Canvas: "hero-bg-canvas",
		Layers: []Layer{{
			Name:  "particles",
			Count: 50,
			Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
				e := particle.Scatter(rng, b, 0.5)
				e.Size = particle.Between(rng, 1, 3)
				e.Opacity = particle.Between(rng, 0.2, 0.7)
				e.PhaseStep = 0.02
				return e
			},
			Rule: particle.Rule{Boundary: particle.BoundaryWrap},
			Draw: func(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
				a := heroTwinkle.Apply(e.Opacity, e.Phase)
				s.FillCircle(e.Pos, e.Size, render.Solid(render.Alpha(pal.Primary, a)))
			},
		}},
	}
}
