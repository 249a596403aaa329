package scene

import (
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

var nodeBeat = particle.Pulse{Offset: 0.8, Amp: 0.4, Freq: 1}

// Experience is a bouncing career network with proximity links.
func Experience() Section {
	return Section{
		Name:   "experience",
		Canvas: "experience-bg-canvas",
		Layers: []Layer{{
			Name:  "nodes",
			Count: 20,
			Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
				e := particle.Scatter(rng, b, 0.4)
				e.Size = particle.Between(rng, 2, 6)
				e.PhaseStep = 0.03
				return e
			},
			Rule: particle.Rule{Boundary: particle.BoundaryBounce},
			Draw: func(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
				r := nodeBeat.Apply(e.Size, e.Phase)
				glow(s, pal, e.Pos, r*2)
				s.FillCircle(e.Pos, r, render.Solid(render.Alpha(pal.Primary, 0.8)))
			},
		}},
		Links: &LinkRule{Layer: "nodes", Threshold: 120, MaxOpacity: 0.3, Width: 1.5},
	}
}
