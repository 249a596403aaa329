package scene

import (
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

const (
	streamEmitChance = 0.1
	streamFlowSpeed  = 2
)

var blockBreath = particle.Pulse{Offset: 0.7, Amp: 0.3, Freq: 1}

// Projects floats code blocks over rotating data streams.
func Projects(caps Caps) Section {
	return Section{
		Name:   "projects",
		Canvas: "projects-bg-canvas",
		Layers: []Layer{
			{
				Name:  "blocks",
				Count: 15,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := particle.Scatter(rng, b, 0.5)
					e.W = particle.Between(rng, 20, 60)
					e.H = particle.Between(rng, 10, 30)
					e.Size = e.W
					e.Extent = particle.Vec{X: e.W, Y: e.H}
					e.Rotation = rng.Float64() * particle.TwoPi
					e.Spin = spread(rng, 0.01)
					e.Opacity = particle.Between(rng, 0.2, 0.6)
					e.PhaseStep = 0.04
					return e
				},
				Rule: particle.Rule{Boundary: particle.BoundaryWrap},
				Draw: drawCodeBlock,
			},
			{
				Name:  "streams",
				Count: 8,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := particle.Scatter(rng, b, 0)
					e.Size = particle.Between(rng, 50, 150)
					e.Rotation = rng.Float64() * particle.TwoPi
					e.Spin = particle.Between(rng, 0.01, 0.03)
					e.Opacity = particle.Between(rng, 0.1, 0.4)
					e.Emits = &particle.Population{
						Name: "flow",
						Rule: particle.Rule{Expiry: particle.ExpiryRemove, Cap: caps.Streams},
					}
					return e
				},
				Rule: particle.Rule{Step: emitFlow},
				Draw: drawStream,
			},
		},
	}
}

// emitFlow releases stream particles at the stream origin and pushes every
// live one along the current stream angle.
func emitFlow(e *particle.Entity, rng *rand.Rand, b particle.Bounds) {
	if e.Emits == nil {
		return
	}
	if rng.Float64() < streamEmitChance {
		e.Emits.Emit(particle.Entity{
			Pos:   e.Pos,
			Life:  1,
			Decay: 0.02,
			Size:  particle.Between(rng, 1, 4),
		})
	}
	v := particle.Polar(e.Rotation, streamFlowSpeed)
	for i := range e.Emits.Entities {
		e.Emits.Entities[i].Vel = v
	}
	e.Emits.Advance(rng, b)
}

func drawCodeBlock(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	a := blockBreath.Apply(e.Opacity, e.Phase)
	w, h := e.W, e.H

	s.Push()
	s.Translate(e.Pos.X, e.Pos.Y)
	s.Rotate(e.Rotation)
	s.FillRect(-w/2, -h/2, w, h, render.LinearGradient(
		particle.Vec{X: -w / 2, Y: -h / 2}, particle.Vec{X: w / 2, Y: h / 2},
		render.At(0, render.Alpha(pal.Primary, a)),
		render.At(0.5, render.Alpha(pal.Secondary, a*0.8)),
		render.At(1, render.Alpha(pal.Primary, a*0.6)),
	))
	code := render.Solid(render.Alpha(pal.White, a*0.3))
	for i := 0; i < 3; i++ {
		y := -h/2 + float64(i+1)*h/4
		s.StrokeLine(particle.Vec{X: -w/2 + 2, Y: y}, particle.Vec{X: w/2 - 2, Y: y}, 1, code)
	}
	s.Pop()
}

func drawStream(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	if e.Emits == nil {
		return
	}
	for _, p := range e.Emits.Entities {
		s.FillCircle(p.Pos, p.Size*p.Life, render.Solid(render.Alpha(pal.Primary, e.Opacity*p.Life)))
	}
}
