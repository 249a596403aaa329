package scene

import (
	"math"
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

var (
	trophyBreath = particle.Pulse{Offset: 0.7, Amp: 0.3, Freq: 1}
	trophyScale  = particle.Pulse{Offset: 0.9, Amp: 0.1, Freq: 1.5}
	sparkleBlink = particle.Pulse{Offset: 0.6, Amp: 0.4, Freq: 1}
)

const (
	medalSwing   = 5
	sparkleFloor = 50
	sparkleRange = 100
)

// Achievements shows spinning trophies, swinging medals and respawning sparkles.
func Achievements() Section {
	return Section{
		Name:   "achievements",
		Canvas: "achievements-bg-canvas",
		Layers: []Layer{
			{
				Name:  "trophies",
				Count: 8,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := drift(rng, b, 0.3, particle.Between(rng, 15, 35))
					e.Rotation = rng.Float64() * particle.TwoPi
					e.Spin = spread(rng, 0.01)
					e.PhaseStep = 0.03
					e.Opacity = particle.Between(rng, 0.3, 0.7)
					return e
				},
				Rule: particle.Rule{Boundary: particle.BoundaryWrap},
				Draw: drawTrophy,
			},
			{
				Name:  "medals",
				Count: 6,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := drift(rng, b, 0.2, particle.Between(rng, 10, 25))
					e.PhaseStep = particle.Between(rng, 0.02, 0.05)
					e.Opacity = particle.Between(rng, 0.3, 0.8)
					return e
				},
				Rule: particle.Rule{Boundary: particle.BoundaryWrap},
				Draw: drawMedal,
			},
			{
				Name:  "sparkles",
				Count: 50,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := particle.Scatter(rng, b, 0.5)
					e.Size = particle.Between(rng, 1, 4)
					e.PhaseStep = particle.Between(rng, 0.02, 0.07)
					e.Life = particle.Between(rng, sparkleFloor, sparkleFloor+sparkleRange)
					e.Decay = 1
					return e
				},
				Rule: particle.Rule{Boundary: particle.BoundaryWrap, Expiry: particle.ExpiryRespawn},
				Draw: drawSparkle,
			},
		},
	}
}

func drawTrophy(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	a := trophyBreath.Apply(e.Opacity, e.Phase)
	sz := trophyScale.Apply(e.Size, e.Phase)

	s.Push()
	s.Translate(e.Pos.X, e.Pos.Y)
	s.Rotate(e.Rotation)

	s.FillRect(-sz/3, -sz/2, sz*0.66, sz*0.8, render.RadialGradient(particle.Vec{}, 0, sz,
		render.At(0, render.Alpha(pal.Gold, a)),
		render.At(0.7, render.Alpha(pal.Amber, a*0.8)),
		render.At(1, render.Alpha(pal.Goldenrod, a*0.6)),
	))

	handle := render.Solid(render.Alpha(pal.Gold, a*0.7))
	s.StrokePath(arc(particle.Vec{X: -sz / 2, Y: -sz / 4}, sz/6, 0, math.Pi, 12), 2, handle)
	s.StrokePath(arc(particle.Vec{X: sz / 2, Y: -sz / 4}, sz/6, 0, math.Pi, 12), 2, handle)

	s.FillRect(-sz/2, sz/3, sz, sz/6, render.Solid(render.Alpha(pal.Bronze, a)))
	s.Pop()
}

func drawMedal(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	sz, a := e.Size, e.Opacity

	s.Push()
	s.Translate(e.Pos.X+math.Sin(e.Phase)*medalSwing, e.Pos.Y)
	s.FillRect(-2, -sz, 4, sz*0.7, render.Solid(render.Alpha(pal.Ribbon, a)))
	s.FillCircle(particle.Vec{}, sz*0.8, render.RadialGradient(particle.Vec{}, 0, sz,
		render.At(0, render.Alpha(pal.Gold, a)),
		render.At(0.8, render.Alpha(pal.Amber, a*0.8)),
		render.At(1, render.Alpha(pal.Bronze, a*0.6)),
	))
	s.Text("★", particle.Vec{}, sz*0.8, render.Solid(render.Alpha(pal.White, a*0.9)))
	s.Pop()
}

// drawSparkle fades sparkles out as their life runs down.
func drawSparkle(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	a := sparkleBlink.Apply(1, e.Phase) * (e.Life / sparkleRange) * 0.8
	s.FillPath(star(e.Pos, 4, e.Size, e.Size/2, e.Phase), render.Solid(render.Alpha(pal.White, a)))
}
