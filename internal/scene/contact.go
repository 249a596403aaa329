package scene

import (
	"math"
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

const (
	ringEvery     = 90
	messageChance = 0.05
	trailSteps    = 5
)

// contactIcons mark email, phone, social and web channels.
var contactIcons = []string{"@", "✆", "◎", "◇"}

// Contact pulses rings, links channel nodes and sends messages between
// random points.
func Contact(caps Caps) Section {
	return Section{
		Name:   "contact",
		Canvas: "contact-bg-canvas",
		Layers: []Layer{
			{
				Name: "rings",
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := particle.Scatter(rng, b, 0)
					e.Growth = particle.Between(rng, 1, 2.5)
					e.MaxSize = particle.Between(rng, 80, 200)
					e.Life = 0.6
					e.Decay = 0.008
					return e
				},
				Rule: particle.Rule{Expiry: particle.ExpiryRemove, Every: ringEvery, Cap: caps.Rings},
				Draw: drawRing,
			},
			{
				Name:  "nodes",
				Count: 8,
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					e := particle.Scatter(rng, b, 0.3)
					e.Size = particle.Between(rng, 4, 10)
					e.PhaseStep = 0.04
					e.Kind = rng.Intn(len(contactIcons))
					return e
				},
				Rule: particle.Rule{Boundary: particle.BoundaryBounce},
				Draw: drawChannel,
			},
			{
				Name: "messages",
				Spawn: func(rng *rand.Rand, b particle.Bounds, _ int) particle.Entity {
					from := particle.Scatter(rng, b, 0).Pos
					to := particle.Scatter(rng, b, 0).Pos
					return particle.Entity{
						Pos:    from,
						Vel:    to.Sub(from).Scale(0.02),
						Origin: from,
						Target: to,
						Life:   1,
						Decay:  0.02,
						Size:   particle.Between(rng, 2, 6),
					}
				},
				Rule: particle.Rule{Expiry: particle.ExpiryRemove, Chance: messageChance, Cap: caps.Messages},
				Draw: drawMessage,
			},
		},
		Links: &LinkRule{Layer: "nodes", Threshold: 150, MaxOpacity: 0.2, Width: 1.5, OnTop: true},
	}
}

func drawRing(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	for j := 0; j < 3; j++ {
		r := e.Size - float64(j)*15
		if r <= 0 {
			continue
		}
		s.StrokeCircle(e.Pos, r, 3-float64(j)*0.5, render.RadialGradient(e.Pos, math.Max(r-5, 0), r+5,
			render.At(0, render.Alpha(pal.Primary, 0)),
			render.At(0.5, render.Alpha(pal.Primary, e.Life*(1-float64(j)*0.3))),
			render.At(1, render.Alpha(pal.Primary, 0)),
		))
	}
}

func drawChannel(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	r := nodeBeat.Apply(e.Size, e.Phase)
	glow(s, pal, e.Pos, r*3)
	s.FillCircle(e.Pos, r, render.Solid(render.Alpha(pal.Primary, 0.9)))
	s.Text(contactIcons[e.Kind%len(contactIcons)], e.Pos, r, render.Solid(render.Alpha(pal.White, 0.9)))
}

// drawMessage paints a message and its trail. Progress runs from 0 to 1 as
// life runs out.
func drawMessage(s render.Surface, pal render.Palette, e *particle.Entity, _ particle.Bounds) {
	p := 1 - e.Life
	a := (1 - p/2) * (1 - p/2)
	for i := 0; i < trailSteps; i++ {
		f := float64(i)
		at := e.Origin.Lerp(e.Target, math.Max(0, p-f*0.05))
		s.FillCircle(at, e.Size*(1-f*0.15), render.Solid(render.Alpha(pal.Secondary, a*(1-f*0.2))))
	}
}
