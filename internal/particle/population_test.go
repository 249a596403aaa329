package particle

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Population", func() {
	var (
		rng *rand.Rand
		b   Bounds
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(7))
		b = Bounds{W: 320, H: 200}
	})

	scatter := func(speed, size float64) SpawnFunc {
		return func(rng *rand.Rand, b Bounds, _ int) Entity {
			e := Scatter(rng, b, speed)
			e.Size = size
			e.Extent = Vec{size, size}
			e.PhaseStep = 0.02
			return e
		}
	}

	Describe("seeding", func() {
		It("places every entity inside the canvas with a bounded velocity", func() {
			p := NewPopulation("dots", 50, scatter(1, 2), Rule{}, rng, b)
			Expect(p.Len()).To(Equal(50))
			for _, e := range p.Entities {
				Expect(e.Pos.X).To(BeNumerically(">=", 0))
				Expect(e.Pos.X).To(BeNumerically("<", b.W))
				Expect(e.Pos.Y).To(BeNumerically(">=", 0))
				Expect(e.Pos.Y).To(BeNumerically("<", b.H))
				Expect(e.Vel.X).To(BeNumerically(">=", -0.5))
				Expect(e.Vel.X).To(BeNumerically("<", 0.5))
				Expect(e.Phase).To(BeNumerically(">=", 0))
				Expect(e.Phase).To(BeNumerically("<", TwoPi))
			}
		})

		It("collapses to the origin on a zero-size canvas", func() {
			p := NewPopulation("dots", 5, scatter(1, 2), Rule{}, rng, Bounds{})
			for _, e := range p.Entities {
				Expect(e.Pos).To(Equal(Vec{}))
			}
		})
	})

	Describe("fixed populations", func() {
		It("keeps wrapped entities within the margin", func() {
			p := NewPopulation("dots", 40, scatter(6, 3), Rule{Boundary: BoundaryWrap}, rng, b)
			for i := 0; i < 500; i++ {
				p.Advance(rng, b)
				for _, e := range p.Entities {
					Expect(e.Pos.X).To(BeNumerically(">=", -e.Size))
					Expect(e.Pos.X).To(BeNumerically("<=", b.W+e.Size))
					Expect(e.Pos.Y).To(BeNumerically(">=", -e.Size))
					Expect(e.Pos.Y).To(BeNumerically("<=", b.H+e.Size))
				}
			}
			Expect(p.Len()).To(Equal(40))
		})

		It("keeps bounced entities inside the canvas", func() {
			p := NewPopulation("nodes", 20, scatter(8, 4), Rule{Boundary: BoundaryBounce}, rng, b)
			for i := 0; i < 500; i++ {
				p.Advance(rng, b)
				for _, e := range p.Entities {
					Expect(b.Contains(e.Pos, Vec{})).To(BeTrue())
				}
			}
			Expect(p.Len()).To(Equal(20))
		})

		It("pulls entities back after the canvas shrinks", func() {
			p := NewPopulation("nodes", 20, scatter(1, 4), Rule{Boundary: BoundaryBounce}, rng, b)
			small := Bounds{W: 50, H: 40}
			p.Advance(rng, small)
			for _, e := range p.Entities {
				Expect(small.Contains(e.Pos, Vec{})).To(BeTrue())
			}
		})

		It("advances the phase by its fixed increment", func() {
			p := NewPopulation("dots", 3, scatter(1, 1), Rule{}, rng, b)
			before := make([]float64, p.Len())
			for i, e := range p.Entities {
				before[i] = e.Phase
			}
			for n := 1; n <= 10; n++ {
				p.Advance(rng, b)
				for i, e := range p.Entities {
					Expect(e.Phase).To(BeNumerically("~", before[i]+float64(n)*0.02, 1e-9))
				}
			}
			Expect(p.Frame()).To(Equal(10))
		})
	})

	Describe("open populations", func() {
		lifetime := func(life, decay float64) SpawnFunc {
			return func(rng *rand.Rand, b Bounds, _ int) Entity {
				e := Scatter(rng, b, 0)
				e.Life = life
				e.Decay = decay
				return e
			}
		}

		It("removes entities whose lifetime ran out", func() {
			p := NewPopulation("waves", 3, lifetime(1, 0.25), Rule{Expiry: ExpiryRemove}, rng, b)
			prev := p.Entities[0].Life
			for i := 0; i < 3; i++ {
				_, expired := p.Advance(rng, b)
				Expect(expired).To(Equal(0))
				Expect(p.Entities[0].Life).To(BeNumerically("<", prev))
				prev = p.Entities[0].Life
			}
			_, expired := p.Advance(rng, b)
			Expect(expired).To(Equal(3))
			Expect(p.Len()).To(Equal(0))
			Expect(p.Open()).To(BeTrue())
		})

		It("respawns entities in place", func() {
			p := NewPopulation("sparkles", 4, lifetime(2, 1), Rule{Expiry: ExpiryRespawn}, rng, b)
			p.Advance(rng, b)
			_, expired := p.Advance(rng, b)
			Expect(expired).To(Equal(4))
			Expect(p.Len()).To(Equal(4))
			for _, e := range p.Entities {
				Expect(e.Life).To(Equal(2.0))
			}
		})

		It("never grows past its cap", func() {
			p := NewPopulation("messages", 0, lifetime(1, 0.001), Rule{Expiry: ExpiryRemove, Chance: 1, Cap: 5}, rng, b)
			for i := 0; i < 50; i++ {
				p.Advance(rng, b)
				Expect(p.Len()).To(BeNumerically("<=", 5))
			}
			Expect(p.Len()).To(Equal(5))
		})

		It("inserts on a fixed cadence starting with the first frame", func() {
			p := NewPopulation("rings", 0, lifetime(100, 0), Rule{Every: 90}, rng, b)
			inserted, _ := p.Advance(rng, b)
			Expect(inserted).To(Equal(1))
			for i := 2; i <= 90; i++ {
				inserted, _ = p.Advance(rng, b)
				Expect(inserted).To(Equal(0))
			}
			inserted, _ = p.Advance(rng, b)
			Expect(inserted).To(Equal(1))
			Expect(p.Len()).To(Equal(2))
		})

		It("expires entities that outgrow their maximum size", func() {
			p := &Population{
				Entities: []Entity{{Size: 9, Growth: 2, MaxSize: 10}},
				Rule:     Rule{Expiry: ExpiryRemove},
			}
			_, expired := p.Advance(rng, b)
			Expect(expired).To(Equal(1))
			Expect(p.Len()).To(BeZero())
		})

		It("refuses emits at the cap", func() {
			p := &Population{Rule: Rule{Cap: 1}}
			Expect(p.Emit(Entity{})).To(BeTrue())
			Expect(p.Emit(Entity{})).To(BeFalse())
		})
	})

	Describe("step hooks", func() {
		It("runs after integration for every entity", func() {
			calls := 0
			rule := Rule{Step: func(e *Entity, _ *rand.Rand, _ Bounds) {
				calls++
				e.Opacity = 1
			}}
			p := NewPopulation("hooked", 4, scatter(0, 1), rule, rng, b)
			p.Advance(rng, b)
			Expect(calls).To(Equal(4))
			for _, e := range p.Entities {
				Expect(e.Opacity).To(Equal(1.0))
			}
		})

		It("advances orbit angles", func() {
			p := &Population{Entities: []Entity{{Orbits: []Orbit{{Angle: 0, Radius: 5, Speed: 0.5}}}}}
			p.Advance(rng, b)
			Expect(p.Entities[0].Orbits[0].Angle).To(Equal(0.5))
		})
	})
})
