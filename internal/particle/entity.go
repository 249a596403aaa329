package particle

import (
	"math"
	"math/rand"
)

const TwoPi = 2 * math.Pi

// Entity is one simulated visual element. Fields a flavour does not use stay zero.
type Entity struct {
	Pos Vec
	Vel Vec

	Phase     float64
	PhaseStep float64

	Size    float64
	Opacity float64

	// Extent is the wrap margin on each axis.
	Extent Vec
	W, H   float64

	Rotation float64
	Spin     float64

	Life  float64
	Decay float64

	Growth  float64
	MaxSize float64

	Origin Vec
	Target Vec

	Kind   int
	Orbits []Orbit
	Emits  *Population
}

// Orbit is a satellite circling its entity.
type Orbit struct {
	Angle  float64
	Radius float64
	Speed  float64
}

// Position returns the satellite position around center.
func (o Orbit) Position(center Vec) Vec {
	return center.Add(Polar(o.Angle, o.Radius))
}

// step integrates one frame. Boundary and expiry are applied by the population.
func (e *Entity) step() {
	e.Pos = e.Pos.Add(e.Vel)
	e.Phase += e.PhaseStep
	e.Rotation += e.Spin
	e.Size += e.Growth
	if e.Decay > 0 {
		e.Life -= e.Decay
	}
	for i := range e.Orbits {
		e.Orbits[i].Angle += e.Orbits[i].Speed
	}
}

// Expired reports whether a lifetime-bound entity ran out of life or outgrew MaxSize.
func (e *Entity) Expired() bool {
	if e.Decay > 0 && e.Life <= 0 {
		return true
	}
	return e.MaxSize > 0 && e.Size > e.MaxSize
}

// Scatter seeds an entity uniformly inside b with velocity components in
// [-speed/2, speed/2) and a phase in [0, 2π). A zero-size b puts it at the origin.
func Scatter(rng *rand.Rand, b Bounds, speed float64) Entity {
	return Entity{
		Pos:   Vec{rng.Float64() * math.Max(b.W, 0), rng.Float64() * math.Max(b.H, 0)},
		Vel:   Vec{(rng.Float64() - 0.5) * speed, (rng.Float64() - 0.5) * speed},
		Phase: rng.Float64() * TwoPi,
	}
}

// Between returns a uniform value in [lo, hi).
func Between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
