package particle

import "math"

// Pulse derives a breathing size or opacity from an entity phase:
// base * (Offset + Amp*sin(phase*Freq)).
type Pulse struct {
	Offset float64
	Amp    float64
	Freq   float64
}

func (p Pulse) Apply(base, phase float64) float64 {
	return base * (p.Offset + p.Amp*math.Sin(phase*p.Freq))
}

// Period is the phase distance after which Apply repeats.
func (p Pulse) Period() float64 {
	if p.Freq == 0 {
		return math.Inf(1)
	}
	return TwoPi / math.Abs(p.Freq)
}
