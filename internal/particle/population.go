package particle

import "math/rand"

// SpawnFunc creates the i-th entity of a population inside b.
type SpawnFunc func(rng *rand.Rand, b Bounds, i int) Entity

// StepFunc is an extra per-entity update run after integration.
type StepFunc func(e *Entity, rng *rand.Rand, b Bounds)

// Rule is the per-frame update contract of a population.
type Rule struct {
	Boundary Boundary
	Expiry   Expiry

	// Chance is the per-frame probability of inserting one entity.
	Chance float64
	// Every inserts one entity on the first frame and then every Every frames.
	Every int
	// Cap bounds the population size for insertions. Zero means unbounded.
	Cap int

	Step StepFunc
}

// Open reports whether the population changes size over time.
func (r Rule) Open() bool {
	return r.Chance > 0 || r.Every > 0 || r.Expiry == ExpiryRemove
}

type Population struct {
	Name     string
	Entities []Entity
	Rule     Rule
	Spawn    SpawnFunc

	frame int
}

// NewPopulation seeds n entities through spawn.
func NewPopulation(name string, n int, spawn SpawnFunc, rule Rule, rng *rand.Rand, b Bounds) *Population {
	p := &Population{
		Name:     name,
		Entities: make([]Entity, 0, n),
		Rule:     rule,
		Spawn:    spawn,
	}
	for i := 0; i < n && spawn != nil; i++ {
		p.Entities = append(p.Entities, spawn(rng, b, i))
	}
	return p
}

func (p *Population) Len() int { return len(p.Entities) }

// Frame returns the number of Advance calls so far.
func (p *Population) Frame() int { return p.frame }

func (p *Population) Open() bool { return p.Rule.Open() }

// Emit appends e unless the population is at its cap.
func (p *Population) Emit(e Entity) bool {
	if p.Rule.Cap > 0 && len(p.Entities) >= p.Rule.Cap {
		return false
	}
	p.Entities = append(p.Entities, e)
	return true
}

// Advance runs one frame: insertion, integration, boundary policy, expiry.
func (p *Population) Advance(rng *rand.Rand, b Bounds) (inserted, expired int) {
	p.frame++

	if p.Spawn != nil && p.due(rng) {
		if p.Emit(p.Spawn(rng, b, len(p.Entities))) {
			inserted++
		}
	}

	alive := 0
	for i := range p.Entities {
		e := &p.Entities[i]
		e.step()
		if p.Rule.Step != nil {
			p.Rule.Step(e, rng, b)
		}
		p.Rule.Boundary.Apply(e, b)

		if e.Expired() {
			expired++
			switch {
			case p.Rule.Expiry == ExpiryRespawn && p.Spawn != nil:
				fresh := p.Spawn(rng, b, i)
				e.Pos = fresh.Pos
				e.Life = fresh.Life
				e.Size = fresh.Size
			case p.Rule.Expiry == ExpiryRemove:
				continue
			}
		}

		if alive != i {
			p.Entities[alive] = *e
		}
		alive++
	}

	for i := alive; i < len(p.Entities); i++ {
		p.Entities[i] = Entity{}
	}
	p.Entities = p.Entities[:alive]
	return inserted, expired
}

func (p *Population) due(rng *rand.Rand) bool {
	if p.Rule.Chance > 0 && rng.Float64() < p.Rule.Chance {
		return true
	}
	return p.Rule.Every > 0 && (p.frame-1)%p.Rule.Every == 0
}
