package scene

import (
	"math/rand"

	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
)

// DrawFunc renders one entity of a layer.
type DrawFunc func(s render.Surface, pal render.Palette, e *particle.Entity, b particle.Bounds)

// Layer is one entity class of a section.
type Layer struct {
	Name  string
	Count int
	Spawn particle.SpawnFunc
	Rule  particle.Rule
	Draw  DrawFunc
}

// LinkRule draws lines between close entities of Layer.
type LinkRule struct {
	Layer      string
	Threshold  float64
	MaxOpacity float64
	Width      float64
	// OnTop draws the lines after every layer instead of right before Layer.
	OnTop bool
}

type Section struct {
	Name   string
	Canvas string
	Layers []Layer
	Links  *LinkRule
}

// System is a section instantiated for one canvas.
type System struct {
	Section     Section
	Populations []*particle.Population

	rng *rand.Rand
}

// Instantiate seeds every layer of s inside b.
func (s Section) Instantiate(rng *rand.Rand, b particle.Bounds) *System {
	sys := &System{Section: s, rng: rng}
	for _, l := range s.Layers {
		sys.Populations = append(sys.Populations, particle.NewPopulation(l.Name, l.Count, l.Spawn, l.Rule, rng, b))
	}
	return sys
}

// Advance runs one frame on every layer.
func (sys *System) Advance(b particle.Bounds) (inserted, expired int) {
	for _, p := range sys.Populations {
		in, ex := p.Advance(sys.rng, b)
		inserted += in
		expired += ex
	}
	return inserted, expired
}

// Draw clears s and paints every live entity.
func (sys *System) Draw(s render.Surface, pal render.Palette) {
	s.Clear()
	b := s.Size()
	links := sys.Section.Links

	for i, l := range sys.Section.Layers {
		p := sys.Populations[i]
		if links != nil && !links.OnTop && links.Layer == l.Name {
			drawLinks(s, pal, p.Entities, links)
		}
		if l.Draw == nil {
			continue
		}
		for j := range p.Entities {
			l.Draw(s, pal, &p.Entities[j], b)
		}
	}

	if links != nil && links.OnTop {
		if p := sys.Population(links.Layer); p != nil {
			drawLinks(s, pal, p.Entities, links)
		}
	}
}

// Population returns the layer population called name, or nil.
func (sys *System) Population(name string) *particle.Population {
	for _, p := range sys.Populations {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Counts returns the live entity count per layer. Child emitters are
// reported under "<layer>.emitted".
func (sys *System) Counts() map[string]int {
	counts := make(map[string]int, len(sys.Populations))
	for _, p := range sys.Populations {
		counts[p.Name] = p.Len()
		emitted, hasChildren := 0, false
		for _, e := range p.Entities {
			if e.Emits != nil {
				hasChildren = true
				emitted += e.Emits.Len()
			}
		}
		if hasChildren {
			counts[p.Name+".emitted"] = emitted
		}
	}
	return counts
}

// Total is the number of live entities across layers, children included.
func (sys *System) Total() int {
	n := 0
	for _, c := range sys.Counts() {
		n += c
	}
	return n
}

func drawLinks(s render.Surface, pal render.Palette, es []particle.Entity, rule *LinkRule) {
	for _, l := range particle.Links(es, rule.Threshold, rule.MaxOpacity) {
		a, b := es[l.A].Pos, es[l.B].Pos
		paint := render.LinearGradient(a, b,
			render.At(0, render.Alpha(pal.Primary, l.Opacity)),
			render.At(0.5, render.Alpha(pal.Secondary, l.Opacity*1.2)),
			render.At(1, render.Alpha(pal.Primary, l.Opacity)),
		)
		s.StrokeLine(a, b, rule.Width, paint)
	}
}
