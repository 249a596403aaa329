package particle

import "testing"

func TestLinksThreshold(t *testing.T) {
	es := []Entity{
		{Pos: Vec{0, 0}},
		{Pos: Vec{50, 0}},
		{Pos: Vec{200, 0}},
	}

	links := Links(es, 120, 0.3)
	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}

	l := links[0]
	if l.A != 0 || l.B != 1 {
		t.Errorf("expected pair (0,1), got (%d,%d)", l.A, l.B)
	}
	if l.Distance != 50 {
		t.Errorf("expected distance 50, got %f", l.Distance)
	}
}

func TestLinkOpacityMonotonic(t *testing.T) {
	prev := LinkOpacity(0, 150, 0.2)
	if prev != 0.2 {
		t.Errorf("expected max opacity at zero distance, got %f", prev)
	}
	for d := 1.0; d < 150; d++ {
		o := LinkOpacity(d, 150, 0.2)
		if o >= prev {
			t.Fatalf("opacity not decreasing at %f: %f >= %f", d, o, prev)
		}
		prev = o
	}
	if LinkOpacity(150, 150, 0.2) != 0 {
		t.Error("expected zero opacity at threshold")
	}
}

func TestLinksDisabled(t *testing.T) {
	es := []Entity{{}, {}}
	if links := Links(es, 0, 1); links != nil {
		t.Errorf("expected no links, got %d", len(links))
	}
}

func BenchmarkLinks(b *testing.B) {
	es := make([]Entity, 20)
	for i := range es {
		es[i].Pos = Vec{float64(i * 10), float64(i * 7)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Links(es, 120, 0.3)
	}
}
