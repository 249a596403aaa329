package page

import (
	"testing"

	"github.com/san-kum/backdrop/internal/render"
)

func recorders(w, h int) render.Surface { return render.NewRecorder(w, h) }

func TestStaticLookup(t *testing.T) {
	p := NewStatic(recorders)
	s := p.Add("hero-bg-canvas", 800, 600)

	got, ok := p.Lookup("hero-bg-canvas")
	if !ok || got != s {
		t.Fatal("expected added surface")
	}
	if _, ok := p.Lookup("missing"); ok {
		t.Error("expected lookup miss")
	}

	p.Remove("hero-bg-canvas")
	if _, ok := p.Lookup("hero-bg-canvas"); ok {
		t.Error("expected canvas removed")
	}
}

func TestStaticMeasure(t *testing.T) {
	p := NewStatic(recorders)
	s := p.Add("a", 100, 50)
	p.Add("b", 10, 10)

	if !p.SetSize("a", 200, 80) {
		t.Fatal("expected resize of known canvas")
	}
	if p.SetSize("nope", 1, 1) {
		t.Error("expected resize of unknown canvas to fail")
	}

	w, h := p.Measure("a")
	if w != 200 || h != 80 {
		t.Errorf("expected 200x80, got %dx%d", w, h)
	}
	if s.Size().W != 100 {
		t.Error("surface should keep its size until re-measured")
	}

	p.SetAll(30, 40)
	for _, id := range p.IDs() {
		if w, h := p.Measure(id); w != 30 || h != 40 {
			t.Errorf("%s: expected 30x40, got %dx%d", id, w, h)
		}
	}

	if w, h := p.Measure("missing"); w != 0 || h != 0 {
		t.Error("expected zero size for missing canvas")
	}
}

func TestStaticIDsSorted(t *testing.T) {
	p := NewStatic(recorders)
	p.Add("c", 1, 1)
	p.Add("a", 1, 1)
	p.Add("b", 1, 1)

	ids := p.IDs()
	if ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("unexpected order %v", ids)
	}
}
