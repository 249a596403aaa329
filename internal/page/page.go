// Package page models the host document the engine draws into: which
// section canvases exist and how large the layout makes them.
package page

import (
	"sort"
	"sync"

	"github.com/san-kum/backdrop/internal/render"
)

// Page exposes the canvases of a host document.
type Page interface {
	// Lookup returns the drawing surface of canvas id, if present.
	Lookup(id string) (render.Surface, bool)
	// Measure returns the current layout size of canvas id.
	Measure(id string) (w, h int)
}

// SurfaceFunc creates the surface for a newly added canvas.
type SurfaceFunc func(w, h int) render.Surface

type canvas struct {
	surface render.Surface
	w, h    int
}

// Static is an in-memory page whose layout is set explicitly.
type Static struct {
	mu       sync.RWMutex
	canvases map[string]*canvas
	newFn    SurfaceFunc
}

// NewStatic creates an empty page that builds surfaces with fn.
func NewStatic(fn SurfaceFunc) *Static {
	return &Static{canvases: map[string]*canvas{}, newFn: fn}
}

// Add places canvas id on the page with a layout size of w x h.
func (p *Static) Add(id string, w, h int) render.Surface {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := &canvas{surface: p.newFn(w, h), w: w, h: h}
	p.canvases[id] = c
	return c.surface
}

func (p *Static) Remove(id string) {
	p.mu.Lock()
	delete(p.canvases, id)
	p.mu.Unlock()
}

// SetSize changes the layout size of canvas id. The surface keeps its pixel
// size until the engine re-measures it.
func (p *Static) SetSize(id string, w, h int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.canvases[id]
	if ok {
		c.w, c.h = w, h
	}
	return ok
}

// SetAll changes the layout size of every canvas.
func (p *Static) SetAll(w, h int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.canvases {
		c.w, c.h = w, h
	}
}

// IDs returns the canvas ids in sorted order.
func (p *Static) IDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.canvases))
	for id := range p.canvases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (p *Static) Lookup(id string) (render.Surface, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.canvases[id]
	if !ok {
		return nil, false
	}
	return c.surface, true
}

func (p *Static) Measure(id string) (int, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.canvases[id]
	if !ok {
		return 0, 0
	}
	return c.w, c.h
}
