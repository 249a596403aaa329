package engine

import (
	"sync"
	"time"

	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
)

// Session is the animation of one section canvas.
type Session struct {
	mu      *sync.Mutex
	section scene.Section
	surface render.Surface
	system  *scene.System
	handle  frame.Handle
	state   State
	frames  int
}

func (s *Session) Name() string   { return s.section.Name }
func (s *Session) Canvas() string { return s.section.Canvas }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Bounds is the current surface size, or empty once stopped.
func (s *Session) Bounds() particle.Bounds {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface == nil {
		return particle.Bounds{}
	}
	return s.surface.Size()
}

func (s *Session) System() *scene.System {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.system
}

// Surface returns the drawing surface, nil after Stop.
func (s *Session) Surface() render.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface
}

// SessionStats is a snapshot of one session.
type SessionStats struct {
	Section string         `json:"section"`
	State   string         `json:"state"`
	Frames  int            `json:"frames"`
	Counts  map[string]int `json:"counts"`
	Total   int            `json:"total"`
}

// FrameHook observes a session after each drawn frame.
type FrameHook func(s *Session, now time.Duration)
