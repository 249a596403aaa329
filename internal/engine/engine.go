package engine

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/page"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
)

type Option func(*Engine)

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func WithTheme(t render.Theme) Option {
	return func(e *Engine) { e.theme = t }
}

// WithSeed makes runs reproducible. Session i is seeded with seed+i.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

func WithFrameHook(h FrameHook) Option {
	return func(e *Engine) { e.hook = h }
}

type Engine struct {
	sched    frame.Scheduler
	sections []scene.Section
	logger   *log.Logger
	theme    render.Theme
	seed     int64
	hook     FrameHook

	mu       sync.Mutex
	page     page.Page
	sessions []*Session
	started  bool
	stopped  bool
	paused   bool
}

func New(sched frame.Scheduler, sections []scene.Section, opts ...Option) *Engine {
	e := &Engine{
		sched:    sched,
		sections: sections,
		logger:   log.New(io.Discard),
		theme:    render.DefaultTheme,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.seed == 0 {
		e.seed = time.Now().UnixNano()
	}
	return e
}

// Start begins a session for every section whose canvas exists on p and
// returns how many started.
func (e *Engine) Start(p page.Page) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return 0, ErrStopped
	}
	if e.started {
		return 0, ErrAlreadyStarted
	}
	e.started = true
	e.page = p

	for i, sec := range e.sections {
		sess := &Session{mu: &e.mu, section: sec}
		e.sessions = append(e.sessions, sess)

		surface, ok := p.Lookup(sec.Canvas)
		if !ok {
			e.logger.Debug("canvas missing, skipping", "section", sec.Name, "canvas", sec.Canvas)
			continue
		}
		surface.Resize(p.Measure(sec.Canvas))

		rng := rand.New(rand.NewSource(e.seed + int64(i)))
		sess.surface = surface
		sess.system = sec.Instantiate(rng, surface.Size())
		sess.state = Running
		sess.handle = e.sched.Request(e.callback(sess))

		e.logger.Debug("session started", "section", sec.Name, "size", surface.Size())
	}

	n := e.running()
	e.logger.Info("engine started", "sessions", n, "sections", len(e.sections))
	return n, nil
}

func (e *Engine) callback(s *Session) frame.Callback {
	var cb frame.Callback
	cb = func(now time.Duration) {
		e.mu.Lock()
		if s.state != Running {
			e.mu.Unlock()
			return
		}
		if !e.paused {
			s.system.Advance(s.surface.Size())
		}
		s.system.Draw(s.surface, e.theme.Palette)
		s.frames++
		e.mu.Unlock()

		if e.hook != nil {
			e.hook(s, now)
		}

		e.mu.Lock()
		if s.state == Running {
			s.handle = e.sched.Request(cb)
		}
		e.mu.Unlock()
	}
	return cb
}

// Resize re-measures every running canvas and resizes its surface in place.
func (e *Engine) Resize() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, s := range e.sessions {
		if s.state != Running {
			continue
		}
		w, h := e.page.Measure(s.section.Canvas)
		b := s.surface.Size()
		if int(b.W) == w && int(b.H) == h {
			continue
		}
		s.surface.Resize(w, h)
		e.logger.Debug("session resized", "section", s.section.Name, "w", w, "h", h)
	}
}

// Stop cancels every running session and returns how many it stopped.
// In-flight frames complete but request no further frames.
func (e *Engine) Stop() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	stopped := 0
	for _, s := range e.sessions {
		if s.state != Running {
			continue
		}
		e.sched.Cancel(s.handle)
		s.state = Stopped
		s.surface = nil
		stopped++
	}
	if !e.stopped && e.started {
		e.logger.Info("engine stopped", "sessions", stopped)
	}
	e.stopped = true
	return stopped
}

// SetPaused freezes simulation while frames keep drawing.
func (e *Engine) SetPaused(p bool) {
	e.mu.Lock()
	e.paused = p
	e.mu.Unlock()
}

func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

func (e *Engine) SetTheme(t render.Theme) {
	e.mu.Lock()
	e.theme = t
	e.mu.Unlock()
}

func (e *Engine) Theme() render.Theme {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.theme
}

// Sessions returns every session, including skipped ones, in section order.
func (e *Engine) Sessions() []*Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Session(nil), e.sessions...)
}

// Session returns the session of the named section.
func (e *Engine) Session(name string) (*Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.sessions {
		if s.section.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Running returns the number of running sessions.
func (e *Engine) Running() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running()
}

func (e *Engine) Stats() []SessionStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]SessionStats, 0, len(e.sessions))
	for _, s := range e.sessions {
		st := SessionStats{
			Section: s.section.Name,
			State:   s.state.String(),
			Frames:  s.frames,
		}
		if s.system != nil {
			st.Counts = s.system.Counts()
			st.Total = s.system.Total()
		}
		out = append(out, st)
	}
	return out
}

func (e *Engine) running() int {
	n := 0
	for _, s := range e.sessions {
		if s.state == Running {
			n++
		}
	}
	return n
}
