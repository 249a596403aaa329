package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/backdrop/internal/engine"
	"github.com/san-kum/backdrop/internal/render"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	ruleWidth   = 70
)

// StreamRenderer prints one section to a plain terminal without taking over
// input. It is installed as an engine frame hook.
type StreamRenderer struct {
	mu        sync.Mutex
	out       io.Writer
	section   string
	frameRate int
	lastFrame time.Duration
	drawn     int
}

func NewStreamRenderer(out io.Writer, section string, frameRate int) *StreamRenderer {
	return &StreamRenderer{
		out:       out,
		section:   section,
		frameRate: frameRate,
		lastFrame: -time.Hour,
	}
}

// Hook returns the frame hook that renders the watched section, throttled
// to the renderer frame rate on the scheduler clock.
func (r *StreamRenderer) Hook() engine.FrameHook {
	return func(s *engine.Session, now time.Duration) {
		if s.Name() != r.section {
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		if r.frameRate > 0 && now-r.lastFrame < time.Second/time.Duration(r.frameRate) {
			return
		}
		r.lastFrame = now

		b, ok := s.Surface().(*render.Braille)
		if !ok {
			return
		}
		r.render(s, b, now)
	}
}

// Drawn returns how many frames were printed.
func (r *StreamRenderer) Drawn() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drawn
}

func (r *StreamRenderer) render(s *engine.Session, b *render.Braille, now time.Duration) {
	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString(fmt.Sprintf("  %s  frame=%d  t=%.2fs\n", s.Name(), s.Frames(), now.Seconds()))
	sb.WriteString("  " + strings.Repeat("-", ruleWidth) + "\n")

	for _, row := range strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n") {
		sb.WriteString("  ")
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	sb.WriteString("  " + strings.Repeat("-", ruleWidth) + "\n")
	if sys := s.System(); sys != nil {
		sb.WriteString(fmt.Sprintf("  entities=%d\n", sys.Total()))
	}

	fmt.Fprint(r.out, sb.String())
	r.drawn++
}

func (r *StreamRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *StreamRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
