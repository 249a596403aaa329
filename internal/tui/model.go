package tui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/engine"
	"github.com/san-kum/backdrop/internal/export"
	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/page"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
)

const (
	historyCapacity = 120
	statsWidth      = 40
	chromeRows      = 4
)

type TickMsg time.Time

// Model hosts one engine on a page of braille canvases and shows one
// section at a time.
type Model struct {
	cfg      *config.Config
	eng      *engine.Engine
	ticker   *frame.Ticker
	page     *page.Static
	sections []scene.Section
	logger   *log.Logger

	selected      int
	width, height int
	history       map[string][]float64
	showHelp      bool
	recorder      *export.GIFRecorder
	status        string
}

// NewModel builds the page, one braille canvas per section, and starts the
// engine on it.
func NewModel(cfg *config.Config, sections []scene.Section, logger *log.Logger) (Model, error) {
	p := page.NewStatic(func(w, h int) render.Surface {
		return render.NewBraille(w, h, cfg.Scale)
	})
	for _, sec := range sections {
		p.Add(sec.Canvas, cfg.Width, cfg.Height)
	}

	ticker := frame.NewTicker(frame.Interval(cfg.FPS))
	eng := engine.New(ticker, sections,
		engine.WithLogger(logger),
		engine.WithTheme(cfg.ThemeOrDefault()),
		engine.WithSeed(cfg.Seed),
	)
	if _, err := eng.Start(p); err != nil {
		return Model{}, err
	}

	return Model{
		cfg:      cfg,
		eng:      eng,
		ticker:   ticker,
		page:     p,
		sections: sections,
		logger:   logger,
		history:  make(map[string][]float64),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(frame.Interval(m.cfg.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the engine one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopRecording()
			m.eng.Stop()
			return m, tea.Quit
		case " ":
			m.eng.SetPaused(!m.eng.Paused())
		case "tab", "right", "l":
			m.cycle(1)
		case "shift+tab", "left", "h":
			m.cycle(-1)
		case "t":
			m.eng.SetTheme(render.NextTheme(m.eng.Theme().Name))
		case "g":
			if m.recorder != nil {
				m.stopRecording()
			} else {
				m.recorder = export.NewGIFRecorder(2)
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := m.canvasSize()
		m.page.SetAll(w, h)
		m.eng.Resize()
	case TickMsg:
		m.ticker.Step()
		m.record()
		if m.recorder != nil {
			if b := m.current(); b != nil {
				pal := m.eng.Theme().Palette
				m.recorder.CaptureBraille(b, 8, 16, pal.Background, pal.Primary)
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// canvasSize converts the space left of the stats panel into logical
// canvas pixels.
func (m Model) canvasSize() (int, int) {
	cols := max(m.width-statsWidth-4, 10)
	rows := max(m.height-chromeRows, 4)
	return int(float64(cols*2) / m.cfg.Scale), int(float64(rows*4) / m.cfg.Scale)
}

func (m *Model) cycle(dir int) {
	if len(m.sections) == 0 {
		return
	}
	m.selected = (m.selected + dir + len(m.sections)) % len(m.sections)
}

func (m *Model) record() {
	for _, st := range m.eng.Stats() {
		h := append(m.history[st.Section], float64(st.Total))
		if len(h) > historyCapacity {
			h = h[1:]
		}
		m.history[st.Section] = h
	}
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	path := fmt.Sprintf("backdrop_%d.gif", time.Now().Unix())
	if err := m.recorder.Save(path); err != nil {
		m.logger.Error("saving recording", "err", err)
		m.status = "recording failed"
	} else {
		m.logger.Info("recording saved", "path", path, "frames", m.recorder.Len())
		m.status = "saved " + path
	}
	m.recorder = nil
}

// current returns the braille canvas of the selected section.
func (m Model) current() *render.Braille {
	if len(m.sections) == 0 {
		return nil
	}
	s, ok := m.page.Lookup(m.sections[m.selected].Canvas)
	if !ok {
		return nil
	}
	b, _ := s.(*render.Braille)
	return b
}

// View renders the TUI interface.
func (m Model) View() string {
	theme := m.eng.Theme()
	sty := newStyles(theme)

	var canvasView string
	if b := m.current(); b != nil {
		canvasView = sty.canvas.Render(b.Colorize(func(c color.NRGBA, s string) string {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(render.Hex(c))).Render(s)
		}))
	}

	var s strings.Builder
	if len(m.sections) > 0 {
		sec := m.sections[m.selected]
		s.WriteString(sty.header.Render(strings.ToUpper(sec.Name)) + "\n")
		s.WriteString(m.statusLine(sty) + "\n\n")

		if sess, ok := m.eng.Session(sec.Name); ok {
			s.WriteString(sty.label.Render("Frames") + sty.value.Render(fmt.Sprintf("%d", sess.Frames())) + "\n")
			s.WriteString(sty.label.Render("State") + sty.value.Render(sess.State().String()) + "\n")
			b := sess.Bounds()
			s.WriteString(sty.label.Render("Canvas") + sty.value.Render(fmt.Sprintf("%.0fx%.0f", b.W, b.H)) + "\n")
		}
		s.WriteString(sty.label.Render("Theme") + sty.value.Render(theme.Name) + "\n")

		s.WriteString("\nPOPULATIONS\n")
		s.WriteString(m.populations(sec.Name, sty))

		if hist := m.history[sec.Name]; len(hist) > 1 {
			chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Entities"))
			s.WriteString(sty.graph.Render(chart) + "\n")
		}
	}
	s.WriteString(sty.help.Render("\n─────────────────────\nSP:Pause TAB:Section Q:Quit\nT:Theme  G:Record    ?:Help"))
	statsView := sty.stats.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) statusLine(sty styles) string {
	switch {
	case m.recorder != nil:
		return sty.recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len()))
	case m.eng.Paused():
		return sty.paused.Render("PAUSED")
	case m.status != "":
		return sty.running.Render("RUNNING") + "  " + sty.label.Render(m.status)
	default:
		return sty.running.Render("RUNNING")
	}
}

func (m Model) populations(section string, sty styles) string {
	var counts map[string]int
	for _, st := range m.eng.Stats() {
		if st.Section == section {
			counts = st.Counts
		}
	}
	if len(counts) == 0 {
		return sty.label.Render("  (none)") + "\n"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString("  " + sty.label.Render(name) + sty.value.Render(fmt.Sprintf("%d", counts[name])) + "\n")
	}
	return sb.String()
}

// Engine exposes the hosted engine so callers can stop it after the program exits.
func (m Model) Engine() *engine.Engine { return m.eng }

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  Tab/→    - Next section             ║
║  S-Tab/←  - Previous section         ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts the full-screen live view and blocks until it exits.
func Run(cfg *config.Config, sections []scene.Section, logger *log.Logger) error {
	m, err := NewModel(cfg, sections, logger)
	if err != nil {
		return err
	}
	defer m.eng.Stop()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
