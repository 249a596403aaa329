// Package automation runs animations headlessly: scripted scenarios of runs
// and seed sweeps that check every section stays on its canvas.
package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/engine"
	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/page"
	"github.com/san-kum/backdrop/internal/particle"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
	"github.com/san-kum/backdrop/internal/storage"
	"gopkg.in/yaml.v3"
)

// Resize changes every canvas to Width x Height before frame Frame.
type Resize struct {
	Frame  int `yaml:"frame"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Options controls a headless run. Zero values pick recording surfaces and
// no resizes.
type Options struct {
	Surface page.SurfaceFunc
	Resizes []Resize
	Engine  []engine.Option
}

// Result is the outcome of one headless run.
type Result struct {
	Series  *storage.Series
	Stats   []engine.SessionStats
	Frames  int
	Elapsed time.Duration
	// Escaped counts wrap and bounce entities found off their canvas after
	// the last frame.
	Escaped int
}

// Run animates the configured sections for cfg.Frames frames on a fixed-tick
// scheduler, sampling population totals after every frame.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	secs, err := cfg.SelectedSections()
	if err != nil {
		return nil, err
	}

	fn := opts.Surface
	if fn == nil {
		fn = func(w, h int) render.Surface { return render.NewRecorder(w, h) }
	}
	p := page.NewStatic(fn)
	names := make([]string, len(secs))
	for i, sec := range secs {
		p.Add(sec.Canvas, cfg.Width, cfg.Height)
		names[i] = sec.Name
	}

	engOpts := append([]engine.Option{
		engine.WithTheme(cfg.ThemeOrDefault()),
		engine.WithSeed(cfg.Seed),
	}, opts.Engine...)

	ticker := frame.NewTicker(frame.Interval(cfg.FPS))
	eng := engine.New(ticker, secs, engOpts...)
	if _, err := eng.Start(p); err != nil {
		return nil, err
	}
	defer eng.Stop()

	res := &Result{Series: storage.NewSeries(names)}
	start := time.Now()
	for i := 1; i <= cfg.Frames; i++ {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(start)
			res.Stats = eng.Stats()
			return res, err
		}
		for _, rs := range opts.Resizes {
			if rs.Frame == i {
				p.SetAll(rs.Width, rs.Height)
				eng.Resize()
			}
		}
		if ticker.Step() == 0 {
			break
		}
		res.Frames++
		res.Series.Append(ticker.Frames(), eng.Stats())
	}
	res.Elapsed = time.Since(start)
	res.Stats = eng.Stats()
	for _, s := range eng.Sessions() {
		res.Escaped += escaped(s.System(), s.Bounds())
	}
	return res, nil
}

// escaped counts entities of wrapping or bouncing layers outside b grown by
// their extent.
func escaped(sys *scene.System, b particle.Bounds) int {
	if sys == nil {
		return 0
	}
	n := 0
	for _, pop := range sys.Populations {
		if pop.Rule.Boundary == particle.BoundaryNone {
			continue
		}
		for i := range pop.Entities {
			e := &pop.Entities[i]
			if !b.Contains(e.Pos, e.Extent) {
				n++
			}
		}
	}
	return n
}

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Zero fields keep the preset
// or default value.
type ScenarioStep struct {
	Label    string      `yaml:"label"`
	Preset   string      `yaml:"preset"`
	Sections []string    `yaml:"sections"`
	Frames   int         `yaml:"frames"`
	FPS      int         `yaml:"fps"`
	Width    int         `yaml:"width"`
	Height   int         `yaml:"height"`
	Theme    string      `yaml:"theme"`
	Seed     int64       `yaml:"seed"`
	Caps     *scene.Caps `yaml:"caps"`
	Resizes  []Resize    `yaml:"resizes"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Config resolves the step against its preset and validates it.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if len(s.Sections) > 0 {
		cfg.Sections = s.Sections
	}
	if s.Frames > 0 {
		cfg.Frames = s.Frames
	}
	if s.FPS > 0 {
		cfg.FPS = s.FPS
	}
	if s.Width > 0 {
		cfg.Width = s.Width
	}
	if s.Height > 0 {
		cfg.Height = s.Height
	}
	if s.Theme != "" {
		cfg.Theme = s.Theme
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.Caps != nil {
		cfg.Caps = *s.Caps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario executes all steps in a scenario and stores each run. It
// returns the ids of the stored runs.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, logger *log.Logger) ([]string, error) {
	ids := make([]string, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Config()
		if err != nil {
			return ids, fmt.Errorf("step %d: %w", i+1, err)
		}
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		label := step.Label
		if label == "" {
			label = fmt.Sprintf("%s-%d", scenario.Name, i+1)
		}
		logger.Info("running step", "step", i+1, "of", len(scenario.Steps), "label", label)

		res, err := Run(ctx, cfg, Options{
			Resizes: step.Resizes,
			Engine:  []engine.Option{engine.WithLogger(logger)},
		})
		if err != nil {
			return ids, fmt.Errorf("step %d run: %w", i+1, err)
		}

		id, err := st.Save(Metadata(label, cfg, res, time.Now()), res.Series)
		if err != nil {
			return ids, fmt.Errorf("step %d save: %w", i+1, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Metadata describes a finished run for storage.
func Metadata(label string, cfg *config.Config, res *Result, at time.Time) storage.RunMetadata {
	return storage.RunMetadata{
		Label:     label,
		Timestamp: at,
		Seed:      cfg.Seed,
		FPS:       cfg.FPS,
		Frames:    res.Frames,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Theme:     cfg.Theme,
		Elapsed:   res.Elapsed,
		Sessions:  res.Stats,
	}
}

// SweepResult holds the outcome of one seed.
type SweepResult struct {
	Seed    int64
	Peak    map[string]int
	Final   map[string]int
	Escaped int
}

// Bounded reports whether every wrap and bounce entity ended on its canvas.
func (r SweepResult) Bounded() bool { return r.Escaped == 0 }

// RunSweep runs cfg once per seed, seeds drawn from base.
func RunSweep(ctx context.Context, cfg *config.Config, trials int, base int64) ([]SweepResult, error) {
	rng := rand.New(rand.NewSource(base))
	if base == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	results := make([]SweepResult, 0, trials)
	for trial := 0; trial < trials; trial++ {
		run := *cfg
		run.Seed = rng.Int63() + 1

		res, err := Run(ctx, &run, Options{})
		if err != nil {
			return results, err
		}

		final := make(map[string]int, len(res.Stats))
		for _, s := range res.Stats {
			final[s.Section] = s.Total
		}
		results = append(results, SweepResult{
			Seed:    run.Seed,
			Peak:    res.Series.Peak(),
			Final:   final,
			Escaped: res.Escaped,
		})
	}

	return results, nil
}

// SweepStats counts bounded and escaping seeds.
func SweepStats(results []SweepResult) (bounded int, escaping int) {
	for _, r := range results {
		if r.Bounded() {
			bounded++
		} else {
			escaping++
		}
	}
	return
}

// Sections returns the section names of the result in sorted order.
func (r SweepResult) Sections() []string {
	names := make([]string, 0, len(r.Final))
	for name := range r.Final {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
