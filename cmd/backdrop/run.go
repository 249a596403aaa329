package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/backdrop/internal/automation"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/engine"
	"github.com/san-kum/backdrop/internal/export"
	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/page"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
	"github.com/san-kum/backdrop/internal/storage"
	"github.com/san-kum/backdrop/internal/tui"
	"github.com/spf13/cobra"
)

var (
	realtime bool
	watch    string
	svgOut   string
	trials   int
)

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	secs, err := cfg.SelectedSections()
	if err != nil {
		return err
	}

	label := "run"
	if len(args) > 0 {
		label = args[0]
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr)
	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithTheme(cfg.ThemeOrDefault()),
		engine.WithSeed(cfg.Seed),
	}

	newSurface := func(w, h int) render.Surface { return render.NewRecorder(w, h) }
	if watch != "" {
		if _, err := cfg.Registry().Get(watch); err != nil {
			return err
		}
		newSurface = func(w, h int) render.Surface { return render.NewBraille(w, h, cfg.Scale) }
		stream := tui.NewStreamRenderer(os.Stdout, watch, cfg.FPS)
		stream.Start()
		defer stream.Stop()
		opts = append(opts, engine.WithFrameHook(stream.Hook()))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fmt.Fprintf(os.Stderr, "running %d sections for %d frames...\n", len(secs), cfg.Frames)
	start := time.Now()

	series := storage.NewSeries(sectionNames(secs))
	var stats []engine.SessionStats
	if realtime {
		stats, err = runClock(ctx, cfg, secs, newSurface, opts, series)
	} else {
		stats, err = runTicker(ctx, cfg, newSurface, opts, series)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)

	meta := automation.Metadata(label, cfg, &automation.Result{
		Series:  series,
		Stats:   stats,
		Frames:  series.Len(),
		Elapsed: elapsed,
	}, start)
	meta.Realtime = realtime
	runID, err := st.Save(meta, series)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", series.Len())
	fmt.Println("\npopulations:")
	peaks := series.Peak()
	for _, s := range stats {
		fmt.Printf("  %-13s total=%-5d peak=%d\n", s.Section, s.Total, peaks[s.Section])
	}
	return nil
}

// runTicker steps a fixed-tick scheduler as fast as possible, sampling after every frame.
func runTicker(ctx context.Context, cfg *config.Config, fn page.SurfaceFunc, opts []engine.Option, series *storage.Series) ([]engine.SessionStats, error) {
	res, err := automation.Run(ctx, cfg, automation.Options{Surface: fn, Engine: opts})
	if res == nil {
		return nil, err
	}
	*series = *res.Series
	return res.Stats, err
}

// runClock paces frames on the wall clock and samples once per interval.
func runClock(ctx context.Context, cfg *config.Config, secs []scene.Section, fn page.SurfaceFunc, opts []engine.Option, series *storage.Series) ([]engine.SessionStats, error) {
	p := page.NewStatic(fn)
	for _, sec := range secs {
		p.Add(sec.Canvas, cfg.Width, cfg.Height)
	}

	interval := frame.Interval(cfg.FPS)
	clock := frame.NewClock(interval)
	eng := engine.New(clock, secs, opts...)
	if _, err := eng.Start(p); err != nil {
		return nil, err
	}
	clock.Start()
	defer eng.Stop()
	defer clock.Stop()

	sample := time.NewTicker(interval)
	defer sample.Stop()
	for int(clock.Frames()) < cfg.Frames {
		select {
		case <-ctx.Done():
			return eng.Stats(), ctx.Err()
		case <-sample.C:
			series.Append(int(clock.Frames()), eng.Stats())
		}
	}
	return eng.Stats(), nil
}

func sectionNames(secs []scene.Section) []string {
	names := make([]string, len(secs))
	for i, s := range secs {
		names[i] = s.Name
	}
	return names
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tFPS\tSIZE\tTHEME\tSECTIONS")

	for _, run := range runs {
		names := make([]string, len(run.Sessions))
		for i, s := range run.Sessions {
			names[i] = s.Section
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%dx%d\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.FPS,
			run.Width, run.Height,
			run.Theme,
			strings.Join(names, ","),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if series.Len() < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", series.Len())

	total := make([]float64, series.Len())
	for _, col := range series.Columns {
		data := series.Column(col)
		for i, v := range data {
			total[i] += v
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(col+" entities"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if svgOut != "" {
		if err := export.WriteSVG(svgOut, export.SeriesToSVG(total, 800, 200, "#20b2aa")); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, *meta, series)
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ids, err := automation.RunScenario(ctx, sc, st, newLogger(os.Stderr))
	for _, id := range ids {
		fmt.Printf("run id: %s\n", id)
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	results, err := automation.RunSweep(ctx, cfg, trials, cfg.Seed)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tSECTION\tFINAL\tPEAK\tESCAPED")
	for _, r := range results {
		for _, name := range r.Sections() {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", r.Seed, name, r.Final[name], r.Peak[name], r.Escaped)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	bounded, escaping := automation.SweepStats(results)
	fmt.Printf("\nbounded: %d  escaping: %d\n", bounded, escaping)
	if escaping > 0 {
		return fmt.Errorf("%d seeds left entities off canvas", escaping)
	}
	return nil
}
