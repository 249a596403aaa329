package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/san-kum/backdrop/internal/engine"
	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/page"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workers int

type benchResult struct {
	section string
	surface string
	frames  int
	elapsed time.Duration
	total   int
}

// bench runs every selected section on its own engine, one goroutine each,
// once against a recording surface and once against a raster surface.
func bench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	secs, err := cfg.SelectedSections()
	if err != nil {
		return err
	}

	surfaces := []struct {
		name string
		fn   page.SurfaceFunc
	}{
		{"recorder", func(w, h int) render.Surface { return render.NewRecorder(w, h) }},
		{"braille", func(w, h int) render.Surface { return render.NewBraille(w, h, cfg.Scale) }},
		{"image", func(w, h int) render.Surface { return render.NewImage(w, h) }},
	}

	var (
		mu      sync.Mutex
		results []benchResult
	)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(workers, 1))
	for _, surf := range surfaces {
		for _, sec := range secs {
			g.Go(func() error {
				p := page.NewStatic(surf.fn)
				p.Add(sec.Canvas, cfg.Width, cfg.Height)

				ticker := frame.NewTicker(frame.Interval(cfg.FPS))
				eng := engine.New(ticker, []scene.Section{sec}, engine.WithSeed(cfg.Seed))
				if _, err := eng.Start(p); err != nil {
					return err
				}
				defer eng.Stop()

				start := time.Now()
				n, err := ticker.Run(ctx, max(cfg.Frames, 1))
				if err != nil {
					return err
				}
				elapsed := time.Since(start)

				stats := eng.Stats()
				mu.Lock()
				results = append(results, benchResult{
					section: sec.Name,
					surface: surf.name,
					frames:  n,
					elapsed: elapsed,
					total:   stats[0].Total,
				})
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("benchmarking %d sections, %d frames at %dx%d\n\n", len(secs), cfg.Frames, cfg.Width, cfg.Height)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SECTION\tSURFACE\tFRAMES\tENTITIES\tTIME\tFRAMES/SEC")
	for _, surf := range surfaces {
		for _, sec := range secs {
			for _, r := range results {
				if r.section != sec.Name || r.surface != surf.name {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%.0f\n",
					r.section, r.surface, r.frames, r.total, r.elapsed.Round(time.Microsecond), float64(r.frames)/r.elapsed.Seconds())
			}
		}
	}
	return w.Flush()
}
