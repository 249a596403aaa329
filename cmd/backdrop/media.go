package main

import (
	"fmt"
	"os"

	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/engine"
	"github.com/san-kum/backdrop/internal/export"
	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/page"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
	"github.com/spf13/cobra"
)

var (
	outPath string
	every   int
	braille bool
)

// single starts an engine for one section on a fresh page with surfaces from fn.
func single(cfg *config.Config, name string, fn page.SurfaceFunc) (*engine.Engine, *frame.Ticker, render.Surface, error) {
	sec, err := cfg.Registry().Get(name)
	if err != nil {
		return nil, nil, nil, err
	}

	p := page.NewStatic(fn)
	surface := p.Add(sec.Canvas, cfg.Width, cfg.Height)

	ticker := frame.NewTicker(frame.Interval(cfg.FPS))
	eng := engine.New(ticker, []scene.Section{sec},
		engine.WithLogger(newLogger(os.Stderr)),
		engine.WithTheme(cfg.ThemeOrDefault()),
		engine.WithSeed(cfg.Seed),
	)
	if _, err := eng.Start(p); err != nil {
		return nil, nil, nil, err
	}
	return eng, ticker, surface, nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	format := export.Format(outPath)
	fn := func(w, h int) render.Surface {
		img := render.NewImage(w, h)
		img.Background = cfg.ThemeOrDefault().Palette.Background
		return img
	}
	if format == "svg" || format == "txt" {
		fn = func(w, h int) render.Surface { return render.NewBraille(w, h, cfg.Scale) }
	}

	eng, ticker, surface, err := single(cfg, args[0], fn)
	if err != nil {
		return err
	}
	defer eng.Stop()

	for i := 0; i < max(cfg.Frames, 1); i++ {
		ticker.Step()
	}

	switch s := surface.(type) {
	case *render.Image:
		err = export.WritePNG(outPath, s)
	case *render.Braille:
		if format == "txt" {
			err = export.WriteText(outPath, s)
		} else {
			err = export.WriteSVG(outPath, export.BrailleToSVG(s, 4, cfg.ThemeOrDefault().Palette.Background))
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s after %d frames\n", outPath, ticker.Frames())
	return nil
}

func record(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if every < 1 {
		return fmt.Errorf("every must be positive, got %d", every)
	}

	pal := cfg.ThemeOrDefault().Palette
	fn := func(w, h int) render.Surface {
		img := render.NewImage(w, h)
		img.Background = pal.Background
		return img
	}
	if braille {
		fn = func(w, h int) render.Surface { return render.NewBraille(w, h, cfg.Scale) }
	}

	eng, ticker, surface, err := single(cfg, args[0], fn)
	if err != nil {
		return err
	}
	defer eng.Stop()

	// GIF delays are in hundredths of a second.
	rec := export.NewGIFRecorder(max(100*every/cfg.FPS, 2))
	for i := 1; i <= cfg.Frames; i++ {
		ticker.Step()
		if i%every != 0 {
			continue
		}
		switch s := surface.(type) {
		case *render.Image:
			rec.Capture(s.Image())
		case *render.Braille:
			rec.CaptureBraille(s, 8, 16, pal.Background, pal.Primary)
		}
	}

	if err := rec.Save(outPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", outPath, rec.Len())
	return nil
}
