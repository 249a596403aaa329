package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/gui"
	"github.com/san-kum/backdrop/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	fps        int
	width      int
	height     int
	theme      string
	seed       int64
	frames     int
	sections   []string
	verbose    bool
)

// main registers the commands and flags and runs the live terminal view
// when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "backdrop",
		Short: "decorative per-section canvas animations",
		RunE:  runLive,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDir, "data", ".backdrop", "data directory")
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	flags.IntVar(&width, "width", config.DefaultWidth, "canvas width in pixels")
	flags.IntVar(&height, "height", config.DefaultHeight, "canvas height in pixels")
	flags.StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	flags.StringSliceVar(&sections, "sections", nil, "sections to animate (default all)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate sections in the terminal",
		RunE:  runLive,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate sections in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			secs, err := cfg.SelectedSections()
			if err != nil {
				return err
			}
			return gui.Run(cfg, secs, newLogger(os.Stderr))
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [label]",
		Short: "run headless and store population statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames with the wall clock")
	runCmd.Flags().StringVar(&watch, "watch", "", "print this section to the terminal while running")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run populations",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the total population as SVG")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [section]",
		Short: "render one section after --frames frames (png, svg or txt)",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "snapshot.png", "output file")

	recordCmd := &cobra.Command{
		Use:   "record [section]",
		Short: "record one section as an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  record,
	}
	recordCmd.Flags().StringVarP(&outPath, "out", "o", "backdrop.gif", "output file")
	recordCmd.Flags().IntVar(&every, "every", 2, "capture every n-th frame")
	recordCmd.Flags().BoolVar(&braille, "braille", false, "capture the terminal rendering")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark sections",
		RunE:  bench,
	}
	benchCmd.Flags().IntVar(&workers, "parallel", 4, "engines run concurrently")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted scenario of headless runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run many seeds and check entities stay on canvas",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&trials, "trials", 10, "number of seeds")

	sectionsCmd := &cobra.Command{
		Use:   "sections",
		Short: "list sections",
		RunE:  listSections,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(liveCmd, guiCmd, runCmd, listCmd, plotCmd, exportCmd, snapshotCmd, recordCmd, benchCmd, batchCmd, sweepCmd, sectionsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	secs, err := cfg.SelectedSections()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; logs go to a file when asked for.
	var out io.Writer = io.Discard
	if verbose {
		f, err := os.OpenFile("backdrop.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return tui.Run(cfg, secs, newLogger(out))
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("sections") {
		cfg.Sections = sections
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "backdrop",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
