package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/spf13/cobra"
)

func listSections(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SECTION\tCANVAS\tLAYERS\tLINKS")
	for _, sec := range cfg.Registry().All() {
		layers := make([]string, len(sec.Layers))
		for i, l := range sec.Layers {
			layers[i] = fmt.Sprintf("%s(%d)", l.Name, l.Count)
		}
		links := "-"
		if sec.Links != nil {
			links = fmt.Sprintf("%s<%.0f", sec.Links.Layer, sec.Links.Threshold)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sec.Name, sec.Canvas, strings.Join(layers, " "), links)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tFPS\tSIZE\tTHEME\tFRAMES\tSECTIONS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		secs := "all"
		if len(p.Sections) > 0 {
			secs = strings.Join(p.Sections, ",")
		}
		fmt.Fprintf(w, "%s\t%d\t%dx%d\t%s\t%d\t%s\n", name, p.FPS, p.Width, p.Height, p.Theme, p.Frames, secs)
	}
	fmt.Fprintf(w, "\nthemes: %s\n", strings.Join(render.ThemeNames(), ", "))
	return w.Flush()
}
