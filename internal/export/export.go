// Package export writes animation snapshots and run statistics to files.
package export

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/storage"
)

// ErrNoFrames is returned when saving a recording without frames.
var ErrNoFrames = errors.New("export: no frames recorded")

// Format picks the snapshot encoding from a file extension.
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "svg"
	case ".txt":
		return "txt"
	case ".gif":
		return "gif"
	default:
		return "png"
	}
}

func WritePNG(path string, img *render.Image) error {
	return img.SavePNG(path)
}

// WriteText saves the plain braille rendering.
func WriteText(path string, b *render.Braille) error {
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func WriteSVG(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}

type RunData struct {
	Meta    storage.RunMetadata `json:"meta"`
	Columns []string            `json:"columns"`
	Frames  []int               `json:"frames"`
	Rows    [][]int             `json:"rows"`
}

// WriteJSON encodes a stored run and its population series.
func WriteJSON(w io.Writer, meta storage.RunMetadata, series *storage.Series) error {
	data := RunData{Meta: meta}
	if series != nil {
		data.Columns = series.Columns
		data.Frames = series.Frames
		data.Rows = series.Rows
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
