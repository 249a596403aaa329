package render

import (
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error
)

// NewFace returns a Go Regular face at size points. Faces carry glyph caches
// and must not be shared between goroutines; the parsed font is.
func NewFace(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}
	return truetype.NewFace(fontTTF, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// faceCache keeps one face per whole point size.
type faceCache map[int]font.Face

func (fc faceCache) get(size float64) (font.Face, error) {
	key := max(int(math.Round(size)), 1)
	if f, ok := fc[key]; ok {
		return f, nil
	}
	f, err := NewFace(float64(key))
	if err != nil {
		return nil, err
	}
	fc[key] = f
	return f, nil
}
