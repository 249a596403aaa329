package export

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/backdrop/internal/render"
)

// GIFRecorder collects frames for an animated GIF.
type GIFRecorder struct {
	frames []*image.Paletted
	// Delay per frame in hundredths of a second.
	Delay int
}

func NewGIFRecorder(delay int) *GIFRecorder {
	if delay <= 0 {
		delay = 2
	}
	return &GIFRecorder{Delay: delay}
}

func (r *GIFRecorder) Len() int { return len(r.frames) }

// Capture quantizes a raster frame to the Plan 9 palette.
func (r *GIFRecorder) Capture(src image.Image) {
	bounds := src.Bounds()
	dst := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, bounds, src, bounds.Min)
	r.frames = append(r.frames, dst)
}

// CaptureBraille renders each braille dot as a charW/2 x charH/4 block.
func (r *GIFRecorder) CaptureBraille(b *render.Braille, charW, charH int, bg, fg color.Color) {
	cols, rows := b.Cells()
	imgW, imgH := max(cols*charW, 1), max(rows*charH, 1)
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{bg, fg})

	dotW, dotH := charW/2, charH/4
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pattern := b.Pattern(col, row)
			if pattern == 0 {
				continue
			}
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Encode writes the frames as a looping GIF. The logical screen covers the
// largest captured frame, so captures taken across a resize still encode.
func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	var width, height int
	for _, frame := range r.frames {
		b := frame.Bounds()
		width, height = max(width, b.Max.X), max(height, b.Max.Y)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	anim.Config = image.Config{ColorModel: r.frames[0].Palette, Width: width, Height: height}
	return gif.EncodeAll(w, &anim)
}

func (r *GIFRecorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Encode(f)
}
