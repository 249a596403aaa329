package gui

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixels flattens img into row-major RGBA texels for a texture upload.
func Pixels(img image.Image) []color.RGBA {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	out := make([]color.RGBA, b.Dx()*b.Dy())
	for i := range out {
		p := rgba.Pix[i*4 : i*4+4 : i*4+4]
		out[i] = color.RGBA{p[0], p[1], p[2], p[3]}
	}
	return out
}

// Normalize maps samples onto [0, 1]. A flat series maps to zero.
func Normalize(v []float64) []float64 {
	if len(v) == 0 {
		return nil
	}
	lo, hi := v[0], v[0]
	for _, x := range v {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	if hi == lo {
		hi = lo + 1
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = (x - lo) / (hi - lo)
	}
	return out
}
