package gui

import (
	"image"
	"image/color"
	"testing"
)

func TestPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})

	px := Pixels(img)
	if len(px) != 4 {
		t.Fatalf("expected 4 texels, got %d", len(px))
	}
	if px[1] != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("expected red at index 1, got %v", px[1])
	}
	if px[2] != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("expected blue at index 2, got %v", px[2])
	}
}

func TestPixelsConvertsSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, color.RGBA{0, 255, 0, 255})
	sub := img.SubImage(image.Rect(2, 2, 4, 4))

	px := Pixels(sub)
	if len(px) != 4 {
		t.Fatalf("expected 4 texels, got %d", len(px))
	}
	if px[0] != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("expected green at origin, got %v", px[0])
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{10, 20, 15})
	expected := []float64{0, 1, 0.5}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("index %d: expected %v, got %v", i, expected[i], got[i])
		}
	}

	flat := Normalize([]float64{3, 3})
	if flat[0] != 0 || flat[1] != 0 {
		t.Errorf("expected flat series at zero, got %v", flat)
	}
	if Normalize(nil) != nil {
		t.Error("expected nil for empty input")
	}
}
