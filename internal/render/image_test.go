package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/san-kum/backdrop/internal/particle"
)

func TestImageDraws(t *testing.T) {
	img := NewImage(40, 40)
	img.Clear()
	img.FillCircle(particle.Vec{X: 20, Y: 20}, 5, Solid(RGB(255, 0, 0)))

	r, _, _, a := img.Image().At(20, 20).RGBA()
	if a == 0 || r == 0 {
		t.Errorf("expected red pixel at center, got r=%d a=%d", r, a)
	}
	_, _, _, a = img.Image().At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("expected transparent corner, got a=%d", a)
	}
}

func TestImageBackground(t *testing.T) {
	img := NewImage(4, 4)
	img.Background = color.NRGBA{0, 0, 255, 255}
	img.Clear()

	_, _, b, _ := img.Image().At(1, 1).RGBA()
	if b == 0 {
		t.Error("expected background fill")
	}
}

func TestImageZeroSize(t *testing.T) {
	img := NewImage(0, 0)
	if !img.Size().Empty() {
		t.Errorf("expected empty size, got %+v", img.Size())
	}
	img.Clear()
	img.FillRect(0, 0, 10, 10, Solid(RGB(1, 1, 1)))
	img.Text("★", particle.Vec{}, 12, Solid(RGB(1, 1, 1)))
}

func TestImageEncodePNG(t *testing.T) {
	img := NewImage(8, 8)
	img.Clear()
	img.StrokeLine(particle.Vec{}, particle.Vec{X: 8, Y: 8}, 1, Solid(RGB(255, 255, 255)))

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("expected png signature")
	}
}

func TestNewFace(t *testing.T) {
	f, err := NewFace(14)
	if err != nil {
		t.Fatalf("face failed: %v", err)
	}
	if f.Metrics().Height <= 0 {
		t.Error("expected positive line height")
	}
}
