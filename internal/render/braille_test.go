package render

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/backdrop/internal/particle"
)

var white = Solid(RGB(255, 255, 255))

func TestBrailleResize(t *testing.T) {
	b := NewBraille(80, 40, 0.5)

	cols, rows := b.Cells()
	if cols != 20 || rows != 5 {
		t.Errorf("expected 20x5 cells, got %dx%d", cols, rows)
	}
	if b.Size() != (particle.Bounds{W: 80, H: 40}) {
		t.Errorf("unexpected size %+v", b.Size())
	}

	b.Resize(0, 0)
	cols, rows = b.Cells()
	if cols != 0 || rows != 0 {
		t.Errorf("expected empty grid, got %dx%d", cols, rows)
	}
	b.FillCircle(particle.Vec{}, 3, white)
	if b.String() != "" {
		t.Error("expected empty output on zero size")
	}
}

func TestBrailleDot(t *testing.T) {
	b := NewBraille(4, 8, 1)
	b.FillCircle(particle.Vec{X: 0, Y: 0}, 0.5, white)

	if b.Dots() != 1 {
		t.Fatalf("expected 1 dot, got %d", b.Dots())
	}
	if !strings.HasPrefix(b.String(), string(rune(0x2801))) {
		t.Errorf("expected top-left dot, got %q", b.String())
	}

	b.Clear()
	if b.Dots() != 0 {
		t.Errorf("expected 0 dots after clear, got %d", b.Dots())
	}
}

func TestBrailleLine(t *testing.T) {
	b := NewBraille(10, 4, 1)
	b.StrokeLine(particle.Vec{X: 0, Y: 0}, particle.Vec{X: 9, Y: 0}, 1, white)

	if b.Dots() != 10 {
		t.Errorf("expected 10 dots, got %d", b.Dots())
	}
}

func TestBrailleThreshold(t *testing.T) {
	b := NewBraille(10, 10, 1)
	faint := Solid(Alpha(RGB(255, 255, 255), 0.01))
	b.FillCircle(particle.Vec{X: 5, Y: 5}, 3, faint)

	if b.Dots() != 0 {
		t.Errorf("expected faint paint to be skipped, got %d dots", b.Dots())
	}
}

func TestBrailleTransform(t *testing.T) {
	b := NewBraille(20, 20, 1)
	b.Push()
	b.Translate(10, 10)
	b.Rotate(math.Pi / 2)
	b.FillCircle(particle.Vec{X: 4, Y: 0}, 0.5, white)
	b.Pop()

	// (4,0) rotated a quarter turn lands on (0,4), then moves to (10,14).
	if b.grid[14/4][10/2]&rune(pixelMap[14%4][10%2]) == 0 {
		t.Errorf("expected dot at (10,14)\n%s", b.String())
	}
	if b.m != identity {
		t.Error("expected transform restored after pop")
	}
}

func TestBrailleFillRect(t *testing.T) {
	b := NewBraille(8, 8, 1)
	b.FillRect(0, 0, 4, 4, white)

	if b.Dots() < 16 {
		t.Errorf("expected at least 16 dots, got %d", b.Dots())
	}
}

func TestBrailleText(t *testing.T) {
	b := NewBraille(8, 8, 1)
	b.Text("∑x", particle.Vec{X: 3, Y: 5}, 12, white)

	lines := strings.Split(b.String(), "\n")
	if []rune(lines[1])[1] != '∑' {
		t.Errorf("expected glyph in cell (1,1), got %q", lines[1])
	}
}

func TestBrailleColorize(t *testing.T) {
	b := NewBraille(4, 4, 1)
	red := RGB(255, 0, 0)
	b.FillCircle(particle.Vec{X: 0, Y: 0}, 0.5, Solid(red))

	var tints []color.NRGBA
	out := b.Colorize(func(c color.NRGBA, s string) string {
		tints = append(tints, c)
		return s
	})
	if out+"\n" != b.String() {
		t.Errorf("expected plain output to match, got %q", out)
	}
	if len(tints) != 2 || tints[0] != red {
		t.Errorf("expected a red run then a blank run, got %v", tints)
	}
}
