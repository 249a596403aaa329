package render

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/backdrop/internal/particle"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank = rune(0x2800)

	// DefaultThreshold is the weakest opacity that still plots dots.
	DefaultThreshold = 0.04
)

// Braille is a terminal Surface. Each cell holds 2x4 sub-pixel dots and
// every logical pixel maps to scale dots on each axis.
type Braille struct {
	w, h       int
	scale      float64
	cols, rows int

	grid   [][]rune
	tint   [][]color.NRGBA
	glyphs map[[2]int]rune

	m     affine
	stack []affine
	dots  int

	Threshold float64
}

func NewBraille(w, h int, scale float64) *Braille {
	if scale <= 0 {
		scale = 1
	}
	b := &Braille{scale: scale, Threshold: DefaultThreshold}
	b.Resize(w, h)
	return b
}

func (b *Braille) Size() particle.Bounds {
	return particle.Bounds{W: float64(b.w), H: float64(b.h)}
}

// Resize sets the logical size and reallocates the cell grid to cover it.
func (b *Braille) Resize(w, h int) {
	b.w, b.h = max(w, 0), max(h, 0)
	b.cols = int(math.Ceil(float64(b.w) * b.scale / 2))
	b.rows = int(math.Ceil(float64(b.h) * b.scale / 4))
	b.grid = make([][]rune, b.rows)
	b.tint = make([][]color.NRGBA, b.rows)
	for i := range b.grid {
		b.grid[i] = make([]rune, b.cols)
		b.tint[i] = make([]color.NRGBA, b.cols)
	}
	b.Clear()
}

// Cells returns the grid size in terminal cells.
func (b *Braille) Cells() (cols, rows int) { return b.cols, b.rows }

// Pattern returns the dot bits of a cell, ignoring text overlays.
func (b *Braille) Pattern(col, row int) int {
	if col < 0 || row < 0 || col >= b.cols || row >= b.rows {
		return 0
	}
	return int(b.grid[row][col] - blank)
}

// Tint returns the colour of the last paint that touched a cell.
func (b *Braille) Tint(col, row int) color.NRGBA {
	if col < 0 || row < 0 || col >= b.cols || row >= b.rows {
		return color.NRGBA{}
	}
	return b.tint[row][col]
}

// Dots returns the number of dots set since the last Clear.
func (b *Braille) Dots() int { return b.dots }

func (b *Braille) Clear() {
	for i := range b.grid {
		for j := range b.grid[i] {
			b.grid[i][j] = blank
			b.tint[i][j] = color.NRGBA{}
		}
	}
	b.glyphs = map[[2]int]rune{}
	b.m = identity
	b.stack = b.stack[:0]
	b.dots = 0
}

func (b *Braille) Push() { b.stack = append(b.stack, b.m) }

func (b *Braille) Pop() {
	if n := len(b.stack); n > 0 {
		b.m = b.stack[n-1]
		b.stack = b.stack[:n-1]
	}
}

func (b *Braille) Translate(x, y float64) { b.m = b.m.translate(x, y) }
func (b *Braille) Rotate(angle float64)   { b.m = b.m.rotate(angle) }

func (b *Braille) FillCircle(c particle.Vec, r float64, p Paint) {
	if r <= 0 || !b.visible(p) {
		return
	}
	col := p.Average()
	ctr := b.device(c)
	rd := r * b.scale
	if rd < 1 {
		b.set(int(ctr.X), int(ctr.Y), col)
		return
	}
	for dy := -rd; dy <= rd; dy++ {
		for dx := -rd; dx <= rd; dx++ {
			if dx*dx+dy*dy <= rd*rd {
				b.set(int(ctr.X+dx), int(ctr.Y+dy), col)
			}
		}
	}
}

func (b *Braille) StrokeCircle(c particle.Vec, r, _ float64, p Paint) {
	if r <= 0 || !b.visible(p) {
		return
	}
	col := p.Average()
	ctr := b.device(c)
	rd := r * b.scale
	steps := max(8, int(particle.TwoPi*rd))
	for i := 0; i < steps; i++ {
		pt := ctr.Add(particle.Polar(float64(i)/float64(steps)*particle.TwoPi, rd))
		b.set(int(pt.X), int(pt.Y), col)
	}
}

func (b *Braille) FillRect(x, y, w, h float64, p Paint) {
	b.FillPath([]particle.Vec{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}, p)
}

func (b *Braille) StrokeLine(a, c particle.Vec, _ float64, p Paint) {
	if !b.visible(p) {
		return
	}
	b.line(b.device(a), b.device(c), p.Average())
}

func (b *Braille) StrokePath(pts []particle.Vec, _ float64, p Paint) {
	if len(pts) < 2 || !b.visible(p) {
		return
	}
	col := p.Average()
	prev := b.device(pts[0])
	for _, pt := range pts[1:] {
		next := b.device(pt)
		b.line(prev, next, col)
		prev = next
	}
}

// FillPath fills the polygon with an even-odd scanline pass over dot rows.
func (b *Braille) FillPath(pts []particle.Vec, p Paint) {
	if len(pts) < 3 || !b.visible(p) {
		return
	}
	col := p.Average()
	dev := make([]particle.Vec, len(pts))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, pt := range pts {
		dev[i] = b.device(pt)
		minY = math.Min(minY, dev[i].Y)
		maxY = math.Max(maxY, dev[i].Y)
	}

	var xs []float64
	for y := math.Floor(minY); y <= maxY; y++ {
		sy := y + 0.5
		xs = xs[:0]
		for i := range dev {
			a, c := dev[i], dev[(i+1)%len(dev)]
			if (a.Y <= sy) == (c.Y <= sy) {
				continue
			}
			xs = append(xs, a.X+(sy-a.Y)/(c.Y-a.Y)*(c.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := math.Floor(xs[i]); x <= xs[i+1]; x++ {
				b.set(int(x), int(y), col)
			}
		}
	}

	for i := range dev {
		b.line(dev[i], dev[(i+1)%len(dev)], col)
	}
}

// Text overlays the first rune of s on the cell under at.
func (b *Braille) Text(s string, at particle.Vec, _ float64, p Paint) {
	if s == "" || !b.visible(p) {
		return
	}
	d := b.device(at)
	if d.X < 0 || d.Y < 0 {
		return
	}
	col, row := int(d.X)/2, int(d.Y)/4
	if col >= b.cols || row >= b.rows {
		return
	}
	b.glyphs[[2]int{col, row}] = []rune(s)[0]
	b.tint[row][col] = p.Average()
}

func (b *Braille) String() string {
	var sb strings.Builder
	for row := range b.grid {
		for col := range b.grid[row] {
			sb.WriteRune(b.cell(col, row))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Colorize renders the grid, passing each run of equally tinted cells
// through style.
func (b *Braille) Colorize(style func(c color.NRGBA, s string) string) string {
	var sb, run strings.Builder
	for row := range b.grid {
		var cur color.NRGBA
		for col := range b.grid[row] {
			t := b.tint[row][col]
			if col > 0 && t != cur {
				sb.WriteString(style(cur, run.String()))
				run.Reset()
			}
			cur = t
			run.WriteRune(b.cell(col, row))
		}
		sb.WriteString(style(cur, run.String()))
		run.Reset()
		if row < len(b.grid)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (b *Braille) cell(col, row int) rune {
	if g, ok := b.glyphs[[2]int{col, row}]; ok {
		return g
	}
	return b.grid[row][col]
}

func (b *Braille) visible(p Paint) bool {
	return p.Opacity() >= b.Threshold
}

func (b *Braille) device(p particle.Vec) particle.Vec {
	return b.m.apply(p).Scale(b.scale)
}

func (b *Braille) set(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= b.cols || row >= b.rows {
		return
	}

	bit := rune(pixelMap[y%4][x%2])
	if b.grid[row][col]&bit == 0 {
		b.dots++
	}
	b.grid[row][col] |= bit
	b.tint[row][col] = c
}

// line draws a line using Bresenham's algorithm
func (b *Braille) line(from, to particle.Vec, c color.NRGBA) {
	x0, y0 := int(math.Floor(from.X)), int(math.Floor(from.Y))
	x1, y1 := int(math.Floor(to.X)), int(math.Floor(to.Y))

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		b.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
