package particle

import "math"

// Vec is a point or displacement in canvas space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp returns the point a fraction t of the way from v to o.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Polar returns the vector of length r pointing at angle radians.
func Polar(angle, r float64) Vec {
	return Vec{math.Cos(angle) * r, math.Sin(angle) * r}
}

// Bounds is the pixel size of a drawing surface.
type Bounds struct {
	W, H float64
}

func (b Bounds) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Contains reports whether p lies inside the bounds grown by margin m on each side.
func (b Bounds) Contains(p Vec, m Vec) bool {
	return p.X >= -m.X && p.X <= b.W+m.X && p.Y >= -m.Y && p.Y <= b.H+m.Y
}
