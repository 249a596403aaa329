package particle

import "math"

// Boundary keeps entities inside, or wraps them back into, the canvas.
type Boundary uint8

const (
	BoundaryNone Boundary = iota
	BoundaryWrap
	BoundaryBounce
)

func (b Boundary) String() string {
	switch b {
	case BoundaryWrap:
		return "wrap"
	case BoundaryBounce:
		return "bounce"
	default:
		return "none"
	}
}

// Apply constrains e to bounds. Wrap honours the entity extent as margin;
// bounce reflects about the crossed edge and points the velocity back inward.
func (b Boundary) Apply(e *Entity, bounds Bounds) {
	switch b {
	case BoundaryWrap:
		e.Pos.X = wrap(e.Pos.X, bounds.W, e.Extent.X)
		e.Pos.Y = wrap(e.Pos.Y, bounds.H, e.Extent.Y)
	case BoundaryBounce:
		e.Pos.X, e.Vel.X = bounce(e.Pos.X, e.Vel.X, bounds.W)
		e.Pos.Y, e.Vel.Y = bounce(e.Pos.Y, e.Vel.Y, bounds.H)
	}
}

// wrap moves v toroidally over the span [-m, dim+m]. A modulo is used so that
// coordinates far outside (after a canvas shrink) come back in a single frame.
func wrap(v, dim, m float64) float64 {
	if dim <= 0 {
		return 0
	}
	if v >= -m && v <= dim+m {
		return v
	}
	span := dim + 2*m
	r := math.Mod(v+m, span)
	if r < 0 {
		r += span
	}
	return r - m
}

func bounce(v, vel, dim float64) (float64, float64) {
	if dim <= 0 {
		return 0, vel
	}
	switch {
	case v < 0:
		v = -v
		vel = math.Abs(vel)
	case v > dim:
		v = 2*dim - v
		vel = -math.Abs(vel)
	default:
		return v, vel
	}
	return math.Max(0, math.Min(v, dim)), vel
}
