package geom

import "math"

// Point2d is a point in a 2D parametrization, e.g. a workplane's own
// coordinate system.
type Point2d struct {
	X, Y float64
}

// Pt2 returns the point (x, y).
func Pt2(x, y float64) Point2d {
	return Point2d{X: x, Y: y}
}

// Plus returns p + b.
func (p Point2d) Plus(b Point2d) Point2d {
	return Point2d{X: p.X + b.X, Y: p.Y + b.Y}
}

// Minus returns p - b.
func (p Point2d) Minus(b Point2d) Point2d {
	return Point2d{X: p.X - b.X, Y: p.Y - b.Y}
}

// ScaledBy returns p scaled by s.
func (p Point2d) ScaledBy(s float64) Point2d {
	return Point2d{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and b.
func (p Point2d) Dot(b Point2d) float64 {
	return p.X*b.X + p.Y*b.Y
}

// DistanceTo returns the distance from p to b.
func (p Point2d) DistanceTo(b Point2d) float64 {
	dx, dy := p.X-b.X, p.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceToLine returns the distance from p to the line through p0 with
// direction dp. With segment true the line is bounded to t in [0, 1], and
// the distance to the nearer endpoint is returned when the projection
// falls outside. A degenerate (near zero-length) dp yields VeryPositive.
func (p Point2d) DistanceToLine(p0, dp Point2d, segment bool) float64 {
	m := dp.MagSquared()
	if m < LengthEps*LengthEps {
		return VeryPositive
	}

	// Parameter of the projection onto p = p0 + t·dp.
	t := dp.Dot(p.Minus(p0)) / m
	if segment && (t < 0 || t > 1) {
		return math.Min(p.DistanceTo(p0), p.DistanceTo(p0.Plus(dp)))
	}
	return p.DistanceTo(p0.Plus(dp.ScaledBy(t)))
}

// Magnitude returns the Euclidean length of p.
func (p Point2d) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// MagSquared returns the squared Euclidean length of p.
func (p Point2d) MagSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// WithMagnitude returns p rescaled to length s, or the zero point when p
// itself is zero.
func (p Point2d) WithMagnitude(s float64) Point2d {
	m := p.Magnitude()
	if m == 0 {
		return Point2d{}
	}
	return p.ScaledBy(s / m)
}

// Normal returns the perpendicular of p, rotated -90 degrees.
func (p Point2d) Normal() Point2d {
	return Point2d{X: p.Y, Y: -p.X}
}

// DivPivoting returns the scalar t such that p ≈ t·delta, computed from
// the larger-magnitude component of delta.
func (p Point2d) DivPivoting(delta Point2d) float64 {
	if math.Abs(delta.X) > math.Abs(delta.Y) {
		return p.X / delta.X
	}
	return p.Y / delta.Y
}

// Equals reports whether p and b are coincident within LengthEps.
func (p Point2d) Equals(b Point2d) bool {
	return p.EqualsTol(b, LengthEps)
}

// EqualsTol reports whether p and b are coincident within tol.
func (p Point2d) EqualsTol(b Point2d, tol float64) bool {
	dx, dy := p.X-b.X, p.Y-b.Y
	if math.Abs(dx) > tol || math.Abs(dy) > tol {
		return false
	}
	return dx*dx+dy*dy < tol*tol
}
