package geom

import "math"

// Vector is a point or direction in 3D space. Operations return new values
// and never mutate the receiver.
type Vector struct {
	X, Y, Z float64
}

// Vec returns the vector (x, y, z).
func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Element returns component i, with 0, 1, 2 mapping to X, Y, Z.
// Any other i panics.
func (v Vector) Element(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("geom: vector element index out of range")
	}
}

// Equals reports whether v and b are coincident within LengthEps.
func (v Vector) Equals(b Vector) bool {
	return v.EqualsTol(b, LengthEps)
}

// EqualsTol reports whether v and b are coincident within tol.
func (v Vector) EqualsTol(b Vector, tol float64) bool {
	// Cheap per-axis rejection before the exact distance test.
	dv := v.Minus(b)
	if math.Abs(dv.X) > tol || math.Abs(dv.Y) > tol || math.Abs(dv.Z) > tol {
		return false
	}
	return dv.MagSquared() < tol*tol
}

// EqualsExactly reports whether v and b have bit-identical components.
func (v Vector) EqualsExactly(b Vector) bool {
	return v.X == b.X && v.Y == b.Y && v.Z == b.Z
}

// Plus returns v + b.
func (v Vector) Plus(b Vector) Vector {
	return Vector{X: v.X + b.X, Y: v.Y + b.Y, Z: v.Z + b.Z}
}

// Minus returns v - b.
func (v Vector) Minus(b Vector) Vector {
	return Vector{X: v.X - b.X, Y: v.Y - b.Y, Z: v.Z - b.Z}
}

// Negated returns -v.
func (v Vector) Negated() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// ScaledBy returns v scaled by s.
func (v Vector) ScaledBy(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and b.
func (v Vector) Dot(b Vector) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Cross returns the cross product v × b.
func (v Vector) Cross(b Vector) Vector {
	return Vector{
		X: -(v.Z*b.Y) + v.Y*b.Z,
		Y: v.Z*b.X - v.X*b.Z,
		Z: -(v.Y*b.X) + v.X*b.Y,
	}
}

// DirectionCosineWith returns the cosine of the angle between v and b.
func (v Vector) DirectionCosineWith(b Vector) float64 {
	return v.WithMagnitude(1).Dot(b.WithMagnitude(1))
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// MagSquared returns the squared Euclidean length of v.
func (v Vector) MagSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// WithMagnitude returns v rescaled to length s. Rescaling a zero vector is
// undefined; the zero vector is returned and the caller must guard against
// that case if it matters.
func (v Vector) WithMagnitude(s float64) Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return v.ScaledBy(s / m)
}

// Normal returns one of two canonical unit vectors perpendicular to v,
// selected by which (0 or 1). The two results and v/|v| form a right-handed
// orthonormal frame. Any other which panics.
func (v Vector) Normal(which int) Vector {
	var n Vector

	// Pivot on the smallest component so the perpendicular is well
	// conditioned; +Z gets a fixed answer so XY-plane work is stable.
	xa, ya, za := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case v.Equals(Vector{Z: 1}):
		n = Vector{X: 1}
	case xa < ya && xa < za:
		n = Vector{Y: v.Z, Z: -v.Y}
	case ya < za:
		n = Vector{X: v.Z, Z: -v.X}
	default:
		n = Vector{X: v.Y, Y: -v.X}
	}

	switch which {
	case 0:
		// n is the one we want.
	case 1:
		n = v.Cross(n)
	default:
		panic("geom: Normal index must be 0 or 1")
	}
	return n.WithMagnitude(1)
}

// RotatedAbout returns v rotated by theta radians about an axis through the
// origin. The axis need not be unit length; it is normalized internally.
func (v Vector) RotatedAbout(axis Vector, theta float64) Vector {
	c, s := math.Cos(theta), math.Sin(theta)
	axis = axis.WithMagnitude(1)

	// Rodrigues' rotation formula.
	return v.ScaledBy(c).
		Plus(axis.Cross(v).ScaledBy(s)).
		Plus(axis.ScaledBy(axis.Dot(v) * (1 - c)))
}

// RotatedAboutPoint returns v rotated by theta radians about an axis
// through orig.
func (v Vector) RotatedAboutPoint(orig, axis Vector, theta float64) Vector {
	return v.Minus(orig).RotatedAbout(axis, theta).Plus(orig)
}

// DotInToCsys expresses v in the orthonormal basis (u, v, n), returning its
// coordinates in that basis. ScaleOutOfCsys is the exact inverse.
func (v Vector) DotInToCsys(u, vv, n Vector) Vector {
	return Vector{X: v.Dot(u), Y: v.Dot(vv), Z: v.Dot(n)}
}

// ScaleOutOfCsys maps basis coordinates v back to the global frame, as the
// linear combination v.X·u + v.Y·vv + v.Z·n.
func (v Vector) ScaleOutOfCsys(u, vv, n Vector) Vector {
	return u.ScaledBy(v.X).Plus(vv.ScaledBy(v.Y)).Plus(n.ScaledBy(v.Z))
}

// DistanceToLine returns the perpendicular distance from v to the infinite
// line through p0 with direction dp.
func (v Vector) DistanceToLine(p0, dp Vector) float64 {
	m := dp.Magnitude()
	return v.Minus(p0).Cross(dp).Magnitude() / m
}

// OnLineSegment reports whether v lies on the segment from a to b, within
// LengthEps.
func (v Vector) OnLineSegment(a, b Vector) bool {
	return v.OnLineSegmentTol(a, b, LengthEps)
}

// OnLineSegmentTol reports whether v lies on the segment from a to b,
// within tol. The endpoints count as on the segment.
func (v Vector) OnLineSegmentTol(a, b Vector, tol float64) bool {
	if v.EqualsTol(a, tol) || v.EqualsTol(b, tol) {
		return true
	}

	d := b.Minus(a)
	m := d.MagSquared()
	distsq := v.Minus(a).Cross(d).MagSquared()
	if distsq >= tol*tol*m {
		return false
	}

	t := v.Minus(a).DivPivoting(d)
	// The endpoint cases were already accepted above.
	return t > 0 && t < 1
}

// ClosestPointOnLine returns the projection of v onto the infinite line
// through p0 with direction dp.
func (v Vector) ClosestPointOnLine(p0, dp Vector) Vector {
	t := v.Minus(p0).Dot(dp) / dp.MagSquared()
	return p0.Plus(dp.ScaledBy(t))
}

// DivPivoting returns the scalar t such that v ≈ t·delta, computed from the
// largest-magnitude component of delta for numerical stability. Meaningful
// only when v and delta are (near) parallel.
func (v Vector) DivPivoting(delta Vector) float64 {
	mx, my, mz := math.Abs(delta.X), math.Abs(delta.Y), math.Abs(delta.Z)
	switch {
	case mx > my && mx > mz:
		return v.X / delta.X
	case my > mz:
		return v.Y / delta.Y
	default:
		return v.Z / delta.Z
	}
}

// ClosestOrtho returns the signed coordinate axis closest in direction
// to v.
func (v Vector) ClosestOrtho() Vector {
	mx, my, mz := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case mx > my && mx > mz:
		return Vector{X: sign(v.X)}
	case my > mz:
		return Vector{Y: sign(v.Y)}
	default:
		return Vector{Z: sign(v.Z)}
	}
}

func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	return -1
}

// ClampWithin returns v with each component clamped to [minv, maxv].
func (v Vector) ClampWithin(minv, maxv float64) Vector {
	return Vector{
		X: math.Min(math.Max(v.X, minv), maxv),
		Y: math.Min(math.Max(v.Y, minv), maxv),
		Z: math.Min(math.Max(v.Z, minv), maxv),
	}
}

// InPerspective maps v into a camera-relative perspective frame: the basis
// (u, v, n) with the camera looking along -n from origin, foreshortened by
// cameraTan (the tangent of the half field of view). cameraTan of zero
// gives a parallel projection.
func (v Vector) InPerspective(u, vv, n, origin Vector, cameraTan float64) Vector {
	r := v.Minus(origin).DotInToCsys(u, vv, n)
	// Looking along -n, so points in front of the camera have negative z.
	w := 1 - r.Z*cameraTan
	return r.ScaledBy(1 / w)
}

// Project2d returns the 2D coordinates of v in the workplane spanned by
// u and v (an affine projection, no perspective division).
func (v Vector) Project2d(u, vv Vector) Point2d {
	return Point2d{X: v.Dot(u), Y: v.Dot(vv)}
}

// ProjectXy drops the z component.
func (v Vector) ProjectXy() Point2d {
	return Point2d{X: v.X, Y: v.Y}
}

// Project4d returns v as a homogeneous 4-vector with weight 1.
func (v Vector) Project4d() Vector4 {
	return Vector4{W: 1, X: v.X, Y: v.Y, Z: v.Z}
}
