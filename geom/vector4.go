package geom

// Vector4 is a homogeneous coordinate (w, x, y, z), used to carry points
// through perspective transformations before the divide.
type Vector4 struct {
	W, X, Y, Z float64
}

// Vec4 returns the homogeneous coordinate (w, x, y, z).
func Vec4(w, x, y, z float64) Vector4 {
	return Vector4{W: w, X: x, Y: y, Z: z}
}

// Vec4FromContribution returns the 3D point v weighted by w, i.e. the
// homogeneous point (w, w·v). Summing weighted contributions and
// perspective-projecting the result computes a rational blend.
func Vec4FromContribution(w float64, v Vector) Vector4 {
	return Vector4{W: w, X: w * v.X, Y: w * v.Y, Z: w * v.Z}
}

// Blend returns the linear interpolation (1-t)·a + t·b.
func Blend(a, b Vector4, t float64) Vector4 {
	return a.ScaledBy(1 - t).Plus(b.ScaledBy(t))
}

// Plus returns v + b.
func (v Vector4) Plus(b Vector4) Vector4 {
	return Vector4{W: v.W + b.W, X: v.X + b.X, Y: v.Y + b.Y, Z: v.Z + b.Z}
}

// Minus returns v - b.
func (v Vector4) Minus(b Vector4) Vector4 {
	return Vector4{W: v.W - b.W, X: v.X - b.X, Y: v.Y - b.Y, Z: v.Z - b.Z}
}

// ScaledBy returns v scaled by s, weight included.
func (v Vector4) ScaledBy(s float64) Vector4 {
	return Vector4{W: v.W * s, X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// PerspectiveProject divides out the weight, returning the 3D point and
// ok=true. A zero weight has no projection; ok is false and the point is
// zero.
func (v Vector4) PerspectiveProject() (p Vector, ok bool) {
	if v.W == 0 {
		return Vector{}, false
	}
	return Vector{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}, true
}
