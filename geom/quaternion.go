package geom

import "math"

// Quaternion is w + vx·i + vy·j + vz·k, used exclusively to represent 3D
// rotations. A valid rotation has magnitude 1; the arithmetic operations
// do not enforce that, so callers composing them normalize with
// WithMagnitude.
type Quaternion struct {
	W, Vx, Vy, Vz float64
}

// QuaternionIdentity is the identity rotation.
var QuaternionIdentity = Quaternion{W: 1}

// Quat returns the quaternion w + vx·i + vy·j + vz·k.
func Quat(w, vx, vy, vz float64) Quaternion {
	return Quaternion{W: w, Vx: vx, Vy: vy, Vz: vz}
}

// QuaternionFromBasis returns the rotation taking the canonical frame to
// the frame spanned by the orthonormal u, v (and n = u × v). The result is
// unit magnitude.
func QuaternionFromBasis(u, v Vector) Quaternion {
	n := u.Cross(v)

	var q Quaternion
	// Shepperd's method: branch on the largest of the four squared
	// components so the square root is always well conditioned.
	tr := 1 + u.X + v.Y + n.Z
	switch {
	case tr > 1e-4:
		s := 2 * math.Sqrt(tr)
		q.W = s / 4
		q.Vx = (v.Z - n.Y) / s
		q.Vy = (n.X - u.Z) / s
		q.Vz = (u.Y - v.X) / s
	case u.X > v.Y && u.X > n.Z:
		s := 2 * math.Sqrt(1 + u.X - v.Y - n.Z)
		q.W = (v.Z - n.Y) / s
		q.Vx = s / 4
		q.Vy = (u.Y + v.X) / s
		q.Vz = (n.X + u.Z) / s
	case v.Y > n.Z:
		s := 2 * math.Sqrt(1 - u.X + v.Y - n.Z)
		q.W = (n.X - u.Z) / s
		q.Vx = (u.Y + v.X) / s
		q.Vy = s / 4
		q.Vz = (v.Z + n.Y) / s
	default:
		s := 2 * math.Sqrt(1 - u.X - v.Y + n.Z)
		q.W = (u.Y - v.X) / s
		q.Vx = (n.X + u.Z) / s
		q.Vy = (v.Z + n.Y) / s
		q.Vz = s / 4
	}

	return q.WithMagnitude(1)
}

// QuaternionFromAxisAngle returns the rotation by dtheta radians about
// axis. The axis need not be unit length.
func QuaternionFromAxisAngle(axis Vector, dtheta float64) Quaternion {
	c, s := math.Cos(dtheta/2), math.Sin(dtheta/2)
	axis = axis.WithMagnitude(s)
	return Quaternion{W: c, Vx: axis.X, Vy: axis.Y, Vz: axis.Z}
}

// Plus returns q + b, componentwise. The sum of two unit quaternions is
// not unit; normalize before using it as a rotation.
func (q Quaternion) Plus(b Quaternion) Quaternion {
	return Quaternion{W: q.W + b.W, Vx: q.Vx + b.Vx, Vy: q.Vy + b.Vy, Vz: q.Vz + b.Vz}
}

// Minus returns q - b, componentwise.
func (q Quaternion) Minus(b Quaternion) Quaternion {
	return Quaternion{W: q.W - b.W, Vx: q.Vx - b.Vx, Vy: q.Vy - b.Vy, Vz: q.Vz - b.Vz}
}

// ScaledBy returns q scaled by s, componentwise.
func (q Quaternion) ScaledBy(s float64) Quaternion {
	return Quaternion{W: q.W * s, Vx: q.Vx * s, Vy: q.Vy * s, Vz: q.Vz * s}
}

// Magnitude returns the Euclidean norm of q.
func (q Quaternion) Magnitude() float64 {
	return math.Sqrt(q.W*q.W + q.Vx*q.Vx + q.Vy*q.Vy + q.Vz*q.Vz)
}

// WithMagnitude returns q rescaled to norm s. A zero quaternion is
// returned unchanged.
func (q Quaternion) WithMagnitude(s float64) Quaternion {
	m := q.Magnitude()
	if m == 0 {
		return Quaternion{}
	}
	return q.ScaledBy(s / m)
}

// RotationU returns the first row of the rotation matrix [u' v' n']'
// equivalent to q: the image of the x axis.
func (q Quaternion) RotationU() Vector {
	return Vector{
		X: q.W*q.W + q.Vx*q.Vx - q.Vy*q.Vy - q.Vz*q.Vz,
		Y: 2*q.W*q.Vz + 2*q.Vx*q.Vy,
		Z: 2*q.Vx*q.Vz - 2*q.W*q.Vy,
	}
}

// RotationV returns the second row of the equivalent rotation matrix: the
// image of the y axis.
func (q Quaternion) RotationV() Vector {
	return Vector{
		X: 2*q.Vx*q.Vy - 2*q.W*q.Vz,
		Y: q.W*q.W - q.Vx*q.Vx + q.Vy*q.Vy - q.Vz*q.Vz,
		Z: 2*q.W*q.Vx + 2*q.Vy*q.Vz,
	}
}

// RotationN returns the third row of the equivalent rotation matrix: the
// image of the z axis.
func (q Quaternion) RotationN() Vector {
	return Vector{
		X: 2*q.W*q.Vy + 2*q.Vx*q.Vz,
		Y: 2*q.Vy*q.Vz - 2*q.W*q.Vx,
		Z: q.W*q.W - q.Vx*q.Vx - q.Vy*q.Vy + q.Vz*q.Vz,
	}
}

// Rotate applies the rotation to p, computing q p q⁻¹ restricted to the
// vector part.
func (q Quaternion) Rotate(p Vector) Vector {
	// Express p in the rotated frame.
	return q.RotationU().ScaledBy(p.X).
		Plus(q.RotationV().ScaledBy(p.Y)).
		Plus(q.RotationN().ScaledBy(p.Z))
}

// ToThe returns q raised to the real power p, a fractional rotation:
// the rotation about q's axis by p times q's angle. q must be unit
// magnitude.
func (q Quaternion) ToThe(p float64) Quaternion {
	axis := Vector{X: q.Vx, Y: q.Vy, Z: q.Vz}
	if axis.MagSquared() == 0 {
		// No axis; q is the identity (or its negation), and so is any
		// power of it.
		return QuaternionIdentity
	}

	// Unit magnitude means w = cos(theta/2) directly.
	theta := math.Acos(math.Min(math.Max(q.W, -1), 1)) * p
	axis = axis.WithMagnitude(math.Sin(theta))
	return Quaternion{W: math.Cos(theta), Vx: axis.X, Vy: axis.Y, Vz: axis.Z}
}

// Inverse returns the inverse rotation: the conjugate scaled by the
// inverse squared magnitude.
func (q Quaternion) Inverse() Quaternion {
	msq := q.W*q.W + q.Vx*q.Vx + q.Vy*q.Vy + q.Vz*q.Vz
	return Quaternion{W: q.W, Vx: -q.Vx, Vy: -q.Vy, Vz: -q.Vz}.ScaledBy(1 / msq)
}

// Times returns the Hamilton product q·b, the rotation b followed by q.
func (q Quaternion) Times(b Quaternion) Quaternion {
	sa, sb := q.W, b.W
	va := Vector{X: q.Vx, Y: q.Vy, Z: q.Vz}
	vb := Vector{X: b.Vx, Y: b.Vy, Z: b.Vz}

	vr := vb.ScaledBy(sa).Plus(va.ScaledBy(sb)).Plus(va.Cross(vb))
	return Quaternion{W: sa*sb - va.Dot(vb), Vx: vr.X, Vy: vr.Y, Vz: vr.Z}
}

// Mirror returns the orientation-reversing counterpart of q, with the
// vector part negated; used for mirrored and flipped workplanes.
func (q Quaternion) Mirror() Quaternion {
	return Quaternion{W: q.W, Vx: -q.Vx, Vy: -q.Vy, Vz: -q.Vz}
}
