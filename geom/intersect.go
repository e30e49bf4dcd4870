package geom

import "math"

// Planes are written n·x = d throughout, with n not necessarily unit
// length. Lines are given either by two points (a0, a1) or by a point and
// a direction (p0, dp).

// AtIntersectionOfPlanes returns a point on the line where the planes
// n1·x = d1 and n2·x = d2 intersect, specifically the point closest to the
// origin. The result is meaningless for (near) parallel normals; callers
// that can see degenerate input should test n1 × n2 against zero first, or
// use AtIntersectionOfThreePlanes and its parallel flag.
func AtIntersectionOfPlanes(n1 Vector, d1 float64, n2 Vector, d2 float64) Vector {
	// The closest point lies in the span of the two normals; solve the
	// 2x2 system for its coefficients.
	det := n1.Dot(n1)*n2.Dot(n2) - n1.Dot(n2)*n1.Dot(n2)
	c1 := (d1*n2.Dot(n2) - d2*n1.Dot(n2)) / det
	c2 := (d2*n1.Dot(n1) - d1*n1.Dot(n2)) / det

	return n1.ScaledBy(c1).Plus(n2.ScaledBy(c2))
}

// AtIntersectionOfThreePlanes solves the three plane equations as a 3x3
// linear system. parallel is true when the system is singular (the planes
// share no unique common point), in which case the returned point is zero.
func AtIntersectionOfThreePlanes(na Vector, da float64, nb Vector, db float64, nc Vector, dc float64) (p Vector, parallel bool) {
	det := det3(
		na.X, na.Y, na.Z,
		nb.X, nb.Y, nb.Z,
		nc.X, nc.Y, nc.Z)
	if math.Abs(det) < 1e-10 {
		return Vector{}, true
	}

	// Cramer's rule.
	detx := det3(
		da, na.Y, na.Z,
		db, nb.Y, nb.Z,
		dc, nc.Y, nc.Z)
	dety := det3(
		na.X, da, na.Z,
		nb.X, db, nb.Z,
		nc.X, dc, nc.Z)
	detz := det3(
		na.X, na.Y, da,
		nb.X, nb.Y, db,
		nc.X, nc.Y, dc)

	return Vector{X: detx / det, Y: dety / det, Z: detz / det}, false
}

func det2(a1, b1, a2, b2 float64) float64 {
	return a1*b2 - b1*a2
}

func det3(a1, b1, c1, a2, b2, c2, a3, b3, c3 float64) float64 {
	return a1*det2(b2, c2, b3, c3) -
		b1*det2(a2, c2, a3, c3) +
		c1*det2(a2, b2, a3, b3)
}

// AtIntersectionOfLines returns the point where the line through a0 and a1
// meets the line through b0 and b1. skew is true when the lines do not lie
// in a common plane within LengthEps; the returned point is then the point
// on line a closest to line b. ta and tb are the parametric coordinates of
// the computed point on each line (a0 + ta·(a1-a0), likewise for b).
func AtIntersectionOfLines(a0, a1, b0, b1 Vector) (p Vector, skew bool, ta, tb float64) {
	da, db := a1.Minus(a0), b1.Minus(b0)

	ta, tb = ClosestPointBetweenLines(a0, da, b0, db)
	p = a0.Plus(da.ScaledBy(ta))

	// The lines intersect iff the closest points on each coincide.
	skew = !p.Equals(b0.Plus(db.ScaledBy(tb)))
	return p, skew, ta, tb
}

// AtIntersectionOfPlaneAndLine returns the point where the line through p0
// and p1 pierces the plane n·x = d. parallel is true when the line
// direction is perpendicular to the plane normal within LengthEps, in
// which case no unique intersection exists and the returned point is zero.
func AtIntersectionOfPlaneAndLine(n Vector, d float64, p0, p1 Vector) (p Vector, parallel bool) {
	dp := p1.Minus(p0)

	if math.Abs(n.Dot(dp)) < LengthEps {
		return Vector{}, true
	}

	// n·(p0 + t·dp) = d
	t := (d - n.Dot(p0)) / n.Dot(dp)
	return p0.Plus(dp.ScaledBy(t)), false
}

// ClosestPointBetweenLines returns the parameters ta, tb minimizing the
// distance between pa + ta·da and pb + tb·db. For intersecting lines both
// parameters identify the intersection point; for skew lines they identify
// the foot of the common perpendicular on each line.
func ClosestPointBetweenLines(pa, da, pb, db Vector) (ta, tb float64) {
	// Build a semi-orthogonal frame from the two directions: dn is normal
	// to both, dna is normal to da within the (da, dn) plane, and likewise
	// dnb. Dotting pa + ta·da = pb + tb·db against dnb and dna decouples
	// the two unknowns.
	dn := da.Cross(db)
	dna := dn.Cross(da)
	dnb := dn.Cross(db)

	ta = -pa.Minus(pb).Dot(dnb) / da.Dot(dnb)
	tb = pa.Minus(pb).Dot(dna) / db.Dot(dna)
	return ta, tb
}
