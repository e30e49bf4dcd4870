package geom

import "math"

// MakeMaxMin folds v into the running bounding-box accumulators maxv and
// minv, expanding each to contain v.
func (v Vector) MakeMaxMin(maxv, minv *Vector) {
	maxv.X = math.Max(maxv.X, v.X)
	maxv.Y = math.Max(maxv.Y, v.Y)
	maxv.Z = math.Max(maxv.Z, v.Z)

	minv.X = math.Min(minv.X, v.X)
	minv.Y = math.Min(minv.Y, v.Y)
	minv.Z = math.Min(minv.Z, v.Z)
}

// OutsideAndNotOn reports whether v lies strictly outside the box
// [minv, maxv] expanded by LengthEps on every side.
func (v Vector) OutsideAndNotOn(maxv, minv Vector) bool {
	return v.X > maxv.X+LengthEps || v.X < minv.X-LengthEps ||
		v.Y > maxv.Y+LengthEps || v.Y < minv.Y-LengthEps ||
		v.Z > maxv.Z+LengthEps || v.Z < minv.Z-LengthEps
}

// BoundingBoxesDisjoint reports whether the boxes [amin, amax] and
// [bmin, bmax] have no overlap, with LengthEps slop so that boxes merely
// touching are not considered disjoint.
func BoundingBoxesDisjoint(amax, amin, bmax, bmin Vector) bool {
	for i := 0; i < 3; i++ {
		if amax.Element(i) < bmin.Element(i)-LengthEps {
			return true
		}
		if amin.Element(i) > bmax.Element(i)+LengthEps {
			return true
		}
	}
	return false
}

// BoundingBoxIntersectsLine reports whether the line through p0 and p1
// passes through the box [amin, amax], expanded by LengthEps. With segment
// true only the portion between p0 and p1 is considered.
func BoundingBoxIntersectsLine(amax, amin, p0, p1 Vector, segment bool) bool {
	dp := p1.Minus(p0)

	// Slab test: intersect the line's parametric range with the three
	// per-axis intervals; the line hits the box iff the ranges overlap.
	tmin, tmax := math.Inf(-1), math.Inf(1)
	if segment {
		tmin, tmax = 0, 1
	}

	for i := 0; i < 3; i++ {
		lo, hi := amin.Element(i)-LengthEps, amax.Element(i)+LengthEps
		d := dp.Element(i)
		s := p0.Element(i)

		if math.Abs(d) < LengthEps {
			// Parallel to this slab; either always inside it or never.
			if s < lo || s > hi {
				return false
			}
			continue
		}

		t0, t1 := (lo-s)/d, (hi-s)/d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math.Max(tmin, t0)
		tmax = math.Min(tmax, t1)
		if tmin > tmax {
			return false
		}
	}
	return true
}
