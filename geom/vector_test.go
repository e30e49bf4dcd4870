package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vec(1, 2, 3)
	b := Vec(4, -5, 6)

	assert.Equal(t, Vec(5, -3, 9), a.Plus(b))
	assert.Equal(t, Vec(-3, 7, -3), a.Minus(b))
	assert.Equal(t, Vec(-1, -2, -3), a.Negated())
	assert.Equal(t, Vec(2, 4, 6), a.ScaledBy(2))
	assert.InDelta(t, 12.0, a.Dot(b), 1e-12)
	assert.InDelta(t, math.Sqrt(14), a.Magnitude(), 1e-12)
	assert.InDelta(t, 14.0, a.MagSquared(), 1e-12)
}

func TestVectorCross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
	}{
		{"Axes", Vec(1, 0, 0), Vec(0, 1, 0)},
		{"General", Vec(1, 2, 3), Vec(-4, 5, 6)},
		{"NearParallel", Vec(1, 2, 3), Vec(2, 4, 6.001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.a.Cross(tt.b)

			// Orthogonal to both operands, and anticommutative.
			assert.InDelta(t, 0, c.Dot(tt.a), 1e-9)
			assert.InDelta(t, 0, c.Dot(tt.b), 1e-9)
			assert.True(t, c.Equals(tt.b.Cross(tt.a).Negated()))
		})
	}

	assert.Equal(t, Vec(0, 0, 1), Vec(1, 0, 0).Cross(Vec(0, 1, 0)))
}

func TestVectorEquals(t *testing.T) {
	a := Vec(1, 2, 3)

	assert.True(t, a.Equals(Vec(1, 2, 3+LengthEps/10)))
	assert.False(t, a.Equals(Vec(1, 2, 3+10*LengthEps)))
	assert.True(t, a.EqualsExactly(Vec(1, 2, 3)))
	assert.False(t, a.EqualsExactly(Vec(1, 2, 3+1e-15)))
}

func TestVectorWithMagnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
	}{
		{"Unit", Vec(1, 0, 0)},
		{"General", Vec(3, -4, 12)},
		{"Tiny", Vec(1e-8, 2e-8, -1e-8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 1.0, tt.v.WithMagnitude(1).Magnitude(), 1e-9)
			assert.InDelta(t, 2.5, tt.v.WithMagnitude(2.5).Magnitude(), 1e-9)
		})
	}

	assert.Equal(t, Vector{}, Vector{}.WithMagnitude(1))
}

func TestVectorNormalFrame(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
	}{
		{"X", Vec(1, 0, 0)},
		{"Z", Vec(0, 0, 1)},
		{"General", Vec(1, -2, 0.5)},
		{"NearZ", Vec(1e-9, 0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n0 := tt.v.Normal(0)
			n1 := tt.v.Normal(1)

			assert.InDelta(t, 1.0, n0.Magnitude(), 1e-9)
			assert.InDelta(t, 1.0, n1.Magnitude(), 1e-9)
			assert.InDelta(t, 0, n0.Dot(tt.v), 1e-9)
			assert.InDelta(t, 0, n1.Dot(tt.v), 1e-9)
			assert.InDelta(t, 0, n0.Dot(n1), 1e-9)
		})
	}
}

func TestVectorRotatedAbout(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		axis  Vector
		theta float64
	}{
		{"QuarterTurnZ", Vec(1, 0, 0), Vec(0, 0, 1), math.Pi / 2},
		{"SmallAngle", Vec(1, 2, 3), Vec(1, 1, 1), 1e-7},
		{"LargeAngle", Vec(-2, 0.5, 1), Vec(3, -1, 2), 5.5},
		{"NonUnitAxis", Vec(1, 0, 0), Vec(0, 0, 10), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.v.RotatedAbout(tt.axis, tt.theta)

			// Rotation preserves length and round-trips.
			assert.InDelta(t, tt.v.Magnitude(), r.Magnitude(), 1e-9)
			assert.True(t, r.RotatedAbout(tt.axis, -tt.theta).Equals(tt.v))
		})
	}

	got := Vec(1, 0, 0).RotatedAbout(Vec(0, 0, 1), math.Pi/2)
	assert.True(t, got.Equals(Vec(0, 1, 0)))
}

func TestVectorRotatedAboutPoint(t *testing.T) {
	orig := Vec(1, 1, 0)
	got := Vec(2, 1, 0).RotatedAboutPoint(orig, Vec(0, 0, 1), math.Pi/2)
	assert.True(t, got.Equals(Vec(1, 2, 0)))
}

func TestVectorCsysRoundTrip(t *testing.T) {
	u := Vec(1, 2, -1).WithMagnitude(1)
	v := u.Normal(0)
	n := u.Normal(1)

	p := Vec(3, -7, 0.25)
	local := p.DotInToCsys(u, v, n)
	back := local.ScaleOutOfCsys(u, v, n)
	assert.True(t, back.Equals(p))
}

func TestVectorDistanceToLine(t *testing.T) {
	tests := []struct {
		name     string
		p        Vector
		p0, dp   Vector
		expected float64
	}{
		{"OnLine", Vec(5, 0, 0), Vec(0, 0, 0), Vec(1, 0, 0), 0},
		{"UnitAbove", Vec(0, 1, 0), Vec(0, 0, 0), Vec(1, 0, 0), 1},
		{"Diagonal", Vec(0, 3, 4), Vec(0, 0, 0), Vec(1, 0, 0), 5},
		{"OffsetOrigin", Vec(1, 2, 0), Vec(1, 0, 0), Vec(0, 0, 2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.p.DistanceToLine(tt.p0, tt.dp), 1e-9)
		})
	}
}

func TestVectorClosestPointOnLine(t *testing.T) {
	got := Vec(3, 4, 5).ClosestPointOnLine(Vec(0, 0, 0), Vec(1, 0, 0))
	assert.True(t, got.Equals(Vec(3, 0, 0)))

	// Projection is perpendicular to the direction.
	p := Vec(1, -2, 7)
	p0, dp := Vec(2, 1, 0), Vec(1, 1, -1)
	cl := p.ClosestPointOnLine(p0, dp)
	assert.InDelta(t, 0, p.Minus(cl).Dot(dp), 1e-9)
}

func TestVectorOnLineSegment(t *testing.T) {
	a, b := Vec(0, 0, 0), Vec(10, 0, 0)

	tests := []struct {
		name     string
		p        Vector
		expected bool
	}{
		{"Middle", Vec(5, 0, 0), true},
		{"EndpointA", Vec(0, 0, 0), true},
		{"EndpointB", Vec(10, 0, 0), true},
		{"BeyondB", Vec(11, 0, 0), false},
		{"BeforeA", Vec(-1, 0, 0), false},
		{"OffAxis", Vec(5, 1, 0), false},
		{"WithinTol", Vec(5, LengthEps / 10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.OnLineSegment(a, b))
		})
	}
}

func TestVectorDivPivoting(t *testing.T) {
	delta := Vec(0, 0, 4)
	v := delta.ScaledBy(2.5)
	assert.InDelta(t, 2.5, v.DivPivoting(delta), 1e-12)

	// Pivots on the largest component, so a zero elsewhere is harmless.
	delta = Vec(3, 0, 1)
	assert.InDelta(t, -2, delta.ScaledBy(-2).DivPivoting(delta), 1e-12)
}

func TestVectorClosestOrtho(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		expected Vector
	}{
		{"MostlyX", Vec(5, 1, -1), Vec(1, 0, 0)},
		{"MostlyNegY", Vec(1, -5, 2), Vec(0, -1, 0)},
		{"MostlyZ", Vec(0.1, 0.2, 0.7), Vec(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.v.ClosestOrtho())
		})
	}
}

func TestVectorClampWithin(t *testing.T) {
	assert.Equal(t, Vec(0, 1, 0.5), Vec(-2, 7, 0.5).ClampWithin(0, 1))
}

func TestVectorDirectionCosineWith(t *testing.T) {
	assert.InDelta(t, 0, Vec(1, 0, 0).DirectionCosineWith(Vec(0, 5, 0)), 1e-12)
	assert.InDelta(t, 1, Vec(2, 0, 0).DirectionCosineWith(Vec(7, 0, 0)), 1e-12)
	assert.InDelta(t, -1, Vec(2, 0, 0).DirectionCosineWith(Vec(-1, 0, 0)), 1e-12)
}

func TestVectorProjections(t *testing.T) {
	p := Vec(3, 4, 5)

	assert.Equal(t, Pt2(3, 4), p.ProjectXy())
	assert.Equal(t, Vec4(1, 3, 4, 5), p.Project4d())

	u, v := Vec(0, 1, 0), Vec(0, 0, 1)
	assert.Equal(t, Pt2(4, 5), p.Project2d(u, v))
}

func TestVectorInPerspective(t *testing.T) {
	u, v, n := Vec(1, 0, 0), Vec(0, 1, 0), Vec(0, 0, 1)
	origin := Vec(0, 0, 0)

	// Zero camera tangent is a parallel projection.
	p := Vec(2, 3, -4)
	r := p.InPerspective(u, v, n, origin, 0)
	assert.True(t, r.Equals(p))

	// A point in front of the camera (negative z) foreshortens.
	r = p.InPerspective(u, v, n, origin, 0.25)
	w := 1 - (-4.0)*0.25
	require.NotZero(t, w)
	assert.InDelta(t, 2/w, r.X, 1e-12)
	assert.InDelta(t, 3/w, r.Y, 1e-12)
}

func TestVectorElementPanics(t *testing.T) {
	assert.Panics(t, func() { Vec(1, 2, 3).Element(3) })
	assert.Panics(t, func() { Vec(1, 2, 3).Normal(2) })
}
