package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector4PerspectiveProject(t *testing.T) {
	p, ok := Vec4(2, 4, 6, 8).PerspectiveProject()
	require.True(t, ok)
	assert.True(t, p.Equals(Vec(2, 3, 4)))

	_, ok = Vec4(0, 1, 2, 3).PerspectiveProject()
	assert.False(t, ok)
}

func TestVector4Blend(t *testing.T) {
	a := Vec4FromContribution(1, Vec(0, 0, 0))
	b := Vec4FromContribution(3, Vec(2, 2, 2))

	// Rational blend: the weight interpolates along with the point, so the
	// projected midpoint is pulled toward the heavier end.
	mid := Blend(a, b, 0.5)
	p, ok := mid.PerspectiveProject()
	require.True(t, ok)
	assert.InDelta(t, 1.5, p.X, 1e-12)

	// Blend endpoints reproduce the inputs.
	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 1))
}

func TestVector4Arithmetic(t *testing.T) {
	a, b := Vec4(1, 2, 3, 4), Vec4(4, 3, 2, 1)

	assert.Equal(t, Vec4(5, 5, 5, 5), a.Plus(b))
	assert.Equal(t, Vec4(-3, -1, 1, 3), a.Minus(b))
	assert.Equal(t, Vec4(2, 4, 6, 8), a.ScaledBy(2))
}
