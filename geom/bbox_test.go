package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeMaxMin(t *testing.T) {
	maxv := Vec(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	minv := Vec(math.Inf(1), math.Inf(1), math.Inf(1))

	for _, p := range []Vector{
		Vec(1, 5, -2),
		Vec(-3, 2, 4),
		Vec(0, 0, 0),
	} {
		p.MakeMaxMin(&maxv, &minv)
	}

	assert.Equal(t, Vec(1, 5, 4), maxv)
	assert.Equal(t, Vec(-3, 0, -2), minv)
}

func TestBoundingBoxesDisjoint(t *testing.T) {
	amax, amin := Vec(1, 1, 1), Vec(0, 0, 0)

	tests := []struct {
		name       string
		bmax, bmin Vector
		expected   bool
	}{
		{"Overlapping", Vec(0.5, 0.5, 0.5), Vec(-1, -1, -1), false},
		{"Touching", Vec(2, 2, 2), Vec(1, 1, 1), false},
		{"SeparatedX", Vec(3, 1, 1), Vec(2, 0, 0), true},
		{"SeparatedZ", Vec(1, 1, -2), Vec(0, 0, -3), true},
		{"Contained", Vec(0.6, 0.6, 0.6), Vec(0.4, 0.4, 0.4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BoundingBoxesDisjoint(amax, amin, tt.bmax, tt.bmin))
		})
	}
}

func TestBoundingBoxIntersectsLine(t *testing.T) {
	amax, amin := Vec(1, 1, 1), Vec(-1, -1, -1)

	tests := []struct {
		name     string
		p0, p1   Vector
		segment  bool
		expected bool
	}{
		{"ThroughCenter", Vec(-2, 0, 0), Vec(2, 0, 0), false, true},
		{"MissesAbove", Vec(-2, 0, 3), Vec(2, 0, 3), false, false},
		{"DiagonalThrough", Vec(-2, -2, -2), Vec(2, 2, 2), false, true},
		{"LineHitsSegmentStopsShort", Vec(5, 0, 0), Vec(3, 0, 0), false, true},
		{"SegmentStopsShort", Vec(5, 0, 0), Vec(3, 0, 0), true, false},
		{"SegmentReaches", Vec(2, 0, 0), Vec(0.5, 0, 0), true, true},
		{"SegmentInside", Vec(-0.5, 0, 0), Vec(0.5, 0, 0), true, true},
		{"ParallelOutsideSlab", Vec(-2, 5, 0), Vec(2, 5, 0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundingBoxIntersectsLine(amax, amin, tt.p0, tt.p1, tt.segment)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOutsideAndNotOn(t *testing.T) {
	maxv, minv := Vec(1, 1, 1), Vec(0, 0, 0)

	assert.False(t, Vec(0.5, 0.5, 0.5).OutsideAndNotOn(maxv, minv))
	assert.False(t, Vec(1, 1, 1).OutsideAndNotOn(maxv, minv))
	assert.False(t, Vec(1+LengthEps/2, 0, 0).OutsideAndNotOn(maxv, minv))
	assert.True(t, Vec(2, 0.5, 0.5).OutsideAndNotOn(maxv, minv))
	assert.True(t, Vec(0.5, -1, 0.5).OutsideAndNotOn(maxv, minv))
}
