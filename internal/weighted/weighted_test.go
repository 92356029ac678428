package weighted

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	thresholds := []Threshold[string]{
		{Value: "a", Bound: 0.10},
		{Value: "b", Bound: 0.30},
		{Value: "c", Bound: 0.60},
	}

	cases := []struct {
		r    float64
		want string
		ok   bool
	}{
		{0.0, "a", true},
		{0.09, "a", true},
		{0.10, "b", true}, // bounds are exclusive upper limits
		{0.29, "b", true},
		{0.30, "c", true},
		{0.59, "c", true},
		{0.60, "", false}, // residual
		{0.99, "", false},
	}
	for _, tc := range cases {
		got, ok := Pick(tc.r, thresholds)
		assert.Equal(t, tc.ok, ok, "r=%v", tc.r)
		assert.Equal(t, tc.want, got, "r=%v", tc.r)
	}
}

func TestPick_ClampsBoundsAboveOne(t *testing.T) {
	thresholds := []Threshold[int]{
		{Value: 1, Bound: 0.5},
		{Value: 2, Bound: 1.7},
	}

	got, ok := Pick(0.99, thresholds)
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestPick_EmptyThresholds(t *testing.T) {
	got, ok := Pick[string](0.5, nil)
	assert.False(t, ok)
	assert.Equal(t, "", got)
}
