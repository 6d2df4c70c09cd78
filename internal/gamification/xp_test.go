package gamification

import (
	"testing"

	"github.com/mdaffarh/eco-scan/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestXPForConfidence_Bands(t *testing.T) {
	cases := []struct {
		confidence float64
		expected   int
	}{
		{0.0, 10},
		{0.10, 10},
		{0.49, 10},
		{0.50, 10},
		{0.55, 11},
		{0.69, 14},
		{0.70, 15},
		{0.89, 19},
		{0.90, 20},
		{0.95, 22},
		{0.99, 24},
		{1.0, 25},
	}

	for _, tc := range cases {
		xp, err := XPForConfidence(tc.confidence)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, xp, "confidence %.2f", tc.confidence)
	}
}

func TestXPForConfidence_Range(t *testing.T) {
	for c := 0; c <= 100; c++ {
		xp, err := XPForConfidence(float64(c) / 100)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, xp, MinXPPerScan)
		assert.LessOrEqual(t, xp, MaxXPPerScan)
	}
}

func TestXPForConfidence_Monotonic(t *testing.T) {
	prev := 0
	for c := 0; c <= 100; c++ {
		xp, err := XPForConfidence(float64(c) / 100)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, xp, prev)
		prev = xp
	}
}

func TestXPForConfidence_Invalid(t *testing.T) {
	_, err := XPForConfidence(-0.1)
	assert.ErrorIs(t, err, errors.ErrInvalidConfidence)

	_, err = XPForConfidence(1.1)
	assert.ErrorIs(t, err, errors.ErrInvalidConfidence)
}
