package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP_Known(t *testing.T) {
	cases := []struct {
		totalXP  int
		expected int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{199, 2},
		{200, 3},
		{449, 3},
		{450, 4},
		{800, 5},
		{4500, 10},
		{19000, 20},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, LevelForXP(tc.totalXP), "totalXP %d", tc.totalXP)
	}
}

func TestLevelForXP_Monotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 25000; xp += 7 {
		level := LevelForXP(xp)
		assert.GreaterOrEqual(t, level, 1)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestLevelWindows_Consistent(t *testing.T) {
	for level := 1; level <= 50; level++ {
		assert.Equal(t, level, LevelForXP(XPFloorForLevel(level)), "floor of level %d", level)
		assert.Equal(t, level, LevelForXP(XPCeilingForLevel(level)-1), "ceiling-1 of level %d", level)
		assert.Equal(t, XPCeilingForLevel(level), XPFloorForLevel(level+1))
		assert.Positive(t, XPNeededForLevel(level))
	}
}

func TestLevelWindows_RoundTrip(t *testing.T) {
	for xp := 0; xp <= 25000; xp += 13 {
		level := LevelForXP(xp)
		assert.LessOrEqual(t, XPFloorForLevel(level), xp)
		assert.Greater(t, XPCeilingForLevel(level), xp)
		assert.Equal(t, xp-XPFloorForLevel(level), ProgressWithinLevel(xp, level))
	}
}
