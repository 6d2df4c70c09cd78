package gamification

import "math"

// LevelForXP derives the level from total accumulated XP using a
// square-root progression curve:
//
//	level = floor(sqrt(totalXP / 50)) + 1
//
// Level 1 covers 0-49 XP, level 2 covers 50-199, level 3 covers 200-449,
// and so on. Total over non-negative input; 0 maps to level 1.
func LevelForXP(totalXP int) int {
	if totalXP <= 0 {
		return 1
	}
	return int(math.Sqrt(float64(totalXP)/50)) + 1
}

// XPFloorForLevel returns the total XP at which the level begins.
func XPFloorForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 50
}

// XPCeilingForLevel returns the total XP at which the next level begins.
func XPCeilingForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * level * 50
}

// ProgressWithinLevel returns how much XP has been earned inside the
// current level window.
func ProgressWithinLevel(totalXP, level int) int {
	return totalXP - XPFloorForLevel(level)
}

// XPNeededForLevel returns the width of the level's XP window.
func XPNeededForLevel(level int) int {
	return XPCeilingForLevel(level) - XPFloorForLevel(level)
}
