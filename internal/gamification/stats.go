package gamification

import (
	"time"

	"github.com/mdaffarh/eco-scan/internal/models"
	"github.com/mdaffarh/eco-scan/internal/wastetype"
)

// streakWindow is the trailing window the activity streak is counted over.
const streakWindow = 30 * 24 * time.Hour

// BuildStatsSnapshot aggregates a user's full scan history into the
// snapshot badge predicates run against. The history must already include
// the scan being rewarded. Labels are normalized before diversity counting
// so truncated classifier output does not inflate the distinct-type count.
func BuildStatsSnapshot(history []models.WasteLog, totalXP, level int, now time.Time) UserStatsSnapshot {
	var highest float64
	types := make(map[string]bool)
	days := make(map[string]bool)
	cutoff := now.Add(-streakWindow)

	for _, log := range history {
		if log.Confidence > highest {
			highest = log.Confidence
		}
		types[wastetype.Normalize(log.WasteType)] = true
		if !log.Timestamp.Before(cutoff) {
			days[log.Timestamp.Format("2006-01-02")] = true
		}
	}

	return UserStatsSnapshot{
		TotalScans:        len(history),
		Level:             level,
		TotalXP:           totalXP,
		HighestConfidence: highest,
		WasteTypesScanned: len(types),
		Streak:            len(days),
	}
}
