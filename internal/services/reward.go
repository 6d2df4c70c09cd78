// Package services holds the write-side orchestration on top of the pure
// gamification core: reward resolution for scans, bin location resolution,
// and the admin dashboard aggregates.
package services

import (
	"strings"
	"time"

	"github.com/mdaffarh/eco-scan/internal/gamification"
	"github.com/mdaffarh/eco-scan/internal/models"
	"github.com/mdaffarh/eco-scan/internal/wastetype"
	"github.com/mdaffarh/eco-scan/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScanInput is one classification event as submitted by the client.
type ScanInput struct {
	UserID     string
	WasteType  string
	Confidence float64
	Fakultas   string
	LokasiID   string
	Timestamp  time.Time
}

// RewardSummary describes what one scan changed, for the celebration UI.
type RewardSummary struct {
	XPEarned   int                            `json:"xpEarned"`
	NewTotalXP int                            `json:"newTotalXP"`
	NewLevel   int                            `json:"newLevel"`
	LeveledUp  bool                           `json:"leveledUp"`
	NewBadges  []string                       `json:"newBadges"`
	UserStats  gamification.UserStatsSnapshot `json:"userStats"`
}

// ResolveScan converts one classification event into persisted progression
// state: it appends the waste log (with XP baked in) and updates the user's
// total XP, cached level, and badge set in a single transaction. The user
// row is locked for the read-modify-write so concurrent scans from the same
// user cannot lose an XP increment.
//
// Nothing is persisted when validation fails or the user does not exist.
func ResolveScan(db *gorm.DB, in ScanInput) (*models.WasteLog, *RewardSummary, error) {
	if in.UserID == "" || strings.TrimSpace(in.WasteType) == "" {
		return nil, nil, errors.ErrInvalidInput
	}

	// Normalized once here; every later read (diversity counting, bin
	// resolution, display) sees the canonical label.
	label := wastetype.Normalize(in.WasteType)

	xpEarned, err := gamification.XPForConfidence(in.Confidence)
	if err != nil {
		return nil, nil, err
	}

	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now()
	}
	if in.LokasiID == "" {
		in.LokasiID = in.Fakultas
	}

	var savedLog models.WasteLog
	var summary RewardSummary

	err = db.Transaction(func(tx *gorm.DB) error {
		userQuery := tx
		if tx.Dialector.Name() == "postgres" {
			userQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var user models.User
		if err := userQuery.First(&user, "id = ?", in.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrUserNotFound
			}
			return err
		}

		savedLog = models.WasteLog{
			UserID:     in.UserID,
			WasteType:  label,
			Confidence: in.Confidence,
			XPEarned:   xpEarned,
			Fakultas:   in.Fakultas,
			LokasiID:   in.LokasiID,
			Timestamp:  in.Timestamp,
		}
		if err := tx.Create(&savedLog).Error; err != nil {
			return err
		}

		newTotalXP := user.TotalXP + xpEarned
		newLevel := gamification.LevelForXP(newTotalXP)
		leveledUp := newLevel > user.Level

		var history []models.WasteLog
		if err := tx.Where("user_id = ?", in.UserID).Find(&history).Error; err != nil {
			return err
		}

		stats := gamification.BuildStatsSnapshot(history, newTotalXP, newLevel, in.Timestamp)
		newBadges := gamification.EvaluateBadges(stats, user.Badges)
		if newBadges == nil {
			newBadges = []string{}
		}

		user.TotalXP = newTotalXP
		user.Level = newLevel
		user.AddBadges(newBadges)

		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
			"total_xp": user.TotalXP,
			"level":    user.Level,
			"badges":   user.Badges,
		}).Error; err != nil {
			return err
		}

		summary = RewardSummary{
			XPEarned:   xpEarned,
			NewTotalXP: newTotalXP,
			NewLevel:   newLevel,
			LeveledUp:  leveledUp,
			NewBadges:  newBadges,
			UserStats:  stats,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &savedLog, &summary, nil
}
