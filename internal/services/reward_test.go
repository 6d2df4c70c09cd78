package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/mdaffarh/eco-scan/internal/gamification"
	"github.com/mdaffarh/eco-scan/internal/models"
	apperrors "github.com/mdaffarh/eco-scan/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a uniquely named in-memory SQLite database so tests
// stay isolated from each other while the connection pool shares state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.WasteLog{}, &models.BinLocation{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, totalXP int) *models.User {
	t.Helper()
	user := models.User{
		Name:    "tester",
		Email:   fmt.Sprintf("%s@example.com", t.Name()),
		TotalXP: totalXP,
		Level:   gamification.LevelForXP(totalXP),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestResolveScan_FirstScan(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	savedLog, summary, err := ResolveScan(db, ScanInput{
		UserID:     user.ID,
		WasteType:  "Botol Plastik",
		Confidence: 0.95,
		Fakultas:   "FPTI",
	})
	require.NoError(t, err)

	assert.Equal(t, 22, summary.XPEarned)
	assert.Equal(t, 22, summary.NewTotalXP)
	assert.Equal(t, 1, summary.NewLevel)
	assert.False(t, summary.LeveledUp)
	assert.Contains(t, summary.NewBadges, "first_scan")
	assert.Contains(t, summary.NewBadges, "high_confidence")
	assert.Equal(t, 1, summary.UserStats.TotalScans)
	assert.Equal(t, 0.95, summary.UserStats.HighestConfidence)

	assert.Equal(t, 22, savedLog.XPEarned)
	assert.Equal(t, "Botol Plastik", savedLog.WasteType)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, 22, stored.TotalXP)
	assert.Equal(t, gamification.LevelForXP(stored.TotalXP), stored.Level)
	assert.Contains(t, stored.Badges, "first_scan")
}

func TestResolveScan_LevelUp(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 45)

	_, summary, err := ResolveScan(db, ScanInput{
		UserID:     user.ID,
		WasteType:  "Organik",
		Confidence: 0.10,
		Fakultas:   "FPTI",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, summary.XPEarned)
	assert.Equal(t, 55, summary.NewTotalXP)
	assert.Equal(t, 2, summary.NewLevel)
	assert.True(t, summary.LeveledUp)
}

func TestResolveScan_UserNotFound_NoPartialWrite(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := ResolveScan(db, ScanInput{
		UserID:     "missing-user",
		WasteType:  "Organik",
		Confidence: 0.9,
		Fakultas:   "FPTI",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// The transaction rolled back: no orphaned log
	var count int64
	require.NoError(t, db.Model(&models.WasteLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResolveScan_InvalidInput(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	_, _, err := ResolveScan(db, ScanInput{UserID: "", WasteType: "Organik", Confidence: 0.9})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, _, err = ResolveScan(db, ScanInput{UserID: user.ID, WasteType: "  ", Confidence: 0.9})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, _, err = ResolveScan(db, ScanInput{UserID: user.ID, WasteType: "Organik", Confidence: 1.5})
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfidence)

	var count int64
	require.NoError(t, db.Model(&models.WasteLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResolveScan_TruncatedLabelDiversity(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	_, _, err := ResolveScan(db, ScanInput{
		UserID: user.ID, WasteType: "Botol Plasti", Confidence: 0.8, Fakultas: "FPTI",
	})
	require.NoError(t, err)

	_, summary, err := ResolveScan(db, ScanInput{
		UserID: user.ID, WasteType: "Botol Plastik", Confidence: 0.85, Fakultas: "FPTI",
	})
	require.NoError(t, err)

	// Truncated and full labels count as one waste type
	assert.Equal(t, 1, summary.UserStats.WasteTypesScanned)
	assert.Equal(t, 2, summary.UserStats.TotalScans)

	var labels []string
	require.NoError(t, db.Model(&models.WasteLog{}).Distinct("waste_type").Pluck("waste_type", &labels).Error)
	assert.Equal(t, []string{"Botol Plastik"}, labels)
}

func TestResolveScan_BadgesNeverReAwarded(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	_, first, err := ResolveScan(db, ScanInput{
		UserID: user.ID, WasteType: "Organik", Confidence: 0.6, Fakultas: "FPTI",
	})
	require.NoError(t, err)
	assert.Contains(t, first.NewBadges, "first_scan")

	_, second, err := ResolveScan(db, ScanInput{
		UserID: user.ID, WasteType: "Organik", Confidence: 0.6, Fakultas: "FPTI",
	})
	require.NoError(t, err)
	assert.NotContains(t, second.NewBadges, "first_scan")

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	owned := map[string]int{}
	for _, id := range stored.Badges {
		owned[id]++
	}
	for id, n := range owned {
		assert.Equal(t, 1, n, "badge %s duplicated", id)
	}
}

func TestResolveScan_XPMonotonic(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)

	prevTotal := 0
	for i := 0; i < 5; i++ {
		_, summary, err := ResolveScan(db, ScanInput{
			UserID:     user.ID,
			WasteType:  "Kertas",
			Confidence: 0.75,
			Fakultas:   "FPMIPA",
			Timestamp:  time.Now().Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		assert.Greater(t, summary.NewTotalXP, prevTotal)
		assert.Equal(t, gamification.LevelForXP(summary.NewTotalXP), summary.NewLevel)
		prevTotal = summary.NewTotalXP
	}
}
