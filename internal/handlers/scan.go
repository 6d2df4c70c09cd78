package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/database"
	"github.com/mdaffarh/eco-scan/internal/models"
	"github.com/mdaffarh/eco-scan/internal/services"
	"github.com/mdaffarh/eco-scan/internal/wastetype"
	"github.com/mdaffarh/eco-scan/pkg/errors"
	"github.com/mdaffarh/eco-scan/pkg/logger"
)

// Per-user submission cap, counted in Redis so it holds across instances.
// Complements the per-IP limiter in middleware, which is process-local.
const scanUserLimitPerMinute = 30

type ScanRequest struct {
	WasteType  string   `json:"waste_type" binding:"required"`
	Confidence *float64 `json:"confidence" binding:"required"`
	Fakultas   string   `json:"fakultas" binding:"required"`
	LokasiID   string   `json:"lokasi_id"`
}

// SubmitScan records one classification event and resolves its rewards.
// Either the log is written and the user's progression updated together,
// or nothing is persisted at all.
func SubmitScan(c *gin.Context) {
	userID := c.GetString("userId")

	allowed, err := database.CheckRateLimit("scan:"+userID, scanUserLimitPerMinute, time.Minute)
	if err != nil {
		// Fail open: a broken cache must not block scanning
		logger.Warn().Err(err).Str("userId", userID).Msg("Rate limit check failed")
		allowed = true
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Terlalu banyak scan, coba lagi sebentar"})
		return
	}

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrInvalidInput.Message})
		return
	}

	if !wastetype.IsKnown(req.WasteType) {
		// Stored as-is; logged so classifier drift shows up in monitoring
		logger.Warn().Str("wasteType", req.WasteType).Str("userId", userID).Msg("Unrecognized waste label submitted")
	}

	savedLog, summary, err := services.ResolveScan(database.DB, services.ScanInput{
		UserID:     userID,
		WasteType:  req.WasteType,
		Confidence: *req.Confidence,
		Fakultas:   req.Fakultas,
		LokasiID:   req.LokasiID,
		Timestamp:  time.Now(),
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		logger.Error().Err(err).Str("userId", userID).Msg("Failed to resolve scan rewards")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan data"})
		return
	}

	logger.Info().
		Str("userId", userID).
		Str("wasteType", savedLog.WasteType).
		Int("xpEarned", summary.XPEarned).
		Bool("leveledUp", summary.LeveledUp).
		Int("newBadges", len(summary.NewBadges)).
		Msg("Scan recorded")

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Scan berhasil!",
		"data":         savedLog,
		"gamification": summary,
	})
}

// GetRecommendation resolves which bin to use for a waste type at the
// user's declared fakultas, against the current bin inventory snapshot.
func GetRecommendation(c *gin.Context) {
	wasteType := c.Query("waste_type")
	fakultas := c.Query("fakultas")
	if wasteType == "" || fakultas == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "waste_type dan fakultas wajib diisi"})
		return
	}

	inventory, err := loadBinSnapshot()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load bin inventory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data tempat sampah"})
		return
	}

	resolution := services.ResolveBinLocations(wasteType, fakultas, inventory)
	c.JSON(http.StatusOK, gin.H{"data": resolution})
}

// loadBinSnapshot reads the bin inventory through the Redis cache. A cache
// miss or disabled cache falls through to the database; resolution
// correctness never depends on the cache.
func loadBinSnapshot() ([]models.BinLocation, error) {
	var bins []models.BinLocation
	if err := database.CacheGet(binsCacheKey, &bins); err == nil {
		return bins, nil
	}

	if err := database.DB.Find(&bins).Error; err != nil {
		return nil, err
	}

	if err := database.CacheSet(binsCacheKey, bins, binsCacheTTL); err != nil && err != database.ErrCacheDisabled {
		logger.Warn().Err(err).Msg("Failed to cache bin inventory")
	}
	return bins, nil
}
