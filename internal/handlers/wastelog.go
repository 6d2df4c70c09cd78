package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/database"
	"github.com/mdaffarh/eco-scan/internal/models"
	"github.com/mdaffarh/eco-scan/pkg/logger"
)

// GetMyWasteLogs returns the authenticated user's scan history,
// newest first.
func GetMyWasteLogs(c *gin.Context) {
	userID := c.GetString("userId")

	var logs []models.WasteLog
	if err := database.DB.Where("user_id = ?", userID).Order("timestamp desc").Find(&logs).Error; err != nil {
		logger.Error().Err(err).Str("userId", userID).Msg("Failed to fetch waste logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}

// AdminListWasteLogs lists all scan logs with optional filters.
func AdminListWasteLogs(c *gin.Context) {
	query := database.DB.Model(&models.WasteLog{})

	if userID := c.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if wasteType := c.Query("waste_type"); wasteType != "" {
		query = query.Where("waste_type = ?", wasteType)
	}
	if fakultas := c.Query("fakultas"); fakultas != "" {
		query = query.Where("fakultas = ?", fakultas)
	}

	var logs []models.WasteLog
	if err := query.Order("timestamp desc").Limit(500).Find(&logs).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to fetch waste logs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs, "count": len(logs)})
}

// AdminDeleteWasteLog removes one log. Maintenance tooling only: the user's
// accumulated XP is intentionally left untouched (total XP never decreases).
func AdminDeleteWasteLog(c *gin.Context) {
	result := database.DB.Delete(&models.WasteLog{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Failed to delete waste log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus data"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data berhasil dihapus"})
}
