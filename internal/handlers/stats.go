package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/database"
	"github.com/mdaffarh/eco-scan/internal/services"
	"github.com/mdaffarh/eco-scan/pkg/logger"
)

// GetDashboardStats returns the admin dashboard aggregates.
// Supported timeFilter values: today, week, month, all (default).
func GetDashboardStats(c *gin.Context) {
	timeFilter := c.DefaultQuery("timeFilter", "all")

	stats, err := services.GetDashboardStats(database.DB, timeFilter)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to compute dashboard stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil statistik"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
