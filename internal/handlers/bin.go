package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/database"
	"github.com/mdaffarh/eco-scan/internal/models"
	"github.com/mdaffarh/eco-scan/pkg/logger"
)

const (
	binsCacheKey = "bins:all"
	binsCacheTTL = 5 * time.Minute
)

type BinInput struct {
	Value       string   `json:"value" binding:"required"`
	Label       string   `json:"label" binding:"required"`
	Fakultas    string   `json:"fakultas" binding:"required"`
	Bins        []string `json:"bins"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// ListBins returns the public bin inventory snapshot, cached in Redis.
func ListBins(c *gin.Context) {
	bins, err := loadBinSnapshot()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch bins")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data tempat sampah"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bins, "count": len(bins)})
}

// AdminListBins returns bins with optional search and fakultas filters.
func AdminListBins(c *gin.Context) {
	query := database.DB.Model(&models.BinLocation{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("value ILIKE ? OR label ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if fakultas := c.Query("fakultas"); fakultas != "" {
		query = query.Where("fakultas = ?", fakultas)
	}

	var bins []models.BinLocation
	if err := query.Order("created_at desc").Find(&bins).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to fetch bins")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data tempat sampah"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bins, "count": len(bins)})
}

func CreateBin(c *gin.Context) {
	var input BinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bin := models.BinLocation{
		Value:       input.Value,
		Label:       input.Label,
		Fakultas:    input.Fakultas,
		Bins:        input.Bins,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := database.DB.Create(&bin).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create bin")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan tempat sampah"})
		return
	}

	database.CacheInvalidate(binsCacheKey)
	c.JSON(http.StatusCreated, gin.H{"data": bin})
}

func GetBinByValue(c *gin.Context) {
	var bin models.BinLocation
	if err := database.DB.Where("value = ?", c.Param("value")).First(&bin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tempat sampah tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bin})
}

func UpdateBin(c *gin.Context) {
	var bin models.BinLocation
	if err := database.DB.First(&bin, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tempat sampah tidak ditemukan"})
		return
	}

	var input BinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bin.Value = input.Value
	bin.Label = input.Label
	bin.Fakultas = input.Fakultas
	bin.Bins = input.Bins
	bin.Description = input.Description
	if input.ImageURL != "" {
		bin.ImageURL = input.ImageURL
	}

	if err := database.DB.Save(&bin).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to update bin")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui tempat sampah"})
		return
	}

	database.CacheInvalidate(binsCacheKey)
	c.JSON(http.StatusOK, gin.H{"data": bin})
}

func DeleteBin(c *gin.Context) {
	result := database.DB.Delete(&models.BinLocation{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Failed to delete bin")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus tempat sampah"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tempat sampah tidak ditemukan"})
		return
	}

	database.CacheInvalidate(binsCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Tempat sampah berhasil dihapus"})
}
