package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/config"
	"github.com/mdaffarh/eco-scan/pkg/logger"
	"github.com/mdaffarh/eco-scan/pkg/utils"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadBinImage stores a bin location photo on local disk and returns its
// public URL.
func UploadBinImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File gambar wajib ada"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ukuran gambar maksimal 5MB"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format gambar harus jpg, png, atau webp"})
		return
	}

	uploadDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.Error().Err(err).Msg("Failed to create upload directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan gambar"})
		return
	}

	filename := utils.GenerateID() + ext
	dst := filepath.Join(uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		logger.Error().Err(err).Msg("Failed to save uploaded image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan gambar"})
		return
	}

	imageURL := fmt.Sprintf("%s/%s", strings.TrimRight(config.AppConfig.UploadPublicURL, "/"), filename)
	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
