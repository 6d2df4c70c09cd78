package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/database"
	"github.com/mdaffarh/eco-scan/internal/gamification"
	"github.com/mdaffarh/eco-scan/internal/models"
	"github.com/mdaffarh/eco-scan/internal/services"
	"github.com/mdaffarh/eco-scan/pkg/logger"
)

// GetUser returns a user profile with gamification state and resolved
// badge display metadata.
func GetUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User tidak ditemukan"})
		return
	}

	badges := make([]gamification.BadgeStatus, 0, len(user.Badges))
	for _, id := range user.Badges {
		if def, ok := gamification.BadgeByID(id); ok {
			badges = append(badges, gamification.BadgeStatus{
				ID:          def.ID,
				Name:        def.Name,
				Description: def.Description,
				Icon:        def.Icon,
				Unlocked:    true,
			})
		}
	}

	progress := gamification.ProgressWithinLevel(user.TotalXP, user.Level)
	needed := gamification.XPNeededForLevel(user.Level)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"totalXp":  user.TotalXP,
			"level":    user.Level,
			"badges":   badges,
			"joinDate": user.CreatedAt,
			"levelProgress": gin.H{
				"xpInLevel": progress,
				"xpNeeded":  needed,
			},
		},
	})
}

type UpdateUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ? AND id <> ?", input.Email, id).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email sudah digunakan oleh user lain"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User tidak ditemukan"})
		return
	}

	user.Name = input.Name
	user.Email = input.Email
	if err := database.DB.Save(&user).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to update user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui profil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile berhasil diperbarui",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// GetUserBadges returns the full badge catalog annotated with the user's
// unlock state.
func GetUserBadges(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": gamification.BadgesWithStatus(user.Badges)})
}

// GetLeaderboard returns the top users by total XP.
func GetLeaderboard(c *gin.Context) {
	var top []services.TopUser
	if err := database.DB.Model(&models.User{}).
		Select("id, name, total_xp, level").
		Order("total_xp desc").
		Limit(20).
		Scan(&top).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to fetch leaderboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": top})
}

// AdminListUsers lists all users for the admin panel.
func AdminListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to fetch users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
}

func AdminDeleteUser(c *gin.Context) {
	result := database.DB.Delete(&models.User{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Failed to delete user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User berhasil dihapus"})
}
