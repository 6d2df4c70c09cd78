package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/handlers"
	"github.com/mdaffarh/eco-scan/internal/middleware"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		bins := admin.Group("/bins")
		{
			bins.GET("", handlers.AdminListBins)
			bins.POST("", handlers.CreateBin)
			bins.GET("/by-value/:value", handlers.GetBinByValue)
			bins.PUT("/:id", handlers.UpdateBin)
			bins.DELETE("/:id", handlers.DeleteBin)
		}

		users := admin.Group("/users")
		{
			users.GET("", handlers.AdminListUsers)
			users.DELETE("/:id", handlers.AdminDeleteUser)
		}

		logs := admin.Group("/waste-logs")
		{
			logs.GET("", handlers.AdminListWasteLogs)
			logs.DELETE("/:id", handlers.AdminDeleteWasteLog)
		}

		admin.GET("/stats", handlers.GetDashboardStats)
	}

	upload := r.Group("/upload")
	upload.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		upload.POST("/bin-image", handlers.UploadBinImage)
	}
}
