package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/handlers"
	"github.com/mdaffarh/eco-scan/internal/middleware"
)

func RegisterScanRoutes(r gin.IRouter) {
	scan := r.Group("/scan")
	scan.Use(middleware.AuthMiddleware())
	{
		scan.POST("", middleware.ScanRateLimit(), handlers.SubmitScan)
		scan.GET("/recommendation", handlers.GetRecommendation)
	}

	r.GET("/waste-logs", middleware.AuthMiddleware(), handlers.GetMyWasteLogs)
}
