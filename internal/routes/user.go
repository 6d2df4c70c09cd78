package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/handlers"
	"github.com/mdaffarh/eco-scan/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/:id", handlers.GetUser)
		users.PUT("/:id", handlers.UpdateUser)
		users.GET("/:id/badges", handlers.GetUserBadges)
	}

	// Public
	r.GET("/leaderboard", handlers.GetLeaderboard)
	r.GET("/bins", handlers.ListBins)
}
