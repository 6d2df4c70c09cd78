package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdaffarh/eco-scan/internal/config"
	"github.com/mdaffarh/eco-scan/internal/database"
	"github.com/mdaffarh/eco-scan/internal/middleware"
	"github.com/mdaffarh/eco-scan/internal/migrations"
	"github.com/mdaffarh/eco-scan/internal/routes"
	"github.com/mdaffarh/eco-scan/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting EcoScan Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	logger.Info().Msg("Running database migrations...")
	if err := migrations.Run(database.DB); err != nil {
		logger.Fatal().Err(err).Msg("Migration failed")
	}
	logger.Info().Msg("Database migrations complete")

	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterScanRoutes(api)
		routes.RegisterUserRoutes(api)
		routes.RegisterAdminRoutes(api)
	}

	// Bin photos are served straight from local disk
	r.Static(config.AppConfig.UploadPublicURL, config.AppConfig.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		redisStatus := "ok"
		if database.Redis == nil {
			redisStatus = "disabled"
		} else if err := database.Redis.Ping(database.Ctx).Err(); err != nil {
			redisStatus = "down"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbStatus, "redis": redisStatus})
	})

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", config.AppConfig.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server exited")
}
