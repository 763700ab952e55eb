package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pcare/config"
	"pcare/database"
	backupRepo "pcare/database/repository/backup"
	scheduleRepo "pcare/database/repository/schedule"
	"pcare/handlers"
	"pcare/middleware"
	"pcare/routes"
	"pcare/services/sync"
	"pcare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()

	// Connect eagerly; a store that cannot be reached at startup is the one
	// process-fatal condition.
	client, err := database.Connect(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}

	// Repositories.
	backups := backupRepo.NewMongoBackupRepo(client, cfg)
	schedules := scheduleRepo.NewMongoScheduleRepo(client, cfg)

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := backups.EnsureIndexes(idxCtx); err != nil {
		logger.Sugar().Warnf("main: backups indexes: %v", err)
	}
	if err := schedules.EnsureIndexes(idxCtx); err != nil {
		logger.Sugar().Warnf("main: schedules indexes: %v", err)
	}
	idxCancel()

	// Service and handlers.
	syncService := &sync.DefaultSyncService{
		Backups:   backups,
		Schedules: schedules,
		Store:     database.StorePinger{Client: client},
	}
	syncHandler := handlers.NewSyncHandler(syncService)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, cfg, syncHandler)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx, client); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
