package routes

import (
	"time"

	"pcare/config"
	"pcare/handlers"
	"pcare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The root banner and health probe stay public; everything else sits behind
// the bearer-token middleware when auth is enabled.
func RegisterRoutes(r *gin.Engine, cfg config.Config, h *handlers.SyncHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthHandler)

	api := r.Group("")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.POST("/backup", h.BackupHandler)
		api.GET("/restore/:user_id", h.RestoreHandler)
		api.POST("/schedules", h.UpsertScheduleHandler)
		api.GET("/schedules/:user_id", h.ListSchedulesHandler)
		api.DELETE("/schedules/:schedule_id", h.DeleteScheduleHandler)
	}
}
