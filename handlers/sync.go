package handlers

import (
	"errors"
	"net/http"

	"pcare/models"
	"pcare/services/sync"
	"pcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceName and ServiceVersion appear in the root banner.
const (
	ServiceName    = "Personal Care API"
	ServiceVersion = "1.0.0"
)

// SyncHandler exposes the backup/restore and schedule endpoints.
type SyncHandler struct {
	Service sync.SyncService
}

// NewSyncHandler returns a handler bound to the given service.
func NewSyncHandler(svc sync.SyncService) *SyncHandler {
	return &SyncHandler{Service: svc}
}

// statusFor maps the service error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sync.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, sync.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RootHandler handles GET /.
func (h *SyncHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": ServiceName + " is running",
		"version": ServiceVersion,
	})
}

// BackupHandler handles POST /backup.
func (h *SyncHandler) BackupHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var snapshot models.BackupSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		logger.Warn("Invalid backup payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Backup(c.Request.Context(), snapshot)
	if err != nil {
		logger.Error("Backup failed", zap.String("userID", snapshot.User.ID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": "Backup failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Data backed up successfully",
		"backup_id": result.BackupID,
		"user_id":   result.UserID,
	})
}

// RestoreHandler handles GET /restore/:user_id.
func (h *SyncHandler) RestoreHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.Param("user_id")

	snapshot, err := h.Service.Restore(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, sync.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No backup found for this user"})
			return
		}
		logger.Error("Restore failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": "Restore failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
