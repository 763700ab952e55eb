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

// UpsertScheduleHandler handles POST /schedules.
func (h *SyncHandler) UpsertScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var schedule models.Schedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		logger.Warn("Invalid schedule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpsertSchedule(c.Request.Context(), schedule); err != nil {
		logger.Error("Schedule sync failed", zap.String("scheduleID", schedule.ID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": "Schedule sync failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Schedule synced successfully",
		"schedule_id": schedule.ID,
	})
}

// ListSchedulesHandler handles GET /schedules/:user_id.
func (h *SyncHandler) ListSchedulesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.Param("user_id")

	schedules, err := h.Service.ListSchedules(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list schedules", zap.String("userID", userID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": "Failed to get schedules: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// DeleteScheduleHandler handles DELETE /schedules/:schedule_id.
func (h *SyncHandler) DeleteScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	scheduleID := c.Param("schedule_id")

	if err := h.Service.DeleteSchedule(c.Request.Context(), scheduleID); err != nil {
		if errors.Is(err, sync.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		logger.Error("Failed to delete schedule", zap.String("scheduleID", scheduleID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": "Failed to delete schedule: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Schedule deleted successfully",
		"schedule_id": scheduleID,
	})
}
