package sync

import (
	"context"
	"time"

	"pcare/utils"

	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// Health reports store connectivity for automated probes. A failed ping is
// returned as a structured degraded status, not an error, so callers can pair
// it with a 503 body.
func (s *DefaultSyncService) Health(ctx context.Context) HealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := s.Store.Ping(pingCtx); err != nil {
		utils.GetLogger().Warn("Health check ping failed", zap.Error(err))
		return HealthStatus{
			Status:    "unhealthy",
			Database:  "disconnected",
			Timestamp: now(),
			Detail:    err.Error(),
		}
	}

	return HealthStatus{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: now(),
	}
}
