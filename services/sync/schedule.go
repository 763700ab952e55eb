package sync

import (
	"context"
	"errors"

	scheduleRepo "pcare/database/repository/schedule"
	"pcare/models"
	"pcare/utils"

	"go.uber.org/zap"
)

// UpsertSchedule writes a schedule with replace semantics keyed by its id.
// created_at is server-authoritative: an existing document's value is carried
// forward unchanged and the client-supplied one discarded; only updated_at
// advances on every write.
func (s *DefaultSyncService) UpsertSchedule(ctx context.Context, schedule models.Schedule) error {
	logger := utils.GetLogger()

	existing, err := s.Schedules.FindByID(ctx, schedule.ID)
	switch {
	case err == nil:
		schedule.CreatedAt = existing.CreatedAt
	case errors.Is(err, scheduleRepo.ErrNotFound):
		schedule.CreatedAt = now()
	default:
		logger.Error("Schedule lookup failed", zap.String("scheduleID", schedule.ID), zap.Error(err))
		return classify("upsert schedule", false, err)
	}
	schedule.UpdatedAt = now()

	if err := s.Schedules.Upsert(ctx, schedule); err != nil {
		logger.Error("Schedule write failed", zap.String("scheduleID", schedule.ID), zap.Error(err))
		return classify("upsert schedule", true, err)
	}

	logger.Info("Schedule synced", zap.String("scheduleID", schedule.ID), zap.String("userID", schedule.UserID))
	return nil
}

// ListSchedules returns every schedule owned by a user in storage-native
// order. Invalid stored documents are skipped inside the repository rather
// than failing the whole listing.
func (s *DefaultSyncService) ListSchedules(ctx context.Context, userID string) ([]models.Schedule, error) {
	schedules, err := s.Schedules.ListByUserID(ctx, userID)
	if err != nil {
		return nil, classify("list schedules", false, err)
	}
	return schedules, nil
}

// DeleteSchedule removes a schedule by id. A missing id is a not-found
// condition, never a silent success.
func (s *DefaultSyncService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	if err := s.Schedules.Delete(ctx, scheduleID); err != nil {
		return classify("delete schedule", true, err)
	}

	utils.GetLogger().Info("Schedule deleted", zap.String("scheduleID", scheduleID))
	return nil
}
