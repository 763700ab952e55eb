package sync

import (
	"context"
	"time"

	"pcare/models"
	"pcare/utils"

	"go.uber.org/zap"
)

// now returns the server-side timestamp format used throughout: the wire
// format is plain strings owned by the Flutter client, so RFC3339 UTC.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Backup replaces the user's backup document wholesale. Schedules absent from
// the new snapshot are dropped with it; the backups and schedules collections
// are intentionally independent stores.
func (s *DefaultSyncService) Backup(ctx context.Context, snapshot models.BackupSnapshot) (*BackupResult, error) {
	logger := utils.GetLogger()

	stamp := now()
	doc := models.BackupDocument{
		UserID:     snapshot.User.ID,
		User:       snapshot.User,
		Schedules:  snapshot.Schedules,
		BackupDate: snapshot.BackupDate,
		CreatedAt:  stamp,
		UpdatedAt:  stamp,
	}

	backupID, err := s.Backups.Replace(ctx, doc)
	if err != nil {
		logger.Error("Backup write failed", zap.String("userID", doc.UserID), zap.Error(err))
		return nil, classify("backup", true, err)
	}

	logger.Info("Backup stored",
		zap.String("userID", doc.UserID),
		zap.String("backupID", backupID),
		zap.Int("schedules", len(snapshot.Schedules)))
	return &BackupResult{BackupID: backupID, UserID: doc.UserID}, nil
}

// Restore returns the single backup snapshot stored for a user.
func (s *DefaultSyncService) Restore(ctx context.Context, userID string) (*models.BackupSnapshot, error) {
	doc, err := s.Backups.FindByUserID(ctx, userID)
	if err != nil {
		return nil, classify("restore", false, err)
	}

	snapshot := doc.Snapshot()
	return &snapshot, nil
}
