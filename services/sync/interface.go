package sync

import (
	"context"

	backupRepo "pcare/database/repository/backup"
	scheduleRepo "pcare/database/repository/schedule"
	"pcare/models"
)

// BackupResult reports the outcome of a backup write. BackupID is the new
// document's id on first insert and "updated" when an existing document was
// replaced.
type BackupResult struct {
	BackupID string
	UserID   string
}

// HealthStatus is the structured body returned to automated health probes.
type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
	Detail    string `json:"detail,omitempty"`
}

// SyncService defines the store-and-retrieve operations behind the API: full
// snapshot backup/restore plus per-schedule upsert, list and delete. The
// server never generates entity ids; every key is client-assigned.
type SyncService interface {
	Backup(ctx context.Context, snapshot models.BackupSnapshot) (*BackupResult, error)
	Restore(ctx context.Context, userID string) (*models.BackupSnapshot, error)

	UpsertSchedule(ctx context.Context, schedule models.Schedule) error
	ListSchedules(ctx context.Context, userID string) ([]models.Schedule, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error

	Health(ctx context.Context) HealthStatus
}

// Pinger is the trivial round-trip the health check issues against the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DefaultSyncService is the production implementation.
type DefaultSyncService struct {
	Backups   backupRepo.Repository
	Schedules scheduleRepo.Repository
	Store     Pinger
}
