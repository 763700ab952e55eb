package models

// BackupSnapshot is the full-replace aggregate the client sends on every
// backup call: one user plus all of that user's schedules at a point in time.
type BackupSnapshot struct {
	User       User       `json:"user" bson:"user" binding:"required"`
	Schedules  []Schedule `json:"schedules" bson:"schedules" binding:"dive"`
	BackupDate string     `json:"backup_date" bson:"backup_date" binding:"required"`
}

// BackupDocument is the persisted form of a snapshot in the backups
// collection, keyed by UserID. Exactly one document exists per user; every
// backup call overwrites it wholesale.
type BackupDocument struct {
	UserID     string     `bson:"user_id"`
	User       User       `bson:"user"`
	Schedules  []Schedule `bson:"schedules"`
	BackupDate string     `bson:"backup_date"`
	CreatedAt  string     `bson:"created_at"`
	UpdatedAt  string     `bson:"updated_at"`
}

// Snapshot reconstructs the client-facing shape from a stored document.
func (d BackupDocument) Snapshot() BackupSnapshot {
	schedules := d.Schedules
	if schedules == nil {
		schedules = []Schedule{}
	}
	return BackupSnapshot{
		User:       d.User,
		Schedules:  schedules,
		BackupDate: d.BackupDate,
	}
}
