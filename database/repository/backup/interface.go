package backupRepo

import (
	"context"

	"pcare/config"
	"pcare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository persists backup snapshots, one document per user id.
type Repository interface {
	// Replace upserts the user's backup document wholesale and reports the
	// upserted id ("updated" when an existing document was overwritten).
	Replace(ctx context.Context, doc models.BackupDocument) (string, error)
	FindByUserID(ctx context.Context, userID string) (*models.BackupDocument, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBackupRepo struct {
	coll *mongo.Collection
}

// NewMongoBackupRepo returns a Repository backed by the backups collection.
func NewMongoBackupRepo(client *mongo.Client, cfg config.Config) Repository {
	db := client.Database(cfg.DatabaseName)
	return &mongoBackupRepo{
		coll: db.Collection("backups"),
	}
}
