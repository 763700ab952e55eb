package scheduleRepo

import (
	"context"

	"pcare/config"
	"pcare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository persists standalone schedule documents, one per schedule id.
type Repository interface {
	// FindByID returns the stored document for a schedule id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Schedule, error)
	// Upsert writes the schedule with replace semantics keyed by its id.
	Upsert(ctx context.Context, schedule models.Schedule) error
	// ListByUserID returns every valid schedule owned by a user, skipping
	// documents that no longer decode or validate.
	ListByUserID(ctx context.Context, userID string) ([]models.Schedule, error)
	// Delete removes the document for a schedule id, or ErrNotFound if none
	// matched.
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo returns a Repository backed by the schedules collection.
func NewMongoScheduleRepo(client *mongo.Client, cfg config.Config) Repository {
	db := client.Database(cfg.DatabaseName)
	return &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}
