package scheduleRepo

import (
	"context"
	"errors"

	"pcare/models"
	"pcare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no schedule document matches the given id.
var ErrNotFound = errors.New("schedule not found")

// FindByID returns the stored document for a schedule id.
func (r *mongoScheduleRepo) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Upsert writes the schedule with replace semantics keyed by its id.
func (r *mongoScheduleRepo) Upsert(ctx context.Context, schedule models.Schedule) error {
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"id": schedule.ID},
		schedule,
		options.Replace().SetUpsert(true),
	)
	return err
}

// ListByUserID fetches all schedules owned by a user. A document that fails
// to decode or validate is logged and skipped; the rest of the listing still
// succeeds.
func (r *mongoScheduleRepo) ListByUserID(ctx context.Context, userID string) ([]models.Schedule, error) {
	logger := utils.GetLogger()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	schedules := []models.Schedule{}
	for cursor.Next(ctx) {
		var schedule models.Schedule
		if err := cursor.Decode(&schedule); err != nil {
			logger.Warn("Skipping undecodable schedule document",
				zap.String("userID", userID), zap.Error(err))
			continue
		}
		if err := schedule.Validate(); err != nil {
			logger.Warn("Skipping invalid schedule document",
				zap.String("scheduleID", schedule.ID), zap.Error(err))
			continue
		}
		schedules = append(schedules, schedule)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

// Delete removes the document for a schedule id.
func (r *mongoScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
