package backupRepo

import (
	"context"
	"errors"

	"pcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no backup document exists for a user id.
var ErrNotFound = errors.New("backup not found")

// Replace performs the upsert-replace write keyed by user_id. Prior
// schedules not present in the new document are dropped; this is a full
// overwrite, never a merge.
func (r *mongoBackupRepo) Replace(ctx context.Context, doc models.BackupDocument) (string, error) {
	res, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"user_id": doc.UserID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return "", err
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "updated", nil
}

// FindByUserID returns the single backup document for a user.
func (r *mongoBackupRepo) FindByUserID(ctx context.Context, userID string) (*models.BackupDocument, error) {
	var doc models.BackupDocument
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
