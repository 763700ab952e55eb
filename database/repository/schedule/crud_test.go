package scheduleRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func scheduleDoc(id, title string) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "user_id", Value: "u1"},
		{Key: "title", Value: title},
		{Key: "description", Value: ""},
		{Key: "scheduled_time", Value: "08:00"},
		{Key: "frequency", Value: "daily"},
		{Key: "notification_tone", Value: "chime"},
		{Key: "is_active", Value: true},
		{Key: "created_at", Value: "2024-01-01T00:00:00Z"},
		{Key: "completed_dates", Value: "[]"},
		{Key: "is_completed", Value: false},
	}
}

func TestListByUserIDSkipsCorruptDocuments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("invalid and undecodable documents are dropped", func(mt *mtest.T) {
		repo := &mongoScheduleRepo{coll: mt.Coll}

		// One stored document lost its title, another holds a non-string
		// title the decoder rejects. Only the healthy ones may surface.
		missingField := bson.D{
			{Key: "id", Value: "s-missing"},
			{Key: "user_id", Value: "u1"},
			{Key: "scheduled_time", Value: "08:00"},
			{Key: "frequency", Value: "daily"},
			{Key: "created_at", Value: "2024-01-01T00:00:00Z"},
		}
		wrongType := bson.D{
			{Key: "id", Value: "s-broken"},
			{Key: "user_id", Value: "u1"},
			{Key: "title", Value: int32(42)},
			{Key: "scheduled_time", Value: "08:00"},
			{Key: "frequency", Value: "daily"},
			{Key: "created_at", Value: "2024-01-01T00:00:00Z"},
		}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "personal_care_app.schedules", mtest.FirstBatch,
			scheduleDoc("s1", "Morning meds"),
			missingField,
			wrongType,
			scheduleDoc("s2", "Evening walk"),
		))

		schedules, err := repo.ListByUserID(context.Background(), "u1")
		require.NoError(mt, err)
		require.Len(mt, schedules, 2)
		assert.Equal(mt, "s1", schedules[0].ID)
		assert.Equal(mt, "s2", schedules[1].ID)
	})

	mt.Run("no documents yields an empty array", func(mt *mtest.T) {
		repo := &mongoScheduleRepo{coll: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "personal_care_app.schedules", mtest.FirstBatch))

		schedules, err := repo.ListByUserID(context.Background(), "u1")
		require.NoError(mt, err)
		assert.NotNil(mt, schedules)
		assert.Len(mt, schedules, 0)
	})
}

func TestFindByIDNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty result maps to ErrNotFound", func(mt *mtest.T) {
		repo := &mongoScheduleRepo{coll: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "personal_care_app.schedules", mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestDeleteNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("zero deletions map to ErrNotFound", func(mt *mtest.T) {
		repo := &mongoScheduleRepo{coll: mt.Coll}

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), "missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("a matched deletion succeeds", func(mt *mtest.T) {
		repo := &mongoScheduleRepo{coll: mt.Coll}

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Delete(context.Background(), "s1"))
	})
}
