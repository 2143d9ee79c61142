// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the booking indexes. The partial unique index over
// (doctor_id, date, slot) restricted to non-cancelled statuses is what makes
// Insert the authoritative race-condition guard: two concurrent attempts on
// the same tuple cannot both commit.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activeOnly := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": []string{models.StatusPending, models.StatusCompleted}},
		})
	activeSlotIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctor_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "slot", Value: 1},
		},
		Options: activeOnly,
	}

	base := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctor_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "patient_phone", Value: 1}}},
		{Keys: bson.D{{Key: "patient_name", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	indexModels := append(base, activeSlotIdx)
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
