// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func activeFilter(extra bson.M) bson.M {
	filter := bson.M{"status": bson.M{"$ne": models.StatusCancelled}}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

func patientMatch(name, phone string) bson.A {
	return bson.A{
		bson.M{"patient_name": name},
		bson.M{"patient_phone": phone},
	}
}

func (r *MongoBookingRepo) BookedSlots(ctx context.Context, doctorID int, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := activeFilter(bson.M{"doctor_id": doctorID, "date": date})
	values, err := r.coll.Distinct(ctx, "slot", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked slots for doctor %d on %s: %w", doctorID, date, err)
	}
	slots := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			slots = append(slots, s)
		}
	}
	return slots, nil
}

func (r *MongoBookingRepo) FirstActiveForPatient(ctx context.Context, doctorID int, date, name, phone string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := activeFilter(bson.M{"date": date, "$or": patientMatch(name, phone)})
	if doctorID > 0 {
		filter["doctor_id"] = doctorID
	}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check patient bookings on %s: %w", date, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) HasActiveInWindow(ctx context.Context, doctorID int, fromDate, toDate, name, phone string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := activeFilter(bson.M{
		"doctor_id": doctorID,
		"date":      bson.M{"$gte": fromDate, "$lte": toDate},
		"$or":       patientMatch(name, phone),
	})
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check booking window for doctor %d: %w", doctorID, err)
	}
	return count > 0, nil
}

func (r *MongoBookingRepo) LatestActiveForPatient(ctx context.Context, doctorID int, name, phone string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := activeFilter(bson.M{"doctor_id": doctorID, "$or": patientMatch(name, phone)})
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slot", Value: -1}})
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest booking for doctor %d: %w", doctorID, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListActiveByDoctor(ctx context.Context, doctorID int) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := activeFilter(bson.M{"doctor_id": doctorID})
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slot", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for doctor %d: %w", doctorID, err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListActiveByPatient(ctx context.Context, identifier string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := activeFilter(bson.M{"$or": patientMatch(identifier, identifier)})
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slot", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for patient: %w", err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func (r *MongoBookingRepo) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, activeFilter(nil))
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return count, nil
}
