// File: database/repository/review/review_mongo.go
package reviewRepo

import (
	"context"
	"fmt"
	"math"
	"time"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	reviewColl *mongo.Collection
	siteColl   *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	db := database.DB()
	repo := &MongoReviewRepo{
		reviewColl: db.Collection("reviews"),
		siteColl:   db.Collection("site_reviews"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("review repo: %v", err))
	}
	return repo
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reviewIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctor_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "reviewer_phone", Value: 1}}},
	}
	if _, err := r.reviewColl.Indexes().CreateMany(ctx, reviewIdx); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	siteIdx := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	if _, err := r.siteColl.Indexes().CreateOne(ctx, siteIdx); err != nil {
		return fmt.Errorf("failed to create site review index: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) InsertReview(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.reviewColl.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) HasReviewByPatient(ctx context.Context, doctorID int, name, phone string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctor_id": doctorID,
		"$or": bson.A{
			bson.M{"reviewer_name": name},
			bson.M{"reviewer_phone": phone},
		},
	}
	count, err := r.reviewColl.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check existing review for doctor %d: %w", doctorID, err)
	}
	return count > 0, nil
}

func (r *MongoReviewRepo) ListApprovedForDoctor(ctx context.Context, doctorID, limit int) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctor_id": doctorID, "approved": true}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := r.reviewColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for doctor %d: %w", doctorID, err)
	}
	defer cursor.Close(ctx)
	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// RatingSummary aggregates approved ratings in the store rather than loading
// every review row.
func (r *MongoReviewRepo) RatingSummary(ctx context.Context, doctorID int) (models.RatingSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"doctor_id": doctorID,
			"approved":  true,
			"rating":    bson.M{"$gte": 1, "$lte": 5},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.reviewColl.Aggregate(ctx, pipeline)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("failed to aggregate ratings for doctor %d: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var results []models.RatingSummary
	if err := cursor.All(ctx, &results); err != nil {
		return models.RatingSummary{}, fmt.Errorf("failed to decode rating summary: %w", err)
	}
	if len(results) == 0 {
		return models.RatingSummary{}, nil
	}
	summary := results[0]
	summary.Average = math.Round(summary.Average*10) / 10
	return summary, nil
}

func (r *MongoReviewRepo) InsertSiteReview(ctx context.Context, review *models.SiteReview) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.siteColl.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to insert site review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) CountApprovedSite(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	count, err := r.siteColl.CountDocuments(ctx, bson.M{"approved": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count site reviews: %w", err)
	}
	return count, nil
}

func (r *MongoReviewRepo) ListApprovedSite(ctx context.Context, limit int) ([]models.SiteReview, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := r.siteColl.Find(ctx, bson.M{"approved": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list site reviews: %w", err)
	}
	defer cursor.Close(ctx)
	var reviews []models.SiteReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode site reviews: %w", err)
	}
	return reviews, nil
}
