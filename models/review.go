package models

import "time"

// Review is a patient's review of a doctor. Reviews are gated: the reviewer
// must hold an active booking with the doctor whose start time has passed.
type Review struct {
	ID            string    `bson:"id" json:"id"`
	DoctorID      int       `bson:"doctor_id" json:"doctor_id"`
	ReviewerName  string    `bson:"reviewer_name" json:"reviewer_name"`
	ReviewerPhone string    `bson:"reviewer_phone" json:"-"`
	Rating        int       `bson:"rating" json:"rating"`
	Comment       string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Approved      bool      `bson:"approved" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// SiteReview is general feedback about the service itself.
type SiteReview struct {
	ID           string    `bson:"id" json:"id"`
	ReviewerName string    `bson:"reviewer_name" json:"reviewer_name"`
	Rating       int       `bson:"rating" json:"rating"`
	Comment      string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Approved     bool      `bson:"approved" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// ReviewRequest is the payload of a doctor review submission.
type ReviewRequest struct {
	DoctorID      int    `json:"doctor_id" binding:"required"`
	ReviewerName  string `json:"reviewer_name" binding:"required"`
	ReviewerPhone string `json:"reviewer_phone" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

// RatingSummary is the aggregate of a doctor's approved reviews.
type RatingSummary struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}
