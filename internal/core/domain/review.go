package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrDuplicateReview = errors.New("review already submitted for this vehicle")

// Review is a rating and comment left by an account on a vehicle.
// One review per (VehicleID, AccountID) pair.
type Review struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	AccountID    string    `json:"account_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// RatingSummary aggregates the reviews of a single vehicle.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
