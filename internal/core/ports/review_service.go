package ports

import (
	"context"

	"github.com/cse-motors/inventory-system/internal/core/domain"
)

// CreateReviewInput carries a validated review form. AccountID comes from the
// request identity, never from the form.
type CreateReviewInput struct {
	VehicleID string
	AccountID string
	Rating    int
	Comment   string
}

// VehicleReviews bundles a vehicle's reviews with their aggregate rating.
type VehicleReviews struct {
	Reviews []domain.Review
	Summary domain.RatingSummary
}

// ReviewService defines use-case operations for vehicle reviews.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ListByVehicle(ctx context.Context, vehicleID string) (*VehicleReviews, error)
	// Delete removes a review. Only Admin identities may delete.
	Delete(ctx context.Context, reviewID string, actor domain.Identity) error
}
