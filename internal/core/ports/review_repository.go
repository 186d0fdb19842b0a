package ports

import (
	"context"

	"github.com/cse-motors/inventory-system/internal/core/domain"
)

// ReviewRepository defines persistence operations for vehicle reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	// ListByVehicle returns the vehicle's reviews newest first, with
	// ReviewerName resolved from the owning account.
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Review, error)
	AverageRating(ctx context.Context, vehicleID string) (*domain.RatingSummary, error)
	Delete(ctx context.Context, reviewID string) error
}
