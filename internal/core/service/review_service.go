package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

// ReviewService implements review submission, listing and moderation.
type ReviewService struct {
	reviews   ports.ReviewRepository
	inventory ports.InventoryRepository
	log       zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, inventory ports.InventoryRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, inventory: inventory, log: log}
}

// Create persists a review. The vehicle must exist, and an account may review
// a vehicle at most once (domain.ErrDuplicateReview otherwise).
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if _, err := s.inventory.FindVehicle(ctx, input.VehicleID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		VehicleID: input.VehicleID,
		AccountID: input.AccountID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("vehicle_id", created.VehicleID).
		Int("rating", created.Rating).
		Msg("review created")
	return created, nil
}

func (s *ReviewService) ListByVehicle(ctx context.Context, vehicleID string) (*ports.VehicleReviews, error) {
	reviews, err := s.reviews.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	summary, err := s.reviews.AverageRating(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}

	return &ports.VehicleReviews{Reviews: reviews, Summary: *summary}, nil
}

// Delete removes a review. Only Admin identities may delete.
func (s *ReviewService) Delete(ctx context.Context, reviewID string, actor domain.Identity) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.log.Info().
		Str("review_id", reviewID).
		Str("deleted_by", actor.AccountID).
		Msg("review deleted")
	return nil
}
