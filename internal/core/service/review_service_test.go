package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cse-motors/inventory-system/internal/core/domain"
	"github.com/cse-motors/inventory-system/internal/core/ports"
)

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review), nextID: 1}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	for _, existing := range r.reviews {
		if existing.VehicleID == review.VehicleID && existing.AccountID == review.AccountID {
			return nil, domain.ErrDuplicateReview
		}
	}
	clone := *review
	clone.ID = "rev_" + strconv.Itoa(r.nextID)
	r.nextID++
	r.reviews[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) ListByVehicle(_ context.Context, vehicleID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, review := range r.reviews {
		if review.VehicleID == vehicleID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) AverageRating(_ context.Context, vehicleID string) (*domain.RatingSummary, error) {
	var sum, count int64
	for _, review := range r.reviews {
		if review.VehicleID == vehicleID {
			sum += int64(review.Rating)
			count++
		}
	}
	summary := &domain.RatingSummary{Count: count}
	if count > 0 {
		summary.Average = float64(sum) / float64(count)
	}
	return summary, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, reviewID string) error {
	if _, ok := r.reviews[reviewID]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, reviewID)
	return nil
}

func newReviewFixture(t *testing.T) (*ReviewService, *stubReviewRepo, string) {
	t.Helper()
	inventory := newStubInventoryRepo()
	classification, err := inventory.CreateClassification(context.Background(), "Truck")
	if err != nil {
		t.Fatalf("create classification: %v", err)
	}
	vehicle, err := inventory.CreateVehicle(context.Background(), &domain.Vehicle{
		ClassificationID: classification.ID, Make: "Toyota", Model: "Tacoma", Year: 2022,
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	reviews := newStubReviewRepo()
	return NewReviewService(reviews, inventory, zerolog.Nop()), reviews, vehicle.ID
}

func TestReviewService_Create_Success(t *testing.T) {
	svc, _, vehicleID := newReviewFixture(t)

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{
		VehicleID: vehicleID, AccountID: "acc_1", Rating: 4, Comment: "  solid truck  ",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if review.Comment != "solid truck" {
		t.Fatalf("expected trimmed comment, got %q", review.Comment)
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	svc, _, vehicleID := newReviewFixture(t)

	input := ports.CreateReviewInput{VehicleID: vehicleID, AccountID: "acc_1", Rating: 5, Comment: "great"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); err != domain.ErrDuplicateReview {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}
}

func TestReviewService_Create_VehicleNotFound(t *testing.T) {
	svc, _, _ := newReviewFixture(t)

	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{
		VehicleID: "missing", AccountID: "acc_1", Rating: 3,
	}); err != domain.ErrVehicleNotFound {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestReviewService_ListByVehicle(t *testing.T) {
	svc, _, vehicleID := newReviewFixture(t)

	_, _ = svc.Create(context.Background(), ports.CreateReviewInput{VehicleID: vehicleID, AccountID: "acc_1", Rating: 5})
	_, _ = svc.Create(context.Background(), ports.CreateReviewInput{VehicleID: vehicleID, AccountID: "acc_2", Rating: 3})

	result, err := svc.ListByVehicle(context.Background(), vehicleID)
	if err != nil {
		t.Fatalf("ListByVehicle returned error: %v", err)
	}
	if len(result.Reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(result.Reviews))
	}
	if result.Summary.Count != 2 || result.Summary.Average != 4 {
		t.Fatalf("unexpected summary: %+v", result.Summary)
	}
}

func TestReviewService_Delete_AdminOnly(t *testing.T) {
	svc, repo, vehicleID := newReviewFixture(t)

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{
		VehicleID: vehicleID, AccountID: "acc_1", Rating: 2, Comment: "meh",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	employee := domain.Identity{LoggedIn: true, AccountID: "acc_9", Role: domain.RoleEmployee}
	if err := svc.Delete(context.Background(), review.ID, employee); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for employee, got %v", err)
	}
	if _, ok := repo.reviews[review.ID]; !ok {
		t.Fatalf("review deleted despite denial")
	}

	admin := domain.Identity{LoggedIn: true, AccountID: "acc_8", Role: domain.RoleAdmin}
	if err := svc.Delete(context.Background(), review.ID, admin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), review.ID, admin); err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
