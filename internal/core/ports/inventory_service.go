package ports

import (
	"context"

	"github.com/cse-motors/inventory-system/internal/core/domain"
)

// AddVehicleInput carries a validated add-vehicle form.
type AddVehicleInput struct {
	ClassificationID string
	Make             string
	Model            string
	Year             int
	Description      string
	Image            string
	Thumbnail        string
	Price            float64
	Miles            int
	Color            string
}

// ClassificationPage is the data behind the classification grid view.
type ClassificationPage struct {
	Classification domain.Classification
	Vehicles       []domain.Vehicle
}

// InventoryService defines use-case operations for browsing and managing
// the vehicle inventory.
type InventoryService interface {
	// Nav returns the classification list used to build the navigation bar.
	Nav(ctx context.Context) ([]domain.Classification, error)
	ClassificationPage(ctx context.Context, classificationID string) (*ClassificationPage, error)
	VehicleDetail(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	AddClassification(ctx context.Context, name string) (*domain.Classification, error)
	AddVehicle(ctx context.Context, input AddVehicleInput) (*domain.Vehicle, error)
}
