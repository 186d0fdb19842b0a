package ports

import (
	"context"

	"github.com/cse-motors/inventory-system/internal/core/domain"
)

// InventoryRepository defines persistence operations for classifications and
// vehicles.
type InventoryRepository interface {
	ListClassifications(ctx context.Context) ([]domain.Classification, error)
	FindClassification(ctx context.Context, id string) (*domain.Classification, error)
	CreateClassification(ctx context.Context, name string) (*domain.Classification, error)

	ListVehiclesByClassification(ctx context.Context, classificationID string) ([]domain.Vehicle, error)
	FindVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
}
