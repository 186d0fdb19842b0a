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

// InventoryService implements browsing and employee-side inventory management.
type InventoryService struct {
	repo ports.InventoryRepository
	log  zerolog.Logger
}

func NewInventoryService(repo ports.InventoryRepository, log zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, log: log}
}

// Nav returns the classification list for the navigation bar. A storage
// failure degrades to an empty list so a broken nav never takes down a page.
func (s *InventoryService) Nav(ctx context.Context) ([]domain.Classification, error) {
	classifications, err := s.repo.ListClassifications(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("nav classification lookup failed, rendering without nav")
		return nil, nil
	}
	return classifications, nil
}

func (s *InventoryService) ClassificationPage(ctx context.Context, classificationID string) (*ports.ClassificationPage, error) {
	classification, err := s.repo.FindClassification(ctx, classificationID)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.repo.ListVehiclesByClassification(ctx, classificationID)
	if err != nil {
		return nil, fmt.Errorf("classification page: %w", err)
	}

	return &ports.ClassificationPage{
		Classification: *classification,
		Vehicles:       vehicles,
	}, nil
}

func (s *InventoryService) VehicleDetail(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	return s.repo.FindVehicle(ctx, vehicleID)
}

func (s *InventoryService) AddClassification(ctx context.Context, name string) (*domain.Classification, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("add classification: %w", domain.ErrClassificationNotFound)
	}

	created, err := s.repo.CreateClassification(ctx, name)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("classification", created.Name).Msg("classification added")
	return created, nil
}

func (s *InventoryService) AddVehicle(ctx context.Context, input ports.AddVehicleInput) (*domain.Vehicle, error) {
	// The referenced classification must exist before the insert.
	if _, err := s.repo.FindClassification(ctx, input.ClassificationID); err != nil {
		return nil, err
	}

	vehicle := &domain.Vehicle{
		ClassificationID: input.ClassificationID,
		Make:             strings.TrimSpace(input.Make),
		Model:            strings.TrimSpace(input.Model),
		Year:             input.Year,
		Description:      strings.TrimSpace(input.Description),
		Image:            input.Image,
		Thumbnail:        input.Thumbnail,
		Price:            input.Price,
		Miles:            input.Miles,
		Color:            input.Color,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.repo.CreateVehicle(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("make", created.Make).
		Str("model", created.Model).
		Int("year", created.Year).
		Msg("vehicle added")
	return created, nil
}
