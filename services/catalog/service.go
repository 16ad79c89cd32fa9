package catalog

import (
	"context"
	"fmt"

	catalogRepo "fundi/database/repository/catalog"
	"fundi/models"
	"fundi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the service/subservice reference data that bookings
// and work alerts resolve against.
type CatalogService interface {
	CreateService(ctx context.Context, input models.Service) (*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	UpdateService(ctx context.Context, id string, fields map[string]any) error
	DeleteService(ctx context.Context, id string) (bool, error)

	CreateSubservice(ctx context.Context, input models.Subservice) (*models.Subservice, error)
	GetSubservice(ctx context.Context, id string) (*models.Subservice, error)
	ListSubservices(ctx context.Context, serviceID string) ([]models.Subservice, error)
	UpdateSubservice(ctx context.Context, id string, fields map[string]any) error
	DeleteSubservice(ctx context.Context, id string) (bool, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

var catalogWriteGuard = map[string]bool{
	"id":         true,
	"timestamps": true,
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, input models.Service) (*models.Service, error) {
	if input.Name == "" {
		return nil, utils.NewRequiredFieldError("name")
	}
	input.ID = uuid.NewString()
	input.Timestamps = models.NewTimestamps()
	if err := s.Catalog.CreateService(ctx, &input); err != nil {
		return nil, fmt.Errorf("persist service: %w", err)
	}
	s.Logger.Info("service created", zap.String("serviceId", input.ID))
	return &input, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Catalog.GetService(ctx, id)
}

func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Catalog.ListServices(ctx)
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, id string, fields map[string]any) error {
	if err := checkCatalogUpdate(fields); err != nil {
		return err
	}
	if _, err := s.Catalog.GetService(ctx, id); err != nil {
		return err
	}
	if err := s.Catalog.UpdateService(ctx, id, fields); err != nil {
		return fmt.Errorf("update service %s: %w", id, err)
	}
	return nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, utils.NewRequiredFieldError("id")
	}
	return s.Catalog.DeleteService(ctx, id)
}

// CreateSubservice requires that the parent service exists.
func (s *DefaultCatalogService) CreateSubservice(ctx context.Context, input models.Subservice) (*models.Subservice, error) {
	switch {
	case input.Name == "":
		return nil, utils.NewRequiredFieldError("name")
	case input.ServiceID == "":
		return nil, utils.NewRequiredFieldError("serviceId")
	}
	if _, err := s.Catalog.GetService(ctx, input.ServiceID); err != nil {
		return nil, fmt.Errorf("fetch parent service %s: %w", input.ServiceID, err)
	}
	input.ID = uuid.NewString()
	input.Timestamps = models.NewTimestamps()
	if err := s.Catalog.CreateSubservice(ctx, &input); err != nil {
		return nil, fmt.Errorf("persist subservice: %w", err)
	}
	s.Logger.Info("subservice created",
		zap.String("subserviceId", input.ID),
		zap.String("serviceId", input.ServiceID))
	return &input, nil
}

func (s *DefaultCatalogService) GetSubservice(ctx context.Context, id string) (*models.Subservice, error) {
	return s.Catalog.GetSubservice(ctx, id)
}

func (s *DefaultCatalogService) ListSubservices(ctx context.Context, serviceID string) ([]models.Subservice, error) {
	return s.Catalog.ListSubservices(ctx, serviceID)
}

func (s *DefaultCatalogService) UpdateSubservice(ctx context.Context, id string, fields map[string]any) error {
	if err := checkCatalogUpdate(fields); err != nil {
		return err
	}
	if _, err := s.Catalog.GetSubservice(ctx, id); err != nil {
		return err
	}
	if err := s.Catalog.UpdateSubservice(ctx, id, fields); err != nil {
		return fmt.Errorf("update subservice %s: %w", id, err)
	}
	return nil
}

func (s *DefaultCatalogService) DeleteSubservice(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, utils.NewRequiredFieldError("id")
	}
	return s.Catalog.DeleteSubservice(ctx, id)
}

func checkCatalogUpdate(fields map[string]any) error {
	if len(fields) == 0 {
		return &utils.ValidationError{Field: "fields", Reason: "no fields to update"}
	}
	for name := range fields {
		if catalogWriteGuard[name] {
			return &utils.ValidationError{Field: name, Reason: "cannot be updated"}
		}
	}
	return nil
}
