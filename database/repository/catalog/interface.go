package catalogRepo

import (
	"context"

	"fundi/models"
)

// CatalogRepository defines data access for the service/subservice reference
// data that booking creation resolves against.
type CatalogRepository interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetSubservice(ctx context.Context, id string) (*models.Subservice, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	// ListSubservices returns subservices, optionally filtered by serviceID.
	ListSubservices(ctx context.Context, serviceID string) ([]models.Subservice, error)
	CreateService(ctx context.Context, service *models.Service) error
	CreateSubservice(ctx context.Context, subservice *models.Subservice) error
	UpdateService(ctx context.Context, id string, fields map[string]any) error
	UpdateSubservice(ctx context.Context, id string, fields map[string]any) error
	DeleteService(ctx context.Context, id string) (bool, error)
	DeleteSubservice(ctx context.Context, id string) (bool, error)
}
