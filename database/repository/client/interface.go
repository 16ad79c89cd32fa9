package clientRepo

import (
	"context"

	"fundi/models"
)

// ClientRepository defines data access for client records.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (bool, error)
	ListIDs(ctx context.Context) ([]string, error)
}
