package workerRepo

import (
	"context"

	"fundi/models"
)

// WorkerRepository defines the data access methods used by the booking,
// work-alert, and rating services.
type WorkerRepository interface {
	// GetByID retrieves a worker by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Worker, error)
	// GetBySubservice retrieves all workers registered for a subservice.
	// This drives work-alert fan-out.
	GetBySubservice(ctx context.Context, subserviceID string) ([]models.Worker, error)
	// UpdateRating overwrites the worker's denormalized rating field.
	UpdateRating(ctx context.Context, id string, rating float64) error
	// TopRated returns the n highest-rated workers.
	TopRated(ctx context.Context, n int) ([]models.Worker, error)
	// Create persists a new worker record.
	Create(ctx context.Context, worker *models.Worker) error
	// Update applies a partial update and bumps updatedAt.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes a worker. Returns false when nothing was deleted.
	Delete(ctx context.Context, id string) (bool, error)
	// ListIDs returns every worker id.
	ListIDs(ctx context.Context) ([]string, error)
}
