package ratingRepo

import (
	"context"

	"fundi/models"
)

// RatingRepository defines data access for rating records.
type RatingRepository interface {
	Insert(ctx context.Context, rating *models.Rating) error
	GetByID(ctx context.Context, id string) (*models.Rating, error)
	// Query filters by any combination of clientID, workerID, bookingID
	// (empty string skips a filter).
	Query(ctx context.Context, clientID, workerID, bookingID string) ([]models.Rating, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (bool, error)
}
