package rating

import (
	"context"

	bookingRepo "fundi/database/repository/booking"
	ratingRepo "fundi/database/repository/rating"
	workerRepo "fundi/database/repository/worker"
	"fundi/models"

	"go.uber.org/zap"
)

// RatingService manages reviews of completed bookings and keeps the worker's
// denormalized rating in sync. The worker field holds whatever rating was
// written last; there is no running average.
type RatingService interface {
	// Create validates and persists a rating, derives its overall score,
	// pushes that score onto the worker, and marks the booking rated.
	Create(ctx context.Context, input models.RatingInput) (*models.Rating, error)
	// Get retrieves a rating by id.
	Get(ctx context.Context, id string) (*models.Rating, error)
	// Query filters ratings by any combination of clientID, workerID and
	// bookingID (empty string skips a filter).
	Query(ctx context.Context, clientID, workerID, bookingID string) ([]models.Rating, error)
	// ListIDs returns every rating id.
	ListIDs(ctx context.Context) ([]string, error)
	// Update replaces a rating's criterion scores, recomputes the overall
	// score, and re-pushes it onto the worker.
	Update(ctx context.Context, id string, input models.RatingInput) (*models.Rating, error)
	// Delete removes a rating. Returns false when it was already gone.
	Delete(ctx context.Context, id string) (bool, error)
}

// DefaultRatingService is the production implementation.
type DefaultRatingService struct {
	Ratings  ratingRepo.RatingRepository
	Workers  workerRepo.WorkerRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}
