package booking

import (
	"context"

	bookingRepo "fundi/database/repository/booking"
	catalogRepo "fundi/database/repository/catalog"
	clientRepo "fundi/database/repository/client"
	workerRepo "fundi/database/repository/worker"
	"fundi/models"
	"fundi/services/location"

	"go.uber.org/zap"
)

// BookingService orchestrates the booking lifecycle. Create and Delete are
// the only operations that touch a worker's waitingList/available pair, and
// they do so through the repository's atomic transactions.
type BookingService interface {
	// Create validates the input, resolves and denormalizes the referenced
	// entities, and persists the booking together with the worker
	// availability update.
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	// Get retrieves a single booking.
	Get(ctx context.Context, id string) (*models.Booking, error)
	// List returns a client's and/or worker's bookings categorized into
	// current (Pending / Not Completed) and past (Completed), each ordered
	// by dateTime ascending.
	List(ctx context.Context, clientID, workerID string) (*models.CategorizedBookings, error)
	// ListIDs returns every booking id (the unfiltered administrative view).
	ListIDs(ctx context.Context) ([]string, error)
	// Update applies a validated partial update.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes a booking and releases the worker's slot. Returns
	// false (not an error) when the booking does not exist.
	Delete(ctx context.Context, id string) (bool, error)
	// UnratedCompletedWork returns the client's first completed booking
	// still awaiting a rating, or nil when there is none.
	UnratedCompletedWork(ctx context.Context, clientID string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Workers  workerRepo.WorkerRepository
	Clients  clientRepo.ClientRepository
	Catalog  catalogRepo.CatalogRepository
	Geocoder location.Geocoder
	Logger   *zap.Logger
}
