package bookingRepo

import (
	"context"

	"fundi/models"
)

// BookingRepository defines the data access methods for bookings, including
// the two transactional operations that co-mutate the owning worker's
// waitingList/available pair. Those are the only write paths allowed to touch
// that pair.
type BookingRepository interface {
	// CreateTx atomically increments the worker's waiting list, flips the
	// worker unavailable, and persists the booking. Either both documents
	// commit or neither does.
	CreateTx(ctx context.Context, booking *models.Booking) error
	// DeleteTx atomically decrements the worker's waiting list, recomputes
	// the available flag, and deletes the booking. Returns false (and no
	// error) when the booking does not exist.
	DeleteTx(ctx context.Context, id string) (bool, error)
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Query returns bookings filtered by clientID and/or workerID (empty
	// string skips a filter), ordered by dateTime ascending.
	Query(ctx context.Context, clientID, workerID string) ([]models.Booking, error)
	// ListIDs returns every booking id.
	ListIDs(ctx context.Context) ([]string, error)
	// Update applies a partial update and bumps updatedAt.
	Update(ctx context.Context, id string, fields map[string]any) error
	// FirstUnratedCompleted returns the client's first completed booking that
	// has not been rated yet, or nil when there is none.
	FirstUnratedCompleted(ctx context.Context, clientID string) (*models.Booking, error)
	// SetRated marks a booking as rated and bumps updatedAt.
	SetRated(ctx context.Context, id string) error
}
