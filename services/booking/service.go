package booking

import (
	"context"

	"fundi/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create builds and persists a new booking.
//
// The reference lookups (worker, subservice, service, client) fail fast with
// a not-found error before anything is written. Reverse geocoding is
// best-effort: a failure degrades to an empty locationName. The final write
// is the repository transaction that also adjusts the worker's waiting list.
func (s *DefaultBookingService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	dateTime, err := validateBookingInput(input)
	if err != nil {
		return nil, err
	}

	locationName := s.resolveLocationName(ctx, input.Location.Latitude, input.Location.Longitude)

	worker, err := s.Workers.GetByID(ctx, input.WorkerID)
	if err != nil {
		return nil, err
	}
	subservice, err := s.Catalog.GetSubservice(ctx, input.SubserviceID)
	if err != nil {
		return nil, err
	}
	service, err := s.Catalog.GetService(ctx, subservice.ServiceID)
	if err != nil {
		return nil, err
	}
	client, err := s.Clients.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		ClientID:       input.ClientID,
		WorkerID:       input.WorkerID,
		SubserviceID:   input.SubserviceID,
		ClientName:     client.Name,
		WorkerName:     worker.Name,
		ServiceName:    service.Name,
		SubserviceName: subservice.Name,
		ServiceAvatar:  service.Avatar,
		LocationName:   locationName,
		DateTime:       dateTime,
		RatePerUnit:    input.RatePerUnit,
		Unit:           input.Unit,
		Status:         input.Status,
		HasRated:       false,
		Location:       *input.Location,
		Timestamps:     models.NewTimestamps(),
	}

	if err := s.Bookings.CreateTx(ctx, booking); err != nil {
		return nil, err
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("clientId", booking.ClientID),
		zap.String("workerId", booking.WorkerID),
	)
	return booking, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

func (s *DefaultBookingService) List(ctx context.Context, clientID, workerID string) (*models.CategorizedBookings, error) {
	bookings, err := s.Bookings.Query(ctx, clientID, workerID)
	if err != nil {
		return nil, err
	}

	// The repository query is ordered by dateTime ascending; filtering here
	// preserves that order within each category.
	categorized := &models.CategorizedBookings{
		CurrentBookings: []models.Booking{},
		PastBookings:    []models.Booking{},
	}
	for _, b := range bookings {
		if b.Status == models.BookingStatusCompleted {
			categorized.PastBookings = append(categorized.PastBookings, b)
		} else {
			categorized.CurrentBookings = append(categorized.CurrentBookings, b)
		}
	}
	return categorized, nil
}

func (s *DefaultBookingService) ListIDs(ctx context.Context) ([]string, error) {
	return s.Bookings.ListIDs(ctx)
}

func (s *DefaultBookingService) Update(ctx context.Context, id string, fields map[string]any) error {
	sanitized, err := validateBookingUpdate(fields)
	if err != nil {
		return err
	}
	return s.Bookings.Update(ctx, id, sanitized)
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.Bookings.DeleteTx(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		s.Logger.Info("booking already absent, nothing deleted", zap.String("bookingId", id))
	}
	return deleted, nil
}

func (s *DefaultBookingService) UnratedCompletedWork(ctx context.Context, clientID string) (*models.Booking, error) {
	return s.Bookings.FirstUnratedCompleted(ctx, clientID)
}

// resolveLocationName swallows geocoding failures; an unresolved name is an
// empty string, never an abort.
func (s *DefaultBookingService) resolveLocationName(ctx context.Context, lat, lng float64) string {
	name, err := s.Geocoder.LocationNameFromCoordinates(ctx, lat, lng)
	if err != nil {
		s.Logger.Warn("reverse geocoding failed, proceeding without location name",
			zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		return ""
	}
	return name
}
