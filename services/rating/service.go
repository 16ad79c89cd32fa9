package rating

import (
	"context"
	"fmt"

	"fundi/models"
	"fundi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create persists a new rating for a completed booking. The booking must
// exist, belong to the rating's client and worker, and not have been rated
// before. The derived overall score becomes the worker's current rating.
func (s *DefaultRatingService) Create(ctx context.Context, input models.RatingInput) (*models.Rating, error) {
	if err := validateRatingInput(input); err != nil {
		return nil, err
	}

	booked, err := s.Bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("fetch booking %s: %w", input.BookingID, err)
	}
	if booked.ClientID != input.ClientID || booked.WorkerID != input.WorkerID {
		return nil, &utils.ValidationError{Field: "bookingId", Reason: "does not belong to this client and worker"}
	}
	if booked.HasRated {
		return nil, &utils.ConflictError{
			Op:  "create rating",
			Err: fmt.Errorf("booking %s is already rated", input.BookingID),
		}
	}

	overall, err := CalculateOverallRating(input.Ratings)
	if err != nil {
		return nil, err
	}

	r := &models.Rating{
		ID:        uuid.NewString(),
		ClientID:  input.ClientID,
		WorkerID:  input.WorkerID,
		BookingID: input.BookingID,
		Ratings:   input.Ratings,
		OverallRating: &models.IndividualRating{
			Rating:   overall,
			Feedback: input.OverallFeedback,
		},
		Timestamps: models.NewTimestamps(),
	}
	if err := s.Ratings.Insert(ctx, r); err != nil {
		return nil, fmt.Errorf("persist rating: %w", err)
	}

	if err := s.Workers.UpdateRating(ctx, input.WorkerID, overall); err != nil {
		return nil, fmt.Errorf("update worker %s rating: %w", input.WorkerID, err)
	}
	if err := s.Bookings.SetRated(ctx, input.BookingID); err != nil {
		return nil, fmt.Errorf("mark booking %s rated: %w", input.BookingID, err)
	}

	s.Logger.Info("rating created",
		zap.String("ratingId", r.ID),
		zap.String("bookingId", input.BookingID),
		zap.String("workerId", input.WorkerID),
		zap.Float64("overall", overall))
	return r, nil
}

func (s *DefaultRatingService) Get(ctx context.Context, id string) (*models.Rating, error) {
	return s.Ratings.GetByID(ctx, id)
}

func (s *DefaultRatingService) Query(ctx context.Context, clientID, workerID, bookingID string) ([]models.Rating, error) {
	return s.Ratings.Query(ctx, clientID, workerID, bookingID)
}

func (s *DefaultRatingService) ListIDs(ctx context.Context) ([]string, error) {
	return s.Ratings.ListIDs(ctx)
}

// Update replaces the criterion scores of an existing rating. Identity fields
// are taken from the stored document, not the input.
func (s *DefaultRatingService) Update(ctx context.Context, id string, input models.RatingInput) (*models.Rating, error) {
	existing, err := s.Ratings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateCriteria(input.Ratings); err != nil {
		return nil, err
	}

	overall, err := CalculateOverallRating(input.Ratings)
	if err != nil {
		return nil, err
	}
	overallRating := &models.IndividualRating{
		Rating:   overall,
		Feedback: input.OverallFeedback,
	}
	if err := s.Ratings.Update(ctx, id, map[string]any{
		"ratings":       input.Ratings,
		"overallRating": overallRating,
	}); err != nil {
		return nil, fmt.Errorf("update rating %s: %w", id, err)
	}
	if err := s.Workers.UpdateRating(ctx, existing.WorkerID, overall); err != nil {
		return nil, fmt.Errorf("update worker %s rating: %w", existing.WorkerID, err)
	}

	existing.Ratings = input.Ratings
	existing.OverallRating = overallRating
	return existing, nil
}

func (s *DefaultRatingService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, utils.NewRequiredFieldError("id")
	}
	return s.Ratings.Delete(ctx, id)
}

func validateRatingInput(input models.RatingInput) error {
	switch {
	case input.ClientID == "":
		return utils.NewRequiredFieldError("clientId")
	case input.WorkerID == "":
		return utils.NewRequiredFieldError("workerId")
	case input.BookingID == "":
		return utils.NewRequiredFieldError("bookingId")
	}
	return validateCriteria(input.Ratings)
}

func validateCriteria(ratings map[string]models.IndividualRating) error {
	if len(ratings) == 0 {
		return utils.NewRequiredFieldError("ratings")
	}
	for name, r := range ratings {
		if _, ok := criterionWeights[name]; !ok {
			return &utils.ValidationError{Field: "ratings", Reason: fmt.Sprintf("unknown criterion %q", name)}
		}
		if r.Rating < 1 || r.Rating > 5 {
			return &utils.ValidationError{Field: "ratings", Reason: fmt.Sprintf("%s must be between 1 and 5", name)}
		}
	}
	return nil
}
