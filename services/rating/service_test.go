package rating

import (
	"context"
	"testing"

	"fundi/models"
	"fundi/utils"

	"go.uber.org/zap"
)

type fakeRatingRepo struct {
	ratings map[string]*models.Rating
}

func (r *fakeRatingRepo) Insert(_ context.Context, rating *models.Rating) error {
	stored := *rating
	r.ratings[rating.ID] = &stored
	return nil
}

func (r *fakeRatingRepo) GetByID(_ context.Context, id string) (*models.Rating, error) {
	rt, ok := r.ratings[id]
	if !ok {
		return nil, utils.NewNotFoundError("rating", id)
	}
	out := *rt
	return &out, nil
}

func (r *fakeRatingRepo) Query(_ context.Context, clientID, workerID, bookingID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, rt := range r.ratings {
		if clientID != "" && rt.ClientID != clientID {
			continue
		}
		if workerID != "" && rt.WorkerID != workerID {
			continue
		}
		if bookingID != "" && rt.BookingID != bookingID {
			continue
		}
		out = append(out, *rt)
	}
	return out, nil
}

func (r *fakeRatingRepo) ListIDs(_ context.Context) ([]string, error) {
	var ids []string
	for id := range r.ratings {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeRatingRepo) Update(_ context.Context, id string, fields map[string]any) error {
	rt, ok := r.ratings[id]
	if !ok {
		return utils.NewNotFoundError("rating", id)
	}
	if ratings, ok := fields["ratings"].(map[string]models.IndividualRating); ok {
		rt.Ratings = ratings
	}
	if overall, ok := fields["overallRating"].(*models.IndividualRating); ok {
		rt.OverallRating = overall
	}
	return nil
}

func (r *fakeRatingRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := r.ratings[id]
	delete(r.ratings, id)
	return ok, nil
}

type fakeWorkerRepo struct {
	ratings map[string]float64
}

func (r *fakeWorkerRepo) GetByID(_ context.Context, id string) (*models.Worker, error) {
	return &models.Worker{ID: id}, nil
}

func (r *fakeWorkerRepo) GetBySubservice(_ context.Context, subserviceID string) ([]models.Worker, error) {
	return nil, nil
}

func (r *fakeWorkerRepo) UpdateRating(_ context.Context, id string, rating float64) error {
	r.ratings[id] = rating
	return nil
}

func (r *fakeWorkerRepo) TopRated(_ context.Context, n int) ([]models.Worker, error) {
	return nil, nil
}

func (r *fakeWorkerRepo) Create(_ context.Context, w *models.Worker) error { return nil }

func (r *fakeWorkerRepo) Update(_ context.Context, id string, fields map[string]any) error {
	return nil
}

func (r *fakeWorkerRepo) Delete(_ context.Context, id string) (bool, error) { return false, nil }

func (r *fakeWorkerRepo) ListIDs(_ context.Context) ([]string, error) { return nil, nil }

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (r *fakeBookingRepo) CreateTx(_ context.Context, b *models.Booking) error { return nil }

func (r *fakeBookingRepo) DeleteTx(_ context.Context, id string) (bool, error) { return false, nil }

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NewNotFoundError("booking", id)
	}
	out := *b
	return &out, nil
}

func (r *fakeBookingRepo) Query(_ context.Context, clientID, workerID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ListIDs(_ context.Context) ([]string, error) { return nil, nil }

func (r *fakeBookingRepo) Update(_ context.Context, id string, fields map[string]any) error {
	return nil
}

func (r *fakeBookingRepo) FirstUnratedCompleted(_ context.Context, clientID string) (*models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) SetRated(_ context.Context, id string) error {
	b, ok := r.bookings[id]
	if !ok {
		return utils.NewNotFoundError("booking", id)
	}
	b.HasRated = true
	return nil
}

func newRatingTestService() (*DefaultRatingService, *fakeRatingRepo, *fakeWorkerRepo, *fakeBookingRepo) {
	ratings := &fakeRatingRepo{ratings: map[string]*models.Rating{}}
	workers := &fakeWorkerRepo{ratings: map[string]float64{}}
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"booking-1": {
			ID:       "booking-1",
			ClientID: "client-1",
			WorkerID: "worker-1",
			Status:   models.BookingStatusCompleted,
		},
	}}
	svc := &DefaultRatingService{
		Ratings:  ratings,
		Workers:  workers,
		Bookings: bookings,
		Logger:   zap.NewNop(),
	}
	return svc, ratings, workers, bookings
}

func fullRatingInput() models.RatingInput {
	return models.RatingInput{
		ClientID:  "client-1",
		WorkerID:  "worker-1",
		BookingID: "booking-1",
		Ratings: map[string]models.IndividualRating{
			models.CriterionQuality:     {Rating: 5, Feedback: "clean work"},
			models.CriterionEfficiency:  {Rating: 4},
			models.CriterionReliability: {Rating: 4},
			models.CriterionKnowledge:   {Rating: 5},
			models.CriterionValue:       {Rating: 3},
		},
		OverallFeedback: "would book again",
	}
}

func TestCreateRatingUpdatesWorkerAndBooking(t *testing.T) {
	svc, ratings, workers, bookings := newRatingTestService()

	r, err := svc.Create(context.Background(), fullRatingInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.OverallRating == nil || r.OverallRating.Rating != 4.20 {
		t.Fatalf("overall = %+v, want 4.20", r.OverallRating)
	}
	if r.OverallRating.Feedback != "would book again" {
		t.Errorf("overall feedback = %q", r.OverallRating.Feedback)
	}
	if workers.ratings["worker-1"] != 4.20 {
		t.Errorf("worker rating = %v, want 4.20", workers.ratings["worker-1"])
	}
	if !bookings.bookings["booking-1"].HasRated {
		t.Error("booking not marked rated")
	}
	if _, ok := ratings.ratings[r.ID]; !ok {
		t.Error("rating not persisted")
	}
}

func TestCreateRatingRejectsAlreadyRatedBooking(t *testing.T) {
	svc, _, _, bookings := newRatingTestService()
	bookings.bookings["booking-1"].HasRated = true

	_, err := svc.Create(context.Background(), fullRatingInput())
	if !utils.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestCreateRatingRejectsMismatchedBooking(t *testing.T) {
	svc, _, _, _ := newRatingTestService()

	input := fullRatingInput()
	input.WorkerID = "worker-2"
	_, err := svc.Create(context.Background(), input)
	if !utils.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestCreateRatingRejectsOutOfRangeScore(t *testing.T) {
	svc, _, _, _ := newRatingTestService()

	input := fullRatingInput()
	input.Ratings[models.CriterionQuality] = models.IndividualRating{Rating: 6}
	_, err := svc.Create(context.Background(), input)
	if !utils.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestUpdateRatingRecomputesOverall(t *testing.T) {
	svc, ratings, workers, _ := newRatingTestService()

	created, err := svc.Create(context.Background(), fullRatingInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	update := fullRatingInput()
	update.Ratings = map[string]models.IndividualRating{
		models.CriterionQuality:     {Rating: 2},
		models.CriterionEfficiency:  {Rating: 2},
		models.CriterionReliability: {Rating: 2},
		models.CriterionKnowledge:   {Rating: 2},
		models.CriterionValue:       {Rating: 2},
	}
	updated, err := svc.Update(context.Background(), created.ID, update)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.OverallRating.Rating != 2 {
		t.Errorf("overall = %v, want 2", updated.OverallRating.Rating)
	}
	if workers.ratings["worker-1"] != 2 {
		t.Errorf("worker rating = %v, want 2 after update", workers.ratings["worker-1"])
	}
	if ratings.ratings[created.ID].OverallRating.Rating != 2 {
		t.Errorf("stored overall = %v, want 2", ratings.ratings[created.ID].OverallRating.Rating)
	}
}
