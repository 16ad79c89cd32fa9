package worker

import (
	"context"
	"fmt"

	workerRepo "fundi/database/repository/worker"
	"fundi/models"
	"fundi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WorkerService manages worker profiles. Availability state is owned by the
// booking transactions and is not writable here.
type WorkerService interface {
	Create(ctx context.Context, input models.Worker) (*models.Worker, error)
	Get(ctx context.Context, id string) (*models.Worker, error)
	BySubservice(ctx context.Context, subserviceID string) ([]models.Worker, error)
	TopRated(ctx context.Context, n int) ([]models.Worker, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (bool, error)
}

// DefaultWorkerService is the production implementation.
type DefaultWorkerService struct {
	Workers workerRepo.WorkerRepository
	Logger  *zap.Logger
}

// workerWriteGuard lists fields a profile update must not touch: identity and
// the booking-owned availability pair.
var workerWriteGuard = map[string]bool{
	"id":          true,
	"waitingList": true,
	"available":   true,
	"rating":      true,
	"timestamps":  true,
}

func (s *DefaultWorkerService) Create(ctx context.Context, input models.Worker) (*models.Worker, error) {
	switch {
	case input.Name == "":
		return nil, utils.NewRequiredFieldError("name")
	case input.Email == "":
		return nil, utils.NewRequiredFieldError("email")
	case len(input.SubserviceIDs) == 0:
		return nil, utils.NewRequiredFieldError("subserviceIds")
	}

	input.ID = uuid.NewString()
	input.WaitingList = 0
	input.Available = true
	input.Rating = 0
	input.Timestamps = models.NewTimestamps()

	if err := s.Workers.Create(ctx, &input); err != nil {
		return nil, fmt.Errorf("persist worker: %w", err)
	}
	s.Logger.Info("worker created", zap.String("workerId", input.ID))
	return &input, nil
}

func (s *DefaultWorkerService) Get(ctx context.Context, id string) (*models.Worker, error) {
	return s.Workers.GetByID(ctx, id)
}

func (s *DefaultWorkerService) BySubservice(ctx context.Context, subserviceID string) ([]models.Worker, error) {
	if subserviceID == "" {
		return nil, utils.NewRequiredFieldError("subserviceId")
	}
	return s.Workers.GetBySubservice(ctx, subserviceID)
}

func (s *DefaultWorkerService) TopRated(ctx context.Context, n int) ([]models.Worker, error) {
	if n <= 0 {
		return nil, &utils.ValidationError{Field: "n", Reason: "must be greater than zero"}
	}
	return s.Workers.TopRated(ctx, n)
}

func (s *DefaultWorkerService) ListIDs(ctx context.Context) ([]string, error) {
	return s.Workers.ListIDs(ctx)
}

func (s *DefaultWorkerService) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return &utils.ValidationError{Field: "fields", Reason: "no fields to update"}
	}
	for name := range fields {
		if workerWriteGuard[name] {
			return &utils.ValidationError{Field: name, Reason: "cannot be updated"}
		}
	}
	if _, err := s.Workers.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Workers.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update worker %s: %w", id, err)
	}
	return nil
}

func (s *DefaultWorkerService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, utils.NewRequiredFieldError("id")
	}
	return s.Workers.Delete(ctx, id)
}
