package client

import (
	"context"
	"fmt"

	clientRepo "fundi/database/repository/client"
	"fundi/models"
	"fundi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientService manages client profiles.
type ClientService interface {
	Create(ctx context.Context, input models.Client) (*models.Client, error)
	Get(ctx context.Context, id string) (*models.Client, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) (bool, error)
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Clients clientRepo.ClientRepository
	Logger  *zap.Logger
}

var clientWriteGuard = map[string]bool{
	"id":         true,
	"timestamps": true,
}

func (s *DefaultClientService) Create(ctx context.Context, input models.Client) (*models.Client, error) {
	switch {
	case input.Name == "":
		return nil, utils.NewRequiredFieldError("name")
	case input.Email == "":
		return nil, utils.NewRequiredFieldError("email")
	}

	input.ID = uuid.NewString()
	input.Timestamps = models.NewTimestamps()

	if err := s.Clients.Create(ctx, &input); err != nil {
		return nil, fmt.Errorf("persist client: %w", err)
	}
	s.Logger.Info("client created", zap.String("clientId", input.ID))
	return &input, nil
}

func (s *DefaultClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.Clients.GetByID(ctx, id)
}

func (s *DefaultClientService) ListIDs(ctx context.Context) ([]string, error) {
	return s.Clients.ListIDs(ctx)
}

func (s *DefaultClientService) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return &utils.ValidationError{Field: "fields", Reason: "no fields to update"}
	}
	for name := range fields {
		if clientWriteGuard[name] {
			return &utils.ValidationError{Field: name, Reason: "cannot be updated"}
		}
	}
	if _, err := s.Clients.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Clients.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update client %s: %w", id, err)
	}
	return nil
}

func (s *DefaultClientService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, utils.NewRequiredFieldError("id")
	}
	return s.Clients.Delete(ctx, id)
}
