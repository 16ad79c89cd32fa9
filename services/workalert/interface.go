package workalert

import (
	"context"

	clientRepo "fundi/database/repository/client"
	notificationRepo "fundi/database/repository/notification"
	workerRepo "fundi/database/repository/worker"
	"fundi/models"
	"fundi/services/booking"
	"fundi/services/location"
	"fundi/services/push"

	"go.uber.org/zap"
)

// WorkAlertService drives the immediate-work protocol:
//
//	alert --> approval request --> confirmation (terminal, produces a booking)
//	                           \-> rejection (terminal for the request,
//	                                releases the worker's slot on the alert)
//
// An alert stays open for its remaining receivers until a confirmation wins;
// the first confirmation deletes the alert and its approval request, and any
// racing transition referencing those documents afterwards is a no-op.
type WorkAlertService interface {
	// CreateAlert broadcasts an immediate work alert to every worker
	// registered for the subservice at creation time.
	CreateAlert(ctx context.Context, input models.WorkAlertInput) (*models.Notification, error)
	// RejectAlert releases one worker's slot on an open alert.
	RejectAlert(ctx context.Context, input models.WorkAlertRejectionInput) error
	// CreateApprovalRequest forwards one worker's acceptance of an alert to
	// the client for sign-off.
	CreateApprovalRequest(ctx context.Context, input models.WorkApprovalRequestInput) (*models.Notification, error)
	// ConfirmWork is the terminal success path: it creates the booking,
	// notifies the worker, and cleans up the protocol's transient documents.
	ConfirmWork(ctx context.Context, input models.WorkConfirmationInput) (*models.Booking, error)
	// RejectApprovalRequest is the client declining a worker's acceptance.
	RejectApprovalRequest(ctx context.Context, input models.WorkRejectionInput) error

	// GetNotifications returns all notifications addressed to the given id.
	GetNotifications(ctx context.Context, receiverID string) ([]models.Notification, error)
	// ListNotificationIDs returns every notification id.
	ListNotificationIDs(ctx context.Context) ([]string, error)
	// GetWorkAlert retrieves a work alert by id.
	GetWorkAlert(ctx context.Context, id string) (*models.Notification, error)
	// GetWorkApprovalRequest retrieves a work approval request by id.
	GetWorkApprovalRequest(ctx context.Context, id string) (*models.Notification, error)
	// UpdateWorkAlert applies a validated partial update to a work alert.
	UpdateWorkAlert(ctx context.Context, id string, fields map[string]any) error
	// UpdateWorkApprovalRequest applies a validated partial update to a
	// work approval request.
	UpdateWorkApprovalRequest(ctx context.Context, id string, fields map[string]any) error
	// DeleteNotification removes any notification. Returns false when it
	// was already gone.
	DeleteNotification(ctx context.Context, id string) (bool, error)
}

// DefaultWorkAlertService is the production implementation.
type DefaultWorkAlertService struct {
	Notifications notificationRepo.NotificationRepository
	Workers       workerRepo.WorkerRepository
	Clients       clientRepo.ClientRepository
	Booking       booking.BookingService
	Geocoder      location.Geocoder
	Push          push.Service
	Logger        *zap.Logger
}
