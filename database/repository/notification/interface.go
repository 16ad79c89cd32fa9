package notificationRepo

import (
	"context"

	"fundi/models"
)

// NotificationRepository defines data access for the notifications
// collection, which stores every work-alert protocol document. Cleanup
// operations are idempotent: the protocol's first-writer-wins semantics rely
// on deleting or pruning an already-removed document being a no-op.
type NotificationRepository interface {
	// Insert persists a new notification document.
	Insert(ctx context.Context, notification *models.Notification) error
	// GetByID retrieves a notification by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	// PullReceiver removes a receiver id from a notification's receiverIds.
	// Pulling an absent id, or from an absent document, is a no-op.
	PullReceiver(ctx context.Context, id, receiverID string) error
	// Delete removes a notification. Returns false when nothing was deleted.
	Delete(ctx context.Context, id string) (bool, error)
	// QueryByReceiver returns all notifications addressed to the given id.
	QueryByReceiver(ctx context.Context, receiverID string) ([]models.Notification, error)
	// ListIDs returns every notification id.
	ListIDs(ctx context.Context) ([]string, error)
	// Update applies a partial update and bumps updatedAt.
	Update(ctx context.Context, id string, fields map[string]any) error
}
