package workalert

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fundi/models"
	"fundi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAlert validates the input, snapshots the workers currently registered
// for the subservice into receiverIds, pushes to each of them, and persists
// the alert. Push delivery is best-effort: a worker whose push fails stays in
// the snapshot and can still respond through the API.
func (s *DefaultWorkAlertService) CreateAlert(ctx context.Context, input models.WorkAlertInput) (*models.Notification, error) {
	if err := validateAlertInput(input); err != nil {
		return nil, err
	}

	locationName := s.resolveLocationName(ctx, input.Location)

	workers, err := s.Workers.GetBySubservice(ctx, input.SubserviceID)
	if err != nil {
		return nil, fmt.Errorf("fetch workers for subservice %s: %w", input.SubserviceID, err)
	}
	receiverIDs := make([]string, 0, len(workers))
	for _, w := range workers {
		receiverIDs = append(receiverIDs, w.ID)
	}

	id := uuid.NewString()
	alert := &models.Notification{
		NotificationBase: models.NotificationBase{
			ID:          id,
			SenderID:    input.SenderID,
			ReceiverIDs: receiverIDs,
			Type:        models.NotificationTypeWorkAlert,
			Timestamps:  models.NewTimestamps(),
		},
		WorkAlertID:  id,
		SubserviceID: input.SubserviceID,
		Description:  input.Description,
		Images:       input.Images,
		Location:     input.Location,
		LocationName: locationName,
	}

	s.fanOut(ctx, alert, workers)

	if err := s.Notifications.Insert(ctx, alert); err != nil {
		return nil, fmt.Errorf("persist work alert: %w", err)
	}
	s.Logger.Info("work alert created",
		zap.String("workAlertId", id),
		zap.String("subserviceId", input.SubserviceID),
		zap.Int("receivers", len(receiverIDs)))
	return alert, nil
}

// RejectAlert releases the sender's slot on the alert. Rejecting an alert
// that was already confirmed away, or rejecting twice, is a no-op.
func (s *DefaultWorkAlertService) RejectAlert(ctx context.Context, input models.WorkAlertRejectionInput) error {
	if err := validateAlertRejection(input); err != nil {
		return err
	}
	if err := s.Notifications.PullReceiver(ctx, input.WorkAlertID, input.SenderID); err != nil {
		return fmt.Errorf("release worker %s from alert %s: %w", input.SenderID, input.WorkAlertID, err)
	}
	s.Logger.Info("work alert rejected",
		zap.String("workAlertId", input.WorkAlertID),
		zap.String("workerId", input.SenderID))
	return nil
}

// CreateApprovalRequest forwards a worker's acceptance of an alert to the
// client named in receiverIds. The referenced client must exist; the push to
// them is best-effort.
func (s *DefaultWorkAlertService) CreateApprovalRequest(ctx context.Context, input models.WorkApprovalRequestInput) (*models.Notification, error) {
	scheduledAt, err := validateApprovalInput(input)
	if err != nil {
		return nil, err
	}

	clientID := input.ReceiverIDs[0]
	client, err := s.Clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("fetch client %s: %w", clientID, err)
	}

	locationName := input.LocationName
	if locationName == "" {
		locationName = s.resolveLocationName(ctx, input.Location)
	}

	id := uuid.NewString()
	request := &models.Notification{
		NotificationBase: models.NotificationBase{
			ID:          id,
			SenderID:    input.SenderID,
			ReceiverIDs: []string{clientID},
			Type:        models.NotificationTypeWorkApprovalRequest,
			Timestamps:  models.NewTimestamps(),
		},
		WorkAlertID:           input.WorkAlertID,
		WorkApprovalRequestID: id,
		SubserviceID:          input.SubserviceID,
		Description:           input.Description,
		Location:              input.Location,
		LocationName:          locationName,
		DateTime:              &scheduledAt,
		RatePerUnit:           input.RatePerUnit,
		Unit:                  input.Unit,
	}

	s.send(ctx, client.FCMToken, "Work approval request",
		"A worker has accepted your work alert", request)

	if err := s.Notifications.Insert(ctx, request); err != nil {
		return nil, fmt.Errorf("persist work approval request: %w", err)
	}
	s.Logger.Info("work approval request created",
		zap.String("workApprovalRequestId", id),
		zap.String("workAlertId", input.WorkAlertID),
		zap.String("clientId", clientID))
	return request, nil
}

// ConfirmWork is the client accepting a worker's approval request. The
// booking is created first, transactionally; only once it exists are the
// worker notified and the transient alert and request documents removed.
// Cleanup is idempotent so a racing confirmation or rejection that lost
// simply finds nothing left to delete.
func (s *DefaultWorkAlertService) ConfirmWork(ctx context.Context, input models.WorkConfirmationInput) (*models.Booking, error) {
	if err := validateConfirmationInput(input); err != nil {
		return nil, err
	}
	workerID := input.ReceiverIDs[0]

	booked, err := s.Booking.Create(ctx, models.BookingInput{
		ClientID:     input.SenderID,
		WorkerID:     workerID,
		SubserviceID: input.SubserviceID,
		DateTime:     input.DateTime,
		RatePerUnit:  input.RatePerUnit,
		Unit:         input.Unit,
		Status:       models.BookingStatusPending,
		Location:     input.Location,
	})
	if err != nil {
		return nil, err
	}

	confirmation := &models.Notification{
		NotificationBase: models.NotificationBase{
			ID:          uuid.NewString(),
			SenderID:    input.SenderID,
			ReceiverIDs: []string{workerID},
			Type:        models.NotificationTypeWorkConfirmation,
			Timestamps:  models.NewTimestamps(),
		},
		WorkAlertID:           input.WorkAlertID,
		WorkApprovalRequestID: input.WorkApprovalRequestID,
	}
	s.notifyWorker(ctx, workerID, "Work confirmed",
		"The client has confirmed your work request", confirmation)

	s.deleteTransient(ctx, "work approval request", input.WorkApprovalRequestID)
	s.deleteTransient(ctx, "work alert", input.WorkAlertID)

	s.Logger.Info("work confirmed",
		zap.String("workAlertId", input.WorkAlertID),
		zap.String("workApprovalRequestId", input.WorkApprovalRequestID),
		zap.String("bookingId", booked.ID))
	return booked, nil
}

// RejectApprovalRequest is the client declining a worker's acceptance. The
// request is deleted and the worker's slot on the alert is released, leaving
// the alert open for the remaining receivers.
func (s *DefaultWorkAlertService) RejectApprovalRequest(ctx context.Context, input models.WorkRejectionInput) error {
	if err := validateRejectionInput(input); err != nil {
		return err
	}
	workerID := input.ReceiverIDs[0]

	rejection := &models.Notification{
		NotificationBase: models.NotificationBase{
			ID:          uuid.NewString(),
			SenderID:    input.SenderID,
			ReceiverIDs: []string{workerID},
			Type:        models.NotificationTypeWorkRejection,
			Timestamps:  models.NewTimestamps(),
		},
		WorkAlertID:           input.WorkAlertID,
		WorkApprovalRequestID: input.WorkApprovalRequestID,
	}
	s.notifyWorker(ctx, workerID, "Work request declined",
		"The client has declined your work request", rejection)

	s.deleteTransient(ctx, "work approval request", input.WorkApprovalRequestID)

	if err := s.Notifications.PullReceiver(ctx, input.WorkAlertID, workerID); err != nil {
		return fmt.Errorf("release worker %s from alert %s: %w", workerID, input.WorkAlertID, err)
	}
	s.Logger.Info("work approval request rejected",
		zap.String("workApprovalRequestId", input.WorkApprovalRequestID),
		zap.String("workerId", workerID))
	return nil
}

// fanOut pushes the alert to every worker in the snapshot concurrently.
// Failures are logged and swallowed; the join exists only so the outcome is
// logged before the request returns.
func (s *DefaultWorkAlertService) fanOut(ctx context.Context, alert *models.Notification, workers []models.Worker) {
	data := s.payload(alert)
	var wg sync.WaitGroup
	for _, w := range workers {
		if w.FCMToken == "" {
			s.Logger.Debug("skipping worker without fcm token", zap.String("workerId", w.ID))
			continue
		}
		wg.Add(1)
		go func(workerID, token string) {
			defer wg.Done()
			if _, err := s.Push.SendToToken(ctx, token, "New work alert", alert.Description, data); err != nil {
				s.Logger.Warn("work alert push failed",
					zap.String("workAlertId", alert.ID),
					zap.String("workerId", workerID),
					zap.Error(err))
			}
		}(w.ID, w.FCMToken)
	}
	wg.Wait()
}

// notifyWorker looks up the worker's device token and sends a best-effort
// push. A missing worker or a failed send only logs.
func (s *DefaultWorkAlertService) notifyWorker(ctx context.Context, workerID, title, body string, n *models.Notification) {
	worker, err := s.Workers.GetByID(ctx, workerID)
	if err != nil {
		s.Logger.Warn("skipping push, worker lookup failed",
			zap.String("workerId", workerID), zap.Error(err))
		return
	}
	s.send(ctx, worker.FCMToken, title, body, n)
}

func (s *DefaultWorkAlertService) send(ctx context.Context, token, title, body string, n *models.Notification) {
	if token == "" {
		s.Logger.Debug("skipping push, no fcm token", zap.String("notificationId", n.ID))
		return
	}
	if _, err := s.Push.SendToToken(ctx, token, title, body, s.payload(n)); err != nil {
		s.Logger.Warn("push failed",
			zap.String("notificationId", n.ID),
			zap.String("type", n.Type),
			zap.Error(err))
	}
}

// payload embeds the full notification document in the push data so clients
// can render it without a follow-up fetch.
func (s *DefaultWorkAlertService) payload(n *models.Notification) map[string]string {
	raw, err := json.Marshal(n)
	if err != nil {
		s.Logger.Warn("marshal notification payload", zap.String("notificationId", n.ID), zap.Error(err))
		return map[string]string{"type": n.Type, "id": n.ID}
	}
	return map[string]string{"type": n.Type, "notification": string(raw)}
}

// deleteTransient removes a protocol document once the protocol has moved
// past it. Another transition may have already cleaned it up, so an absent
// document only logs.
func (s *DefaultWorkAlertService) deleteTransient(ctx context.Context, kind, id string) {
	found, err := s.Notifications.Delete(ctx, id)
	if err != nil {
		s.Logger.Error("delete "+kind+" failed", zap.String("id", id), zap.Error(err))
		return
	}
	if !found {
		s.Logger.Info(kind+" already removed", zap.String("id", id))
	}
}

func (s *DefaultWorkAlertService) resolveLocationName(ctx context.Context, loc *models.Location) string {
	if loc == nil {
		return ""
	}
	name, err := s.Geocoder.LocationNameFromCoordinates(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.Logger.Warn("reverse geocode failed",
			zap.Float64("latitude", loc.Latitude),
			zap.Float64("longitude", loc.Longitude),
			zap.Error(err))
		return ""
	}
	return name
}

// GetNotifications returns everything currently addressed to the given
// client or worker id.
func (s *DefaultWorkAlertService) GetNotifications(ctx context.Context, receiverID string) ([]models.Notification, error) {
	if receiverID == "" {
		return nil, utils.NewRequiredFieldError("receiverId")
	}
	return s.Notifications.QueryByReceiver(ctx, receiverID)
}

func (s *DefaultWorkAlertService) ListNotificationIDs(ctx context.Context) ([]string, error) {
	return s.Notifications.ListIDs(ctx)
}

func (s *DefaultWorkAlertService) GetWorkAlert(ctx context.Context, id string) (*models.Notification, error) {
	return s.getTyped(ctx, id, models.NotificationTypeWorkAlert, "work alert")
}

func (s *DefaultWorkAlertService) GetWorkApprovalRequest(ctx context.Context, id string) (*models.Notification, error) {
	return s.getTyped(ctx, id, models.NotificationTypeWorkApprovalRequest, "work approval request")
}

// getTyped fetches a notification and checks its discriminant; asking for an
// alert by a request's id (or vice versa) reads as not-found.
func (s *DefaultWorkAlertService) getTyped(ctx context.Context, id, wantType, resource string) (*models.Notification, error) {
	n, err := s.Notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Type != wantType {
		return nil, utils.NewNotFoundError(resource, id)
	}
	return n, nil
}

func (s *DefaultWorkAlertService) UpdateWorkAlert(ctx context.Context, id string, fields map[string]any) error {
	return s.updateTyped(ctx, id, models.NotificationTypeWorkAlert, "work alert", fields, updatableAlertFields)
}

func (s *DefaultWorkAlertService) UpdateWorkApprovalRequest(ctx context.Context, id string, fields map[string]any) error {
	return s.updateTyped(ctx, id, models.NotificationTypeWorkApprovalRequest, "work approval request", fields, updatableApprovalFields)
}

func (s *DefaultWorkAlertService) updateTyped(ctx context.Context, id, wantType, resource string, fields map[string]any, allowed map[string]bool) error {
	validated, err := validateNotificationUpdate(fields, allowed)
	if err != nil {
		return err
	}
	if _, err := s.getTyped(ctx, id, wantType, resource); err != nil {
		return err
	}
	if err := s.Notifications.Update(ctx, id, validated); err != nil {
		return fmt.Errorf("update %s %s: %w", resource, id, err)
	}
	return nil
}

// DeleteNotification removes any notification by id, regardless of type.
func (s *DefaultWorkAlertService) DeleteNotification(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, utils.NewRequiredFieldError("id")
	}
	return s.Notifications.Delete(ctx, id)
}
