package workalert

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fundi/models"
	"fundi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeNotificationRepo struct {
	mu  sync.Mutex
	all map[string]*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{all: map[string]*models.Notification{}}
}

func (r *fakeNotificationRepo) Insert(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *n
	r.all[n.ID] = &stored
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.all[id]
	if !ok {
		return nil, utils.NewNotFoundError("notification", id)
	}
	out := *n
	return &out, nil
}

func (r *fakeNotificationRepo) PullReceiver(_ context.Context, id, receiverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.all[id]
	if !ok {
		return nil
	}
	kept := n.ReceiverIDs[:0]
	for _, rid := range n.ReceiverIDs {
		if rid != receiverID {
			kept = append(kept, rid)
		}
	}
	n.ReceiverIDs = kept
	return nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.all[id]
	delete(r.all, id)
	return ok, nil
}

func (r *fakeNotificationRepo) QueryByReceiver(_ context.Context, receiverID string) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.all {
		for _, rid := range n.ReceiverIDs {
			if rid == receiverID {
				out = append(out, *n)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) ListIDs(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id := range r.all {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.all[id]
	if !ok {
		return utils.NewNotFoundError("notification", id)
	}
	if desc, ok := fields["description"].(string); ok {
		n.Description = desc
	}
	return nil
}

type fakeWorkerRepo struct {
	workers map[string]*models.Worker
}

func (r *fakeWorkerRepo) GetByID(_ context.Context, id string) (*models.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, utils.NewNotFoundError("worker", id)
	}
	return w, nil
}

func (r *fakeWorkerRepo) GetBySubservice(_ context.Context, subserviceID string) ([]models.Worker, error) {
	var out []models.Worker
	for _, w := range r.workers {
		for _, id := range w.SubserviceIDs {
			if id == subserviceID {
				out = append(out, *w)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeWorkerRepo) UpdateRating(_ context.Context, id string, rating float64) error {
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

type fakeClientRepo struct {
	clients map[string]*models.Client
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, utils.NewNotFoundError("client", id)
	}
	return c, nil
}

func (r *fakeClientRepo) Create(_ context.Context, c *models.Client) error { return nil }

func (r *fakeClientRepo) Update(_ context.Context, id string, fields map[string]any) error {
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) (bool, error) { return false, nil }

func (r *fakeClientRepo) ListIDs(_ context.Context) ([]string, error) { return nil, nil }

// fakeBookingService records the inputs given to Create and returns a
// booking built from them.
type fakeBookingService struct {
	created []models.BookingInput
	err     error
}

func (s *fakeBookingService) Create(_ context.Context, input models.BookingInput) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, input)
	return &models.Booking{
		ID:       uuid.NewString(),
		ClientID: input.ClientID,
		WorkerID: input.WorkerID,
		Status:   input.Status,
	}, nil
}

func (s *fakeBookingService) Get(_ context.Context, id string) (*models.Booking, error) {
	return nil, nil
}

func (s *fakeBookingService) List(_ context.Context, clientID, workerID string) (*models.CategorizedBookings, error) {
	return nil, nil
}

func (s *fakeBookingService) ListIDs(_ context.Context) ([]string, error) { return nil, nil }

func (s *fakeBookingService) Update(_ context.Context, id string, fields map[string]any) error {
	return nil
}

func (s *fakeBookingService) Delete(_ context.Context, id string) (bool, error) {
	return false, nil
}

func (s *fakeBookingService) UnratedCompletedWork(_ context.Context, clientID string) (*models.Booking, error) {
	return nil, nil
}

// fakePush records every attempted token and fails the ones listed in fail.
type fakePush struct {
	mu   sync.Mutex
	sent []string
	fail map[string]bool
}

func (p *fakePush) SendToToken(_ context.Context, token, title, body string, data map[string]string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, token)
	if p.fail[token] {
		return "", errors.New("fcm unavailable")
	}
	return "msg-" + token, nil
}

func (p *fakePush) tokens() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.sent...)
}

type stubGeocoder struct {
	name string
	err  error
}

func (g *stubGeocoder) LocationNameFromCoordinates(_ context.Context, lat, lng float64) (string, error) {
	return g.name, g.err
}

func (g *stubGeocoder) LocationNameFromPostalCode(_ context.Context, code string) (string, error) {
	return g.name, g.err
}

type testEnv struct {
	svc           *DefaultWorkAlertService
	notifications *fakeNotificationRepo
	booking       *fakeBookingService
	push          *fakePush
}

func newTestEnv() *testEnv {
	notifications := newFakeNotificationRepo()
	bookingSvc := &fakeBookingService{}
	pushSvc := &fakePush{fail: map[string]bool{}}
	svc := &DefaultWorkAlertService{
		Notifications: notifications,
		Workers: &fakeWorkerRepo{workers: map[string]*models.Worker{
			"worker-1": {ID: "worker-1", FCMToken: "tok-1", SubserviceIDs: []string{"subservice-1"}},
			"worker-2": {ID: "worker-2", FCMToken: "tok-2", SubserviceIDs: []string{"subservice-1"}},
			"worker-3": {ID: "worker-3", SubserviceIDs: []string{"subservice-1"}},
		}},
		Clients: &fakeClientRepo{clients: map[string]*models.Client{
			"client-1": {ID: "client-1", Name: "Asha Mwangi", FCMToken: "tok-client"},
		}},
		Booking:  bookingSvc,
		Geocoder: &stubGeocoder{name: "Nakuru"},
		Push:     pushSvc,
		Logger:   zap.NewNop(),
	}
	return &testEnv{svc: svc, notifications: notifications, booking: bookingSvc, push: pushSvc}
}

func alertInput() models.WorkAlertInput {
	return models.WorkAlertInput{
		SenderID:     "client-1",
		SubserviceID: "subservice-1",
		Description:  "burst pipe in the kitchen",
		Location:     &models.Location{Latitude: -0.3031, Longitude: 36.0800},
	}
}

func receiverSet(n *models.Notification) map[string]bool {
	set := map[string]bool{}
	for _, id := range n.ReceiverIDs {
		set[id] = true
	}
	return set
}

func TestCreateAlertSnapshotsReceiversDespitePushFailures(t *testing.T) {
	env := newTestEnv()
	env.push.fail["tok-2"] = true

	alert, err := env.svc.CreateAlert(context.Background(), alertInput())
	if err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}

	// All three registered workers are in the snapshot, including the one
	// whose push failed and the one without a device token.
	got := receiverSet(alert)
	for _, id := range []string{"worker-1", "worker-2", "worker-3"} {
		if !got[id] {
			t.Errorf("receiver %s missing from snapshot", id)
		}
	}
	if alert.WorkAlertID != alert.ID {
		t.Errorf("workAlertId = %q, want self-reference %q", alert.WorkAlertID, alert.ID)
	}
	if alert.LocationName != "Nakuru" {
		t.Errorf("locationName = %q, want Nakuru", alert.LocationName)
	}

	if len(env.push.tokens()) != 2 {
		t.Errorf("push attempts = %v, want tok-1 and tok-2 only", env.push.tokens())
	}
	if _, err := env.notifications.GetByID(context.Background(), alert.ID); err != nil {
		t.Errorf("alert not persisted: %v", err)
	}
}

func TestRejectAlertPrunesOnlyTheSender(t *testing.T) {
	env := newTestEnv()
	alert, err := env.svc.CreateAlert(context.Background(), alertInput())
	if err != nil {
		t.Fatalf("CreateAlert: %v", err)
	}

	reject := models.WorkAlertRejectionInput{SenderID: "worker-1", WorkAlertID: alert.ID}
	if err := env.svc.RejectAlert(context.Background(), reject); err != nil {
		t.Fatalf("RejectAlert: %v", err)
	}
	stored, err := env.notifications.GetByID(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("alert gone after reject: %v", err)
	}
	got := receiverSet(stored)
	if got["worker-1"] || !got["worker-2"] || !got["worker-3"] {
		t.Errorf("receivers after reject = %v", stored.ReceiverIDs)
	}

	// Rejecting again, or rejecting a deleted alert, is a no-op.
	if err := env.svc.RejectAlert(context.Background(), reject); err != nil {
		t.Errorf("repeat reject: %v", err)
	}
	reject.WorkAlertID = "gone"
	if err := env.svc.RejectAlert(context.Background(), reject); err != nil {
		t.Errorf("reject of missing alert: %v", err)
	}
}

func approvalInput(alertID string) models.WorkApprovalRequestInput {
	return models.WorkApprovalRequestInput{
		SenderID:     "worker-1",
		ReceiverIDs:  []string{"client-1"},
		WorkAlertID:  alertID,
		SubserviceID: "subservice-1",
		Description:  "burst pipe in the kitchen",
		Location:     &models.Location{Latitude: -0.3031, Longitude: 36.0800},
		LocationName: "Nakuru",
		DateTime:     "2026-09-14T10:00:00Z",
		RatePerUnit:  500,
		Unit:         "hour",
	}
}

func TestCreateApprovalRequestTargetsClient(t *testing.T) {
	env := newTestEnv()
	alert, _ := env.svc.CreateAlert(context.Background(), alertInput())
	env.push.sent = nil

	request, err := env.svc.CreateApprovalRequest(context.Background(), approvalInput(alert.ID))
	if err != nil {
		t.Fatalf("CreateApprovalRequest: %v", err)
	}
	if len(request.ReceiverIDs) != 1 || request.ReceiverIDs[0] != "client-1" {
		t.Errorf("receivers = %v, want exactly the client", request.ReceiverIDs)
	}
	if request.WorkApprovalRequestID != request.ID {
		t.Errorf("workApprovalRequestId = %q, want self-reference %q", request.WorkApprovalRequestID, request.ID)
	}
	if request.DateTime == nil {
		t.Error("dateTime not parsed onto the request")
	}
	if tokens := env.push.tokens(); len(tokens) != 1 || tokens[0] != "tok-client" {
		t.Errorf("push tokens = %v, want [tok-client]", tokens)
	}
}

func TestCreateApprovalRequestUnknownClientFails(t *testing.T) {
	env := newTestEnv()
	alert, _ := env.svc.CreateAlert(context.Background(), alertInput())

	input := approvalInput(alert.ID)
	input.ReceiverIDs = []string{"no-such-client"}
	_, err := env.svc.CreateApprovalRequest(context.Background(), input)
	if !utils.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
	if ids, _ := env.notifications.ListIDs(context.Background()); len(ids) != 1 {
		t.Errorf("notifications = %d, want only the alert", len(ids))
	}
}

func TestConfirmWorkCreatesBookingAndCleansUp(t *testing.T) {
	env := newTestEnv()
	alert, _ := env.svc.CreateAlert(context.Background(), alertInput())
	request, err := env.svc.CreateApprovalRequest(context.Background(), approvalInput(alert.ID))
	if err != nil {
		t.Fatalf("CreateApprovalRequest: %v", err)
	}

	confirm := models.WorkConfirmationInput{
		SenderID:              "client-1",
		ReceiverIDs:           []string{"worker-1"},
		WorkAlertID:           alert.ID,
		WorkApprovalRequestID: request.ID,
		SubserviceID:          "subservice-1",
		Location:              &models.Location{Latitude: -0.3031, Longitude: 36.0800},
		DateTime:              "2026-09-14T10:00:00Z",
		RatePerUnit:           500,
		Unit:                  "hour",
	}
	booked, err := env.svc.ConfirmWork(context.Background(), confirm)
	if err != nil {
		t.Fatalf("ConfirmWork: %v", err)
	}
	if booked.Status != models.BookingStatusPending {
		t.Errorf("booking status = %q, want Pending", booked.Status)
	}
	if booked.ClientID != "client-1" || booked.WorkerID != "worker-1" {
		t.Errorf("booking parties = %s/%s", booked.ClientID, booked.WorkerID)
	}

	if _, err := env.notifications.GetByID(context.Background(), alert.ID); !utils.IsNotFound(err) {
		t.Error("alert not cleaned up after confirmation")
	}
	if _, err := env.notifications.GetByID(context.Background(), request.ID); !utils.IsNotFound(err) {
		t.Error("approval request not cleaned up after confirmation")
	}

	// A racing confirmation that lost finds nothing to clean up; that must
	// not surface as an error.
	if _, err := env.svc.ConfirmWork(context.Background(), confirm); err != nil {
		t.Errorf("second confirm: %v", err)
	}
}

func TestConfirmWorkBookingFailurePreservesProtocolState(t *testing.T) {
	env := newTestEnv()
	alert, _ := env.svc.CreateAlert(context.Background(), alertInput())
	request, _ := env.svc.CreateApprovalRequest(context.Background(), approvalInput(alert.ID))
	env.booking.err = errors.New("transaction aborted")

	_, err := env.svc.ConfirmWork(context.Background(), models.WorkConfirmationInput{
		SenderID:              "client-1",
		ReceiverIDs:           []string{"worker-1"},
		WorkAlertID:           alert.ID,
		WorkApprovalRequestID: request.ID,
		SubserviceID:          "subservice-1",
		DateTime:              "2026-09-14T10:00:00Z",
		RatePerUnit:           500,
		Unit:                  "hour",
	})
	if err == nil {
		t.Fatal("ConfirmWork succeeded despite booking failure")
	}
	if _, err := env.notifications.GetByID(context.Background(), alert.ID); err != nil {
		t.Error("alert removed although no booking was created")
	}
	if _, err := env.notifications.GetByID(context.Background(), request.ID); err != nil {
		t.Error("approval request removed although no booking was created")
	}
}

func TestRejectApprovalRequestReleasesWorkerAndKeepsAlert(t *testing.T) {
	env := newTestEnv()
	alert, _ := env.svc.CreateAlert(context.Background(), alertInput())
	request, _ := env.svc.CreateApprovalRequest(context.Background(), approvalInput(alert.ID))

	err := env.svc.RejectApprovalRequest(context.Background(), models.WorkRejectionInput{
		SenderID:              "client-1",
		ReceiverIDs:           []string{"worker-1"},
		WorkAlertID:           alert.ID,
		WorkApprovalRequestID: request.ID,
	})
	if err != nil {
		t.Fatalf("RejectApprovalRequest: %v", err)
	}

	if _, err := env.notifications.GetByID(context.Background(), request.ID); !utils.IsNotFound(err) {
		t.Error("approval request survives rejection")
	}
	stored, err := env.notifications.GetByID(context.Background(), alert.ID)
	if err != nil {
		t.Fatalf("alert removed by request rejection: %v", err)
	}
	got := receiverSet(stored)
	if got["worker-1"] {
		t.Error("rejected worker still in alert receivers")
	}
	if !got["worker-2"] || !got["worker-3"] {
		t.Errorf("remaining receivers = %v", stored.ReceiverIDs)
	}
}

func TestGetWorkAlertChecksType(t *testing.T) {
	env := newTestEnv()
	alert, _ := env.svc.CreateAlert(context.Background(), alertInput())
	request, _ := env.svc.CreateApprovalRequest(context.Background(), approvalInput(alert.ID))

	if _, err := env.svc.GetWorkAlert(context.Background(), alert.ID); err != nil {
		t.Errorf("GetWorkAlert: %v", err)
	}
	if _, err := env.svc.GetWorkAlert(context.Background(), request.ID); !utils.IsNotFound(err) {
		t.Errorf("GetWorkAlert with request id: err = %v, want not-found", err)
	}
	if _, err := env.svc.GetWorkApprovalRequest(context.Background(), request.ID); err != nil {
		t.Errorf("GetWorkApprovalRequest: %v", err)
	}
}

func TestUpdateWorkAlertRejectsServerOwnedFields(t *testing.T) {
	env := newTestEnv()
	alert, _ := env.svc.CreateAlert(context.Background(), alertInput())

	err := env.svc.UpdateWorkAlert(context.Background(), alert.ID, map[string]any{"receiverIds": []string{}})
	if !utils.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}

	if err := env.svc.UpdateWorkAlert(context.Background(), alert.ID, map[string]any{"description": "tap replaced instead"}); err != nil {
		t.Fatalf("UpdateWorkAlert: %v", err)
	}
	stored, _ := env.notifications.GetByID(context.Background(), alert.ID)
	if stored.Description != "tap replaced instead" {
		t.Errorf("description = %q", stored.Description)
	}
}

func TestGetNotificationsFiltersByReceiver(t *testing.T) {
	env := newTestEnv()
	alert, _ := env.svc.CreateAlert(context.Background(), alertInput())
	request, _ := env.svc.CreateApprovalRequest(context.Background(), approvalInput(alert.ID))

	forClient, err := env.svc.GetNotifications(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(forClient) != 1 || forClient[0].ID != request.ID {
		t.Errorf("client notifications = %v, want only the approval request", forClient)
	}

	forWorker, err := env.svc.GetNotifications(context.Background(), "worker-2")
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(forWorker) != 1 || forWorker[0].ID != alert.ID {
		t.Errorf("worker notifications = %v, want only the alert", forWorker)
	}
}
