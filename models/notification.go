package models

import "time"

// Notification discriminant values. All variants live in one collection and
// share NotificationBase; the type field tells them apart.
const (
	NotificationTypeWorkAlert           = "work-alert"
	NotificationTypeWorkApprovalRequest = "work-approval-request"
	NotificationTypeWorkConfirmation    = "work-confirmation"
	NotificationTypeWorkRejection       = "work-rejection"
)

// NotificationBase holds the fields common to every notification variant.
type NotificationBase struct {
	ID          string     `bson:"id" json:"id"`
	SenderID    string     `bson:"senderId" json:"senderId"`
	ReceiverIDs []string   `bson:"receiverIds" json:"receiverIds"`
	Type        string     `bson:"type" json:"type"`
	Timestamps  Timestamps `bson:"timestamps" json:"timestamps"`
}

// Notification is the stored document for every variant. Variant-specific
// fields are omitempty so each document only carries what its type uses.
//
// work-alert: WorkAlertID (self-reference), SubserviceID, Description,
// Images, Location, LocationName. ReceiverIDs is the snapshot of workers
// registered for the subservice at creation time.
//
// work-approval-request: the alert fields narrowed to one worker, plus
// WorkApprovalRequestID (self-reference), DateTime, RatePerUnit, Unit.
// ReceiverIDs holds exactly the client id.
type Notification struct {
	NotificationBase `bson:",inline"`

	WorkAlertID  string    `bson:"workAlertId,omitempty" json:"workAlertId,omitempty"`
	SubserviceID string    `bson:"subserviceId,omitempty" json:"subserviceId,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Images       []string  `bson:"images,omitempty" json:"images,omitempty"`
	Location     *Location `bson:"location,omitempty" json:"location,omitempty"`
	LocationName string    `bson:"locationName,omitempty" json:"locationName,omitempty"`

	WorkApprovalRequestID string     `bson:"workApprovalRequestId,omitempty" json:"workApprovalRequestId,omitempty"`
	DateTime              *time.Time `bson:"dateTime,omitempty" json:"dateTime,omitempty"`
	RatePerUnit           float64    `bson:"ratePerUnit,omitempty" json:"ratePerUnit,omitempty"`
	Unit                  string     `bson:"unit,omitempty" json:"unit,omitempty"`
}

// WorkAlertInput carries the client-supplied fields for broadcasting an
// immediate work alert. ReceiverIDs and LocationName are computed server-side.
type WorkAlertInput struct {
	SenderID     string    `json:"senderId"`
	SubserviceID string    `json:"subserviceId"`
	Description  string    `json:"description"`
	Images       []string  `json:"images,omitempty"`
	Location     *Location `json:"location"`
}

// WorkApprovalRequestInput is one worker's acceptance of an alert, forwarded
// to the client for sign-off. ReceiverIDs must hold exactly the client id.
type WorkApprovalRequestInput struct {
	SenderID     string    `json:"senderId"`
	ReceiverIDs  []string  `json:"receiverIds"`
	WorkAlertID  string    `json:"workAlertId"`
	SubserviceID string    `json:"subserviceId"`
	Description  string    `json:"description"`
	Location     *Location `json:"location"`
	LocationName string    `json:"locationName"`
	DateTime     string    `json:"dateTime"`
	RatePerUnit  float64   `json:"ratePerUnit"`
	Unit         string    `json:"unit"`
}

// WorkConfirmationInput is the client's acceptance of an approval request.
// It carries both back-references for cleanup and every field needed to
// construct the resulting booking. ReceiverIDs must hold exactly the worker id.
type WorkConfirmationInput struct {
	SenderID              string    `json:"senderId"`
	ReceiverIDs           []string  `json:"receiverIds"`
	WorkAlertID           string    `json:"workAlertId"`
	WorkApprovalRequestID string    `json:"workApprovalRequestId"`
	SubserviceID          string    `json:"subserviceId"`
	Location              *Location `json:"location"`
	LocationName          string    `json:"locationName"`
	DateTime              string    `json:"dateTime"`
	RatePerUnit           float64   `json:"ratePerUnit"`
	Unit                  string    `json:"unit"`
}

// WorkRejectionInput is the client declining an approval request.
// ReceiverIDs must hold exactly the worker id.
type WorkRejectionInput struct {
	SenderID              string   `json:"senderId"`
	ReceiverIDs           []string `json:"receiverIds"`
	WorkAlertID           string   `json:"workAlertId"`
	WorkApprovalRequestID string   `json:"workApprovalRequestId"`
}

// WorkAlertRejectionInput is a worker declining an open alert; only the
// worker's slot on the alert is released.
type WorkAlertRejectionInput struct {
	SenderID    string `json:"senderId"`
	WorkAlertID string `json:"workAlertId"`
}
