package models

import "time"

// Booking status values as stored on the wire.
const (
	BookingStatusPending      = "Pending"
	BookingStatusCompleted    = "Completed"
	BookingStatusNotCompleted = "Not Completed"
)

// Booking represents a client's booking of a worker for a subservice.
// The display fields (clientName, workerName, serviceName, subserviceName,
// serviceAvatar, locationName) are denormalized from the referenced entities
// at creation time and are not refreshed when those entities later change.
type Booking struct {
	ID             string     `bson:"id" json:"id"`
	ClientID       string     `bson:"clientId" json:"clientId"`
	WorkerID       string     `bson:"workerId" json:"workerId"`
	SubserviceID   string     `bson:"subserviceId" json:"subserviceId"`
	ClientName     string     `bson:"clientName" json:"clientName"`
	WorkerName     string     `bson:"workerName" json:"workerName"`
	ServiceName    string     `bson:"serviceName" json:"serviceName"`
	SubserviceName string     `bson:"subserviceName" json:"subserviceName"`
	ServiceAvatar  string     `bson:"serviceAvatar" json:"serviceAvatar"`
	LocationName   string     `bson:"locationName" json:"locationName"`
	DateTime       time.Time  `bson:"dateTime" json:"dateTime"`
	RatePerUnit    float64    `bson:"ratePerUnit" json:"ratePerUnit"`
	Unit           string     `bson:"unit" json:"unit"`
	Status         string     `bson:"status" json:"status"`
	HasRated       bool       `bson:"hasRated" json:"hasRated"`
	Location       Location   `bson:"location" json:"location"`
	Timestamps     Timestamps `bson:"timestamps" json:"timestamps"`
}

// CategorizedBookings splits a client's or worker's bookings into
// still-active ones and completed ones.
type CategorizedBookings struct {
	CurrentBookings []Booking `json:"currentBookings"`
	PastBookings    []Booking `json:"pastBookings"`
}

// BookingInput carries the client-supplied fields for creating a booking.
// Everything else on Booking is derived server-side.
type BookingInput struct {
	ClientID     string    `json:"clientId"`
	WorkerID     string    `json:"workerId"`
	SubserviceID string    `json:"subserviceId"`
	DateTime     string    `json:"dateTime"`
	RatePerUnit  float64   `json:"ratePerUnit"`
	Unit         string    `json:"unit"`
	Status       string    `json:"status"`
	Location     *Location `json:"location"`
}
