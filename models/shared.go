package models

import "time"

// Location is a latitude/longitude pair as supplied by the mobile clients.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Timestamps is embedded in every document under the "timestamps" field.
// CreatedAt is set once at creation; UpdatedAt is bumped on every mutation.
type Timestamps struct {
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewTimestamps stamps both fields to the current instant.
func NewTimestamps() Timestamps {
	now := time.Now().UTC()
	return Timestamps{CreatedAt: now, UpdatedAt: now}
}
