package models

// Service is a top-level service category (e.g. plumbing).
type Service struct {
	ID         string     `bson:"id" json:"id"`
	Name       string     `bson:"name" json:"name"`
	Avatar     string     `bson:"avatar" json:"avatar"`
	Timestamps Timestamps `bson:"timestamps" json:"timestamps"`
}

// Subservice is a bookable unit of work under a Service.
type Subservice struct {
	ID         string     `bson:"id" json:"id"`
	ServiceID  string     `bson:"serviceId" json:"serviceId"`
	Name       string     `bson:"name" json:"name"`
	Timestamps Timestamps `bson:"timestamps" json:"timestamps"`
}
