package models

// Rating criteria names. Weights live in services/rating.
const (
	CriterionQuality     = "quality"
	CriterionEfficiency  = "efficiency"
	CriterionReliability = "reliability"
	CriterionKnowledge   = "knowledge"
	CriterionValue       = "value"
)

// IndividualRating is one criterion's score and optional feedback.
type IndividualRating struct {
	Rating   float64 `bson:"rating" json:"rating"`
	Feedback string  `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// Rating is a client's review of a completed booking. At most one rating may
// exist per booking; the booking's hasRated flag enforces this.
type Rating struct {
	ID            string                      `bson:"id" json:"id"`
	ClientID      string                      `bson:"clientId" json:"clientId"`
	WorkerID      string                      `bson:"workerId" json:"workerId"`
	BookingID     string                      `bson:"bookingId" json:"bookingId"`
	Ratings       map[string]IndividualRating `bson:"ratings" json:"ratings"`
	OverallRating *IndividualRating           `bson:"overallRating,omitempty" json:"overallRating,omitempty"`
	Timestamps    Timestamps                  `bson:"timestamps" json:"timestamps"`
}

// RatingInput carries the client-supplied fields for creating a rating.
type RatingInput struct {
	ClientID        string                      `json:"clientId"`
	WorkerID        string                      `json:"workerId"`
	BookingID       string                      `json:"bookingId"`
	Ratings         map[string]IndividualRating `json:"ratings"`
	OverallFeedback string                      `json:"overallFeedback,omitempty"`
}
