package models

// Worker is a service provider. WaitingList counts the worker's active
// bookings; Available must equal (WaitingList == 0) after every committed
// booking create/delete transaction, which is why both fields are only ever
// written together, inside that transaction.
type Worker struct {
	ID            string     `bson:"id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Email         string     `bson:"email" json:"email"`
	Phone         string     `bson:"phone" json:"phone"`
	Avatar        string     `bson:"avatar" json:"avatar"`
	FCMToken      string     `bson:"fcmToken" json:"fcmToken"`
	Rating        float64    `bson:"rating" json:"rating"`
	WaitingList   int        `bson:"waitingList" json:"waitingList"`
	Available     bool       `bson:"available" json:"available"`
	ServiceIDs    []string   `bson:"serviceIds" json:"serviceIds"`
	SubserviceIDs []string   `bson:"subserviceIds" json:"subserviceIds"`
	Location      *Location  `bson:"location,omitempty" json:"location,omitempty"`
	Timestamps    Timestamps `bson:"timestamps" json:"timestamps"`
}

// OnBookingCreated returns the worker's next waitingList/available pair after
// a booking is added. Callers must pass the counter as re-read inside the
// transaction that also persists the booking.
func OnBookingCreated(waitingList int) (int, bool) {
	if waitingList < 0 {
		waitingList = 0
	}
	return waitingList + 1, false
}

// OnBookingDeleted returns the next waitingList/available pair after a
// booking is removed. The counter never goes below zero and the worker
// becomes available again exactly when it reaches zero.
func OnBookingDeleted(waitingList int) (int, bool) {
	waitingList--
	if waitingList < 0 {
		waitingList = 0
	}
	return waitingList, waitingList == 0
}
