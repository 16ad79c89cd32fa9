package handlers

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Booking      *BookingHandler
	Notification *NotificationHandler
	Rating       *RatingHandler
	Worker       *WorkerHandler
	Client       *ClientHandler
	Catalog      *CatalogHandler
}
