package routes

import (
	"net/http"
	"time"

	"fundi/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id", hb.Booking.UpdateBookingHandler)
		api.DELETE("/:id", hb.Booking.DeleteBookingHandler)
		api.GET("/unrated/:clientId", hb.Booking.UnratedCompletedWorkHandler)
	}
}

// RegisterNotificationRoutes registers the work-alert protocol endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("", hb.Notification.GetNotificationsHandler)
		api.DELETE("/:id", hb.Notification.DeleteNotificationHandler)

		api.POST("/work-alerts", hb.Notification.CreateWorkAlertHandler)
		api.GET("/work-alerts/:id", hb.Notification.GetWorkAlertHandler)
		api.PATCH("/work-alerts/:id", hb.Notification.UpdateWorkAlertHandler)
		api.POST("/work-alerts/reject", hb.Notification.RejectWorkAlertHandler)

		api.POST("/approval-requests", hb.Notification.CreateApprovalRequestHandler)
		api.GET("/approval-requests/:id", hb.Notification.GetApprovalRequestHandler)
		api.PATCH("/approval-requests/:id", hb.Notification.UpdateApprovalRequestHandler)
		api.POST("/approval-requests/confirm", hb.Notification.ConfirmWorkHandler)
		api.POST("/approval-requests/reject", hb.Notification.RejectApprovalRequestHandler)
	}
}

// RegisterRatingRoutes registers rating endpoints.
func RegisterRatingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ratings")
	{
		api.POST("", hb.Rating.CreateRatingHandler)
		api.GET("", hb.Rating.ListRatingsHandler)
		api.GET("/:id", hb.Rating.GetRatingHandler)
		api.PUT("/:id", hb.Rating.UpdateRatingHandler)
		api.DELETE("/:id", hb.Rating.DeleteRatingHandler)
	}
}

// RegisterWorkerRoutes registers worker profile endpoints.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workers")
	{
		api.POST("", hb.Worker.RegisterWorkerHandler)
		api.GET("", hb.Worker.ListWorkersHandler)
		api.GET("/top-rated", hb.Worker.TopRatedWorkersHandler)
		api.GET("/:id", hb.Worker.GetWorkerHandler)
		api.PATCH("/:id", hb.Worker.UpdateWorkerHandler)
		api.DELETE("/:id", hb.Worker.DeleteWorkerHandler)
	}
}

// RegisterClientRoutes registers client profile endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.POST("", hb.Client.RegisterClientHandler)
		api.GET("", hb.Client.ListClientsHandler)
		api.GET("/:id", hb.Client.GetClientHandler)
		api.PATCH("/:id", hb.Client.UpdateClientHandler)
		api.DELETE("/:id", hb.Client.DeleteClientHandler)
	}
}

// RegisterCatalogRoutes registers service/subservice reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.POST("/services", hb.Catalog.CreateServiceHandler)
		api.GET("/services", hb.Catalog.ListServicesHandler)
		api.GET("/services/:id", hb.Catalog.GetServiceHandler)
		api.PATCH("/services/:id", hb.Catalog.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.Catalog.DeleteServiceHandler)

		api.POST("/subservices", hb.Catalog.CreateSubserviceHandler)
		api.GET("/subservices", hb.Catalog.ListSubservicesHandler)
		api.GET("/subservices/:id", hb.Catalog.GetSubserviceHandler)
		api.PATCH("/subservices/:id", hb.Catalog.UpdateSubserviceHandler)
		api.DELETE("/subservices/:id", hb.Catalog.DeleteSubserviceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fundi"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterRatingRoutes(r, hb)
	RegisterWorkerRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}
