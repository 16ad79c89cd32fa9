package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fundi/config"
	"fundi/database"
	bookingRepoPkg "fundi/database/repository/booking"
	catalogRepoPkg "fundi/database/repository/catalog"
	clientRepoPkg "fundi/database/repository/client"
	notificationRepoPkg "fundi/database/repository/notification"
	ratingRepoPkg "fundi/database/repository/rating"
	workerRepoPkg "fundi/database/repository/worker"
	"fundi/handlers"
	"fundi/routes"
	"fundi/services/booking"
	"fundi/services/catalog"
	"fundi/services/client"
	"fundi/services/location"
	"fundi/services/push"
	"fundi/services/rating"
	"fundi/services/workalert"
	"fundi/services/worker"
	"fundi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitGeocodeCache()
	utils.FirebaseInit()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	ratingRepo := ratingRepoPkg.NewMongoRatingRepo()

	// shared collaborators.
	geocoder := location.NewGoogleGeocoder(logger)
	pushService := push.NewFCMService()

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Workers:  workerRepo,
		Clients:  clientRepo,
		Catalog:  catalogRepo,
		Geocoder: geocoder,
		Logger:   logger,
	}
	workAlertService := &workalert.DefaultWorkAlertService{
		Notifications: notificationRepo,
		Workers:       workerRepo,
		Clients:       clientRepo,
		Booking:       bookingService,
		Geocoder:      geocoder,
		Push:          pushService,
		Logger:        logger,
	}
	ratingService := &rating.DefaultRatingService{
		Ratings:  ratingRepo,
		Workers:  workerRepo,
		Bookings: bookingRepo,
		Logger:   logger,
	}
	workerService := &worker.DefaultWorkerService{
		Workers: workerRepo,
		Logger:  logger,
	}
	clientService := &client.DefaultClientService{
		Clients: clientRepo,
		Logger:  logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Catalog: catalogRepo,
		Logger:  logger,
	}

	handlerBundle := &handlers.HandlerBundle{
		Booking:      &handlers.BookingHandler{Service: bookingService},
		Notification: &handlers.NotificationHandler{Service: workAlertService},
		Rating:       &handlers.RatingHandler{Service: ratingService},
		Worker:       &handlers.WorkerHandler{Service: workerService},
		Client:       &handlers.ClientHandler{Service: clientService},
		Catalog:      &handlers.CatalogHandler{Service: catalogService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
