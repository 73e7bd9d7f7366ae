package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"stayhaven/config"
	"stayhaven/cron"
	"stayhaven/database"
	apartmentRepo "stayhaven/database/repository/apartment"
	bookingRepo "stayhaven/database/repository/booking"
	calendarRepo "stayhaven/database/repository/calendar"
	pricingRepo "stayhaven/database/repository/pricing"
	"stayhaven/handlers"
	"stayhaven/middleware"
	"stayhaven/routes"
	"stayhaven/services/booking"
	"stayhaven/services/notification"
	"stayhaven/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	aptRepo := apartmentRepo.NewMongoApartmentRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	calRepo := calendarRepo.NewMongoCalendarRepo()
	ruleRepo := pricingRepo.NewMongoPricingRuleRepo()

	// services.
	notificationService := notification.NewDefaultNotificationService()
	calendarCache := booking.NewRedisCalendarCache(utils.GetCacheClient(), 10*time.Minute)
	bookingService := booking.NewDefaultBookingService(
		aptRepo,
		bkRepo,
		calRepo,
		ruleRepo,
		notificationService,
		calendarCache,
	)

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	adminHandler := handlers.NewAdminHandler(bookingService)
	apartmentHandler := handlers.NewApartmentHandler(aptRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public listing endpoints.
		ListApartments:     apartmentHandler.ListApartments,
		GetApartmentBySlug: apartmentHandler.GetApartmentBySlug,

		// Guest endpoints.
		RequestBooking:    bookingHandler.RequestBooking,
		GetQuote:          bookingHandler.GetQuote,
		CheckAvailability: bookingHandler.CheckAvailability,
		GetCalendar:       bookingHandler.GetCalendar,
		MyBookings:        bookingHandler.MyBookings,
		GetBooking:        bookingHandler.GetBooking,
		CancelMyBooking:   bookingHandler.CancelMyBooking,

		// Admin lifecycle endpoints.
		ConfirmBooking:   adminHandler.ConfirmBooking,
		CancelBooking:    adminHandler.CancelBooking,
		CompleteBooking:  adminHandler.CompleteBooking,
		SetPaymentStatus: adminHandler.SetPaymentStatus,
		ListBookings:     adminHandler.ListBookings,

		// Admin calendar endpoints.
		SetCalendarRange:   adminHandler.SetCalendarRange,
		ClearCalendarRange: adminHandler.ClearCalendarRange,

		// Admin pricing endpoints.
		AddPricingRule:    adminHandler.AddPricingRule,
		DeletePricingRule: adminHandler.DeletePricingRule,
		ListPricingRules:  adminHandler.ListPricingRules,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitAutoCompleteWorker(bookingService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
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

	// Wait for an OS signal to gracefully shutdown.
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
