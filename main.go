// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/database"
	appointmentRepoPkg "salonbook/database/repository/appointment"
	catalogRepoPkg "salonbook/database/repository/catalog"
	staffRepoPkg "salonbook/database/repository/staff"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/booking"
	"salonbook/services/catalog"
	"salonbook/services/email"
	"salonbook/services/notification"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitNotificationCache()
	utils.InitMirrorCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.LoadHTMLGlob("web/templates/*.html")

	// repositories.
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   serviceRepo,
		Logger: logger,
	}

	presenter := &notification.RedisPresenter{
		Client: utils.GetNotificationCacheClient(),
		TTL:    time.Duration(config.AppConfig.NotificationTTLSeconds) * time.Second,
	}

	confirmationSender := email.NewEmailJSSender(email.Config{
		PublicKey:    config.AppConfig.EmailPublicKey,
		ServiceID:    config.AppConfig.EmailServiceID,
		TemplateID:   config.AppConfig.EmailTemplateID,
		GatewayURL:   config.AppConfig.EmailGatewayURL,
		SalonName:    config.AppConfig.SalonName,
		SalonPhone:   config.AppConfig.SalonPhone,
		SalonAddress: config.AppConfig.SalonAddress,
	}, logger)

	bookingService := &booking.DefaultBookingService{
		CatalogRepo:     serviceRepo,
		AppointmentRepo: appointmentRepo,
		StaffAssigner:   &booking.FirstAvailableStrategy{Repo: staffRepo},
		Confirmation:    confirmationSender,
		Presenter:       presenter,
		MirrorClient:    utils.GetMirrorCacheClient(),
		Logger:          logger,
	}

	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	notificationHandler := handlers.NewNotificationHandler(presenter, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RenderBookingFormHandler:   catalogHandler.RenderBookingFormHandler,
		ListServicesHandler:        catalogHandler.ListServicesHandler,
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		CurrentNotificationHandler: notificationHandler.CurrentNotificationHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
