// File: carexyz/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carexyz/config"
	"carexyz/cron"
	"carexyz/database"
	activityRepoPkg "carexyz/database/repository/activity"
	bookingRepoPkg "carexyz/database/repository/booking"
	contentRepoPkg "carexyz/database/repository/content"
	profileRepoPkg "carexyz/database/repository/profile"
	serviceRepoPkg "carexyz/database/repository/service"
	"carexyz/handlers"
	"carexyz/middleware"
	"carexyz/routes"
	"carexyz/services/account"
	"carexyz/services/booking"
	"carexyz/services/catalog"
	"carexyz/services/content"
	"carexyz/services/payment"
	"carexyz/services/seed"
	"carexyz/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  serviceRepo,
		Cache: utils.CacheClient,
	}

	contentService := &content.DefaultContentService{
		Repo: contentRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		ServiceRepo: serviceRepo,
		Activity:    activityRepo,
	}

	paymentService := &payment.StripePaymentService{
		ServiceRepo: serviceRepo,
	}

	accountService := &account.DefaultAccountService{
		Repo:      profileRepo,
		Auth:      utils.AuthClient,
		RoleCache: utils.AuthCacheClient,
		Activity:  activityRepo,
	}

	seeder := &seed.Seeder{
		Services: serviceRepo,
		Content:  contentRepo,
		Activity: activityRepo,
	}

	// Background reconciliation for payments whose booking write failed.
	cron.InitReconcileWorker(bookingRepo, activityRepo)
	reconciler := cron.NewReconciler()

	catalogHandler := handlers.NewCatalogHandler(catalogService, contentService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, paymentService, reconciler, logger)
	profileHandler := handlers.NewProfileHandler(accountService, logger)
	adminHandler := handlers.NewAdminHandler(catalogService, contentService, accountService, bookingService, activityRepo, logger)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService, logger)
	seedHandler := handlers.NewSeedHandler(seeder, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo:   profileRepo,
		TokenVerifier: utils.AuthClient,

		CatalogHandler: catalogHandler,
		BookingHandler: bookingHandler,
		ProfileHandler: profileHandler,
		AdminHandler:   adminHandler,
		StorageHandler: storageHandler,
		SeedHandler:    seedHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.AuthCacheClient}, database.MongoClient)

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
