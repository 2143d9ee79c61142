// File: clinicbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	"clinicbook/cron"
	"clinicbook/database"
	bookingRepoPkg "clinicbook/database/repository/booking"
	doctorRepoPkg "clinicbook/database/repository/doctor"
	reviewRepoPkg "clinicbook/database/repository/review"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/booking"
	"clinicbook/services/review"
	"clinicbook/services/schedule"
	"clinicbook/services/stats"
	"clinicbook/services/tasks"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	reminderScheduler := &tasks.Scheduler{
		Client:   asynqClient,
		LeadTime: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
	cron.InitReminderWorker(bookingRepo)

	// services.
	engine := &schedule.Engine{
		Doctors:      doctorRepo,
		Bookings:     bookingRepo,
		Cache:        utils.GetCacheClient(),
		SearchDays:   config.AppConfig.NearestSearchDays,
		CalendarDays: config.AppConfig.CalendarHorizonDays,
	}
	guard := &booking.Guard{
		Doctors:      doctorRepo,
		Bookings:     bookingRepo,
		Reminders:    reminderScheduler,
		Policy:       booking.ParseDuplicatePolicy(config.AppConfig.DuplicateBookingPolicy),
		CooldownDays: config.AppConfig.BookingCooldownDays,
	}
	statsService := &stats.Service{
		Doctors:  doctorRepo,
		Bookings: bookingRepo,
	}
	reviewService := &review.Service{
		Reviews:  reviewRepo,
		Bookings: bookingRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Engine:     engine,
		Guard:      guard,
		Stats:      statsService,
		Reviews:    reviewService,
		DoctorRepo: doctorRepo,
		ReviewRepo: reviewRepo,
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
