package cron

import (
	"context"
	"encoding/json"
	"time"

	"clinicbook/config"
	bookingRepo "clinicbook/database/repository/booking"
	"clinicbook/models"
	"clinicbook/services/tasks"
	"clinicbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(bookings))

	go monitorRedisConnection()

	// Start async worker with retry logic.
	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("reminder worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires when a booking's reminder time arrives. Cancelled
// bookings get no reminder; completed ones have already happened, so only a
// still-pending booking is marked reminded.
func handleReminderTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			// Deleted or never stored; retrying will not help.
			logger.Warn("reminder for unknown booking", zap.String("bookingID", p.BookingID))
			return nil
		}
		if booking.Status != models.StatusPending {
			logger.Info("skipping reminder for non-pending booking",
				zap.String("bookingID", p.BookingID), zap.String("status", booking.Status))
			return nil
		}

		logger.Info("appointment reminder due",
			zap.String("bookingID", p.BookingID),
			zap.String("patient", p.PatientName),
			zap.String("doctor", p.DoctorName),
			zap.String("date", p.Date),
			zap.String("slot", p.Slot))

		if err := bookings.MarkReminded(ctx, p.BookingID, time.Now()); err != nil {
			logger.Error("failed to mark booking reminded",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			utils.GetLogger().Warn("reminder queue redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
