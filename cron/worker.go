package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"stayhaven/config"
	"stayhaven/services/booking"
	"stayhaven/utils"
)

const TypeAutoComplete = "booking:auto_complete"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitAutoCompleteWorker runs the async worker and the daily schedule in
// the background. The sweep moves CONFIRMED bookings whose check-out has
// passed to COMPLETED.
func InitAutoCompleteWorker(svc booking.BookingService) {
	opts := redisOpts()

	srv := asynq.NewServer(
		opts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAutoComplete, handleAutoCompleteTask(svc))

	scheduler := asynq.NewScheduler(opts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register(config.AppConfig.AutoCompleteCron, asynq.NewTask(TypeAutoComplete, nil)); err != nil {
		log.Fatalf("[AutoCompleteWorker] failed to register schedule: %v", err)
	}

	go func() {
		log.Println("[AutoCompleteWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AutoCompleteWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AutoCompleteWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[AutoCompleteWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleAutoCompleteTask(svc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		completed, err := svc.AutoCompleteFinished(ctx)
		if err != nil {
			logger.Error("auto-complete sweep failed", zap.Error(err))
			return err
		}
		logger.Info("auto-complete sweep finished", zap.Int("completed", completed))
		return nil
	}
}
