package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"goldenfish/config"
	"goldenfish/services/menu"
	"goldenfish/services/restaurant"

	"github.com/hibiken/asynq"
)

const (
	TypeMenuRefresh     = "cache:refresh:menu"
	TypeSettingsRefresh = "cache:refresh:settings"
)

// InitCacheRefreshWorker runs the async worker in background. It re-warms the
// menu and settings caches on a fixed schedule so the storefront rarely pays
// the database round trip.
func InitCacheRefreshWorker(menuSvc menu.MenuService, restaurantSvc restaurant.RestaurantService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMenuRefresh, func(ctx context.Context, task *asynq.Task) error {
		if err := menuSvc.RefreshCache(ctx); err != nil {
			log.Printf("[CacheWorker] ❌ Menu refresh failed: %v", err)
			return err
		}
		return nil
	})
	mux.HandleFunc(TypeSettingsRefresh, func(ctx context.Context, task *asynq.Task) error {
		if err := restaurantSvc.RefreshCache(ctx); err != nil {
			log.Printf("[CacheWorker] ❌ Settings refresh failed: %v", err)
			return err
		}
		return nil
	})

	go runScheduler(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[CacheWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CacheWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CacheWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// runScheduler enqueues the refresh tasks periodically.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	minutes := config.AppConfig.CacheRefreshMinutes
	if minutes <= 0 {
		minutes = 15
	}
	spec := fmt.Sprintf("@every %dm", minutes)

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeMenuRefresh, nil)); err != nil {
		log.Printf("[CacheWorker] ❌ Failed to schedule menu refresh: %v", err)
		return
	}
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeSettingsRefresh, nil)); err != nil {
		log.Printf("[CacheWorker] ❌ Failed to schedule settings refresh: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[CacheWorker] ❌ Scheduler stopped: %v", err)
	}
}
