// Command worker runs the moderation task consumer and the periodic jobs.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"crave/internal/cache"
	"crave/internal/config"
	"crave/internal/database"
	"crave/internal/jobs"
	"crave/internal/middleware"
	"crave/internal/notifications"
	"crave/internal/observability"
	"crave/internal/repository"
	"crave/internal/service"
	"crave/internal/validation"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.SetupLogger(cfg.Env, observability.ParseLevel(cfg.LogLevel)).With("component", "worker")
	observability.SetGlobalLogger(logger)

	if err := validation.InitWordLists(cfg.CommentWordlistPath); err != nil {
		log.Fatalf("Failed to load comment word lists: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rdb := cache.InitRedis(cfg.RedisURL)
	if rdb == nil {
		log.Fatalf("Redis is required by the worker")
	}

	opt, err := jobs.RedisOpt(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Invalid redis address: %v", err)
	}
	queue := jobs.NewQueue(opt)
	defer func() { _ = queue.Close() }()

	postRepo := repository.NewPostRepository(db)
	moderation := service.NewModerationService(postRepo, notifications.NewNotifier(rdb), cfg.ModerationAutoApprove)
	profiles := service.NewProfileService(repository.NewProfileRepository(db), repository.NewRestaurantRepository(db))

	scheduler := jobs.NewScheduler(profiles, moderation, queue, logger)
	if err := scheduler.Start(cfg.ReconcileSchedule); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	srv := jobs.NewServer(opt, cfg.WorkerConcurrency)
	worker := jobs.NewWorker(moderation, logger)
	if err := srv.Start(worker.Mux()); err != nil {
		log.Fatalf("Failed to start task server: %v", err)
	}

	logger.Info("worker started", "concurrency", cfg.WorkerConcurrency, "schedule", cfg.ReconcileSchedule)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down worker")
	srv.Shutdown()
}
