package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/job"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/pool"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
	"github.com/joshu-sajeev/trendplanner/internal/stats"
	"github.com/joshu-sajeev/trendplanner/internal/storage/postgres"
	"github.com/joshu-sajeev/trendplanner/internal/textgen"
	"github.com/joshu-sajeev/trendplanner/internal/worker"
)

const janitorEvery = 30 * time.Second

// The worker binary serves the redis backend. With QUEUE_BACKEND=memory the
// API process runs its own workers and this binary is not needed.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfigFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.QueueBackend != config.BackendRedis {
		log.Fatal("Worker requires QUEUE_BACKEND=redis", "queue_backend", cfg.QueueBackend)
	}

	log.Info("Starting Worker...")

	dbCfg, err := postgres.LoadConfigFromEnv(ctx)
	if err != nil {
		log.Fatal("Failed to load database config", "error", err)
	}
	db, err := postgres.ConnectDB(dbCfg, log)
	if err != nil {
		log.Fatal("Connection failed", "error", err)
	}

	jobRepo := postgres.NewJobRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	taskTimeout := cfg.OpenAITimeout*time.Duration(cfg.JobStepRetries+1) + time.Minute
	enqueuer, err := queue.NewAsynqQueue(cfg.RedisURL, taskTimeout)
	if err != nil {
		log.Fatal("Failed to create asynq client", "error", err)
	}
	defer enqueuer.Close()

	runner := worker.NewRunner(worker.Deps{
		Jobs:      jobRepo,
		Posts:     scheduleRepo,
		Stats:     stats.NewEngine(statsRepo, log),
		Analytics: statsRepo,
		Generator: textgen.NewClient(textgen.Config{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIJobModel,
			Timeout: cfg.OpenAITimeout,
		}, log),
		Publisher: worker.NewSimulatedPublisher(cfg.PublishDelay, log),
	}, worker.Options{
		StepRetries:    cfg.JobStepRetries,
		PublishRetries: cfg.PublishRetries,
		Backoff:        time.Second,
	}, log)
	mux := queue.NewMux()
	runner.Register(mux)

	srv, err := queue.NewAsynqServer(cfg.RedisURL, cfg.WorkerConcurrency, mux, log)
	if err != nil {
		log.Fatal("Failed to create worker server", "error", err)
	}
	if err := srv.Start(); err != nil {
		log.Fatal("Failed to start worker server", "error", err)
	}

	scheduler, err := queue.NewAsynqScheduler(cfg.RedisURL, time.UTC, log)
	if err != nil {
		log.Fatal("Failed to create scheduler", "error", err)
	}
	if err := worker.RegisterPeriodic(scheduler, cfg.StatsRefreshCron, cfg.AnalyticsRefreshCron); err != nil {
		log.Fatal("Failed to register periodic tasks", "error", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start scheduler", "error", err)
	}

	// Requeues PENDING jobs whose enqueue was lost after commit.
	jobService := job.NewJobService(jobRepo, enqueuer, job.Costs{
		ContentGeneration: cfg.ContentGenerationCost,
		TrendResearch:     cfg.TrendResearchCost,
	}, log)
	janitor := pool.NewJanitor(jobService, cfg.StaleJobAfter, janitorEvery, log)
	janitor.Start()

	log.Info("Worker active. Press Ctrl+C to stop.", "concurrency", cfg.WorkerConcurrency)
	<-ctx.Done()

	janitor.Stop()
	scheduler.Stop()
	srv.Stop()
	log.Info("Shutdown complete.")
}
