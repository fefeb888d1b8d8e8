package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/internal/assistant"
	"github.com/joshu-sajeev/trendplanner/internal/cache"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/content"
	"github.com/joshu-sajeev/trendplanner/internal/dashboard"
	"github.com/joshu-sajeev/trendplanner/internal/job"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/pool"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
	"github.com/joshu-sajeev/trendplanner/internal/scheduling"
	"github.com/joshu-sajeev/trendplanner/internal/server"
	"github.com/joshu-sajeev/trendplanner/internal/stats"
	"github.com/joshu-sajeev/trendplanner/internal/storage/postgres"
	"github.com/joshu-sajeev/trendplanner/internal/textgen"
	"github.com/joshu-sajeev/trendplanner/internal/worker"
)

const (
	janitorEvery    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

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

	dbCfg, err := postgres.LoadConfigFromEnv(ctx)
	if err != nil {
		log.Fatal("Failed to load database config", "error", err)
	}
	db, err := postgres.ConnectDB(dbCfg, log)
	if err != nil {
		log.Fatal("Connection failed", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB", "error", err)
	}
	if err := postgres.RunMigrations(sqlDB); err != nil {
		log.Fatal("Migrations failed", "error", err)
	}

	// Repos
	jobRepo := postgres.NewJobRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)
	contentRepo := postgres.NewContentRepository(db)

	taskTimeout := cfg.OpenAITimeout*time.Duration(cfg.JobStepRetries+1) + time.Minute

	// Queue
	var (
		enqueuer   queue.Enqueuer
		background []func()
	)
	switch cfg.QueueBackend {
	case config.BackendRedis:
		q, err := queue.NewAsynqQueue(cfg.RedisURL, taskTimeout)
		if err != nil {
			log.Fatal("Failed to create asynq client", "error", err)
		}
		enqueuer = q
		background = append(background, func() { _ = q.Close() })
		log.Info("Queue backend: redis (run cmd/worker to process tasks)")
	default:
		mem := queue.NewMemory(cfg.WorkerConcurrency * 20)
		enqueuer = mem
		background = append(background, mem.Close)
	}

	gen := textgen.NewClient(textgen.Config{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIJobModel,
		Timeout: cfg.OpenAITimeout,
	}, log)

	// Services
	jobService := job.NewJobService(jobRepo, enqueuer, job.Costs{
		ContentGeneration: cfg.ContentGenerationCost,
		TrendResearch:     cfg.TrendResearchCost,
	}, log)
	schedulingService := scheduling.NewSchedulingService(scheduleRepo, enqueuer, log)
	dashboardService := dashboard.NewDashboardService(dashboardRepo, enqueuer, log)
	contentService := content.NewContentService(contentRepo, log)

	bootstrapCache, err := newBootstrapCache(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to init bootstrap cache", "error", err)
	}

	// In-process workers for the memory backend
	if mem, ok := enqueuer.(*queue.Memory); ok {
		runner := worker.NewRunner(worker.Deps{
			Jobs:      jobRepo,
			Posts:     scheduleRepo,
			Stats:     stats.NewEngine(statsRepo, log),
			Analytics: statsRepo,
			Generator: gen,
			Publisher: worker.NewSimulatedPublisher(cfg.PublishDelay, log),
		}, worker.Options{
			StepRetries:    cfg.JobStepRetries,
			PublishRetries: cfg.PublishRetries,
			Backoff:        time.Second,
		}, log)
		mux := queue.NewMux()
		runner.Register(mux)

		workerPool := pool.NewWorkerPool(cfg.WorkerConcurrency, mem, mux, taskTimeout, log)
		workerPool.Start()

		cron := queue.NewCronScheduler(mem, time.UTC, log)
		if err := worker.RegisterPeriodic(cron, cfg.StatsRefreshCron, cfg.AnalyticsRefreshCron); err != nil {
			log.Fatal("Failed to register periodic tasks", "error", err)
		}
		if err := cron.Start(); err != nil {
			log.Fatal("Failed to start cron", "error", err)
		}

		janitor := pool.NewJanitor(jobService, cfg.StaleJobAfter, janitorEvery, log)
		janitor.Start()

		// Stop producers before the pool, and the pool before the queue closes.
		background = append([]func(){cron.Stop, janitor.Stop, workerPool.Stop}, background...)
	}

	// Handlers
	if cfg.LogMode != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.RouterConfig{
		JobHandler:         job.NewJobHandler(jobService),
		SchedulingHandler:  scheduling.NewSchedulingHandler(schedulingService),
		DashboardHandler:   dashboard.NewDashboardHandler(dashboardService),
		ContentHandler:     content.NewContentHandler(contentService),
		AssistantHandler:   assistant.NewHandler(gen.WithModel(cfg.OpenAIModel), bootstrapCache, cfg.BootstrapCacheTTL, log),
		DefaultUserID:      cfg.DefaultUserID,
		DefaultWorkspaceID: cfg.DefaultWorkspaceID,
		Logger:             log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("API server listening", "port", cfg.Port, "queue", cfg.QueueBackend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down...")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	for _, stopFn := range background {
		stopFn()
	}
	_ = sqlDB.Close()
	log.Info("Shutdown complete.")
}

func newBootstrapCache(ctx context.Context, cfg *config.App, log *logger.Logger) (cache.Cache, error) {
	if cfg.BootstrapCacheBackend != config.BackendRedis {
		return cache.NewMemory(), nil
	}

	r, err := cache.NewRedis(cfg.RedisURL, "trendplanner:")
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		log.Warn("Redis cache unreachable at boot", "error", err)
	}
	return r, nil
}
