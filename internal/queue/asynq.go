package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
)

// AsynqQueue enqueues tasks into Redis through asynq.
type AsynqQueue struct {
	client  *asynq.Client
	timeout time.Duration
}

var _ Enqueuer = (*AsynqQueue)(nil)

func NewAsynqQueue(redisURL string, timeout time.Duration) (*AsynqQueue, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	return &AsynqQueue{client: asynq.NewClient(opt), timeout: timeout}, nil
}

// Enqueue returns the asynq task id as the execution handle. Retries are
// disabled at this layer; handlers retry their own steps.
func (q *AsynqQueue) Enqueue(ctx context.Context, task Task) (string, error) {
	opts := []asynq.Option{
		asynq.MaxRetry(0),
		asynq.Retention(24 * time.Hour),
	}
	if q.timeout > 0 {
		opts = append(opts, asynq.Timeout(q.timeout))
	}
	if task.ID != "" {
		opts = append(opts, asynq.TaskID(task.ID))
	}
	if !task.ProcessAt.IsZero() {
		opts = append(opts, asynq.ProcessAt(task.ProcessAt))
	}

	info, err := q.client.EnqueueContext(ctx, asynq.NewTask(task.Type, task.Payload), opts...)
	if err != nil {
		return "", fmt.Errorf("enqueue %s: %w", task.Type, err)
	}
	return info.ID, nil
}

func (q *AsynqQueue) Close() error {
	return q.client.Close()
}

// AsynqServer consumes tasks from Redis and dispatches them through a Mux.
type AsynqServer struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewAsynqServer(redisURL string, concurrency int, mux *Mux, log *logger.Logger) (*AsynqServer, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency:     concurrency,
		ShutdownTimeout: 30 * time.Second,
		Logger:          &asynqLogger{log: log},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Error("Task failed", "type", task.Type(), "error", err)
		}),
	})

	amux := asynq.NewServeMux()
	for _, taskType := range mux.Types() {
		amux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
			id, _ := asynq.GetTaskID(ctx)
			err := mux.Dispatch(ctx, Task{ID: id, Type: t.Type(), Payload: t.Payload()})
			if err != nil && IsPermanent(err) {
				return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
			}
			return err
		})
	}

	return &AsynqServer{srv: srv, mux: amux}, nil
}

// Start runs the server without blocking.
func (s *AsynqServer) Start() error {
	if err := s.srv.Start(s.mux); err != nil {
		return fmt.Errorf("failed to start worker: %w", err)
	}
	return nil
}

func (s *AsynqServer) Stop() {
	s.srv.Shutdown()
}

// AsynqScheduler registers cron entries with asynq's scheduler.
type AsynqScheduler struct {
	scheduler *asynq.Scheduler
}

var _ PeriodicScheduler = (*AsynqScheduler)(nil)

func NewAsynqScheduler(redisURL string, loc *time.Location, log *logger.Logger) (*AsynqScheduler, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &AsynqScheduler{
		scheduler: asynq.NewScheduler(opt, &asynq.SchedulerOpts{
			Location: loc,
			LogLevel: asynq.InfoLevel,
			Logger:   &asynqLogger{log: log},
		}),
	}, nil
}

func (s *AsynqScheduler) RegisterCron(spec string, task Task) error {
	_, err := s.scheduler.Register(spec, asynq.NewTask(task.Type, task.Payload),
		asynq.MaxRetry(0),
		asynq.Unique(time.Hour),
	)
	if err != nil {
		return fmt.Errorf("register %s on %q: %w", task.Type, spec, err)
	}
	return nil
}

func (s *AsynqScheduler) Start() error {
	if err := s.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	return nil
}

func (s *AsynqScheduler) Stop() {
	s.scheduler.Shutdown()
}

// asynqLogger adapts the zap wrapper to asynq.Logger.
type asynqLogger struct {
	log *logger.Logger
}

func (a *asynqLogger) Debug(args ...interface{}) { a.log.SugaredLogger.Debug(args...) }
func (a *asynqLogger) Info(args ...interface{})  { a.log.SugaredLogger.Info(args...) }
func (a *asynqLogger) Warn(args ...interface{})  { a.log.SugaredLogger.Warn(args...) }
func (a *asynqLogger) Error(args ...interface{}) { a.log.SugaredLogger.Error(args...) }
func (a *asynqLogger) Fatal(args ...interface{}) { a.log.SugaredLogger.Fatal(args...) }
