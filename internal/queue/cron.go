package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/robfig/cron/v3"
)

// CronScheduler enqueues periodic tasks into any Enqueuer.
type CronScheduler struct {
	cron     *cron.Cron
	enqueuer Enqueuer
	log      *logger.Logger
}

var _ PeriodicScheduler = (*CronScheduler)(nil)

func NewCronScheduler(enqueuer Enqueuer, loc *time.Location, log *logger.Logger) *CronScheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &CronScheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		enqueuer: enqueuer,
		log:      log,
	}
}

func (s *CronScheduler) RegisterCron(spec string, task Task) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := s.enqueuer.Enqueue(ctx, task); err != nil {
			s.log.Error("Periodic enqueue failed", "type", task.Type, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register %s on %q: %w", task.Type, spec, err)
	}
	return nil
}

func (s *CronScheduler) Start() error {
	s.cron.Start()
	return nil
}

func (s *CronScheduler) Stop() {
	<-s.cron.Stop().Done()
}
