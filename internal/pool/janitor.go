package pool

import (
	"context"
	"sync"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/logger"
)

// Recovery re-enqueues jobs that were committed but never picked up.
type Recovery interface {
	RequeueStale(ctx context.Context, olderThan time.Duration) (int, error)
}

type Janitor struct {
	recovery   Recovery
	staleAfter time.Duration
	every      time.Duration
	log        *logger.Logger
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewJanitor(recovery Recovery, staleAfter, every time.Duration, log *logger.Logger) *Janitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Janitor{
		recovery:   recovery,
		staleAfter: staleAfter,
		every:      every,
		log:        log,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (j *Janitor) Start() {
	j.wg.Add(1)
	go j.loop()
}

func (j *Janitor) loop() {
	defer j.wg.Done()
	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Sweep(j.ctx)
		case <-j.ctx.Done():
			return
		}
	}
}

// Sweep runs one recovery pass.
func (j *Janitor) Sweep(ctx context.Context) {
	n, err := j.recovery.RequeueStale(ctx, j.staleAfter)
	if err != nil {
		j.log.Error("stale job sweep failed", "error", err)
		return
	}
	if n > 0 {
		j.log.Info("requeued stale jobs", "count", n)
	}
}

func (j *Janitor) Stop() {
	j.cancel()
	j.wg.Wait()
}
