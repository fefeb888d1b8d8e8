// Package pool runs in-process workers for the memory queue backend and
// the stale-job janitor used by both backends.
package pool

import (
	"context"
	"sync"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
)

// Source yields tasks until its channel is closed.
type Source interface {
	Tasks() <-chan queue.Task
}

type Dispatcher interface {
	Dispatch(ctx context.Context, task queue.Task) error
}

type WorkerPool struct {
	count       int
	source      Source
	mux         Dispatcher
	taskTimeout time.Duration
	log         *logger.Logger
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewWorkerPool(count int, source Source, mux Dispatcher, taskTimeout time.Duration, log *logger.Logger) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		count:       count,
		source:      source,
		mux:         mux,
		taskTimeout: taskTimeout,
		log:         log,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (p *WorkerPool) Start() {
	for i := 1; i <= p.count; i++ {
		p.wg.Add(1)
		go p.work(i)
	}
	p.log.Info("worker pool started", "workers", p.count)
}

func (p *WorkerPool) work(id int) {
	defer p.wg.Done()
	tasks := p.source.Tasks()
	for {
		select {
		case task, ok := <-tasks:
			if !ok {
				return
			}
			p.run(id, task)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *WorkerPool) run(id int, task queue.Task) {
	ctx := p.ctx
	if p.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.taskTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("task panicked", "worker", id, "task_id", task.ID, "type", task.Type, "panic", r)
		}
	}()

	start := time.Now()
	if err := p.mux.Dispatch(ctx, task); err != nil {
		p.log.Error("task failed",
			"worker", id, "task_id", task.ID, "type", task.Type,
			"permanent", queue.IsPermanent(err), "error", err)
		return
	}
	p.log.Debug("task done", "worker", id, "task_id", task.ID, "type", task.Type, "took", time.Since(start))
}

// Stop cancels running tasks and waits for every worker to exit.
func (p *WorkerPool) Stop() {
	p.cancel()
	p.wg.Wait()
}
