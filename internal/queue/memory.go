package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrClosed = errors.New("queue closed")

// Memory is an in-process queue backed by a buffered channel. Tasks with a
// future ProcessAt are parked on a timer until due.
type Memory struct {
	tasks     chan Task
	done      chan struct{}
	closeOnce sync.Once

	// mu guards closed against concurrent sends.
	mu     sync.RWMutex
	closed bool

	timersMu sync.Mutex
	timers   map[string]*time.Timer

	now func() time.Time
}

var _ Enqueuer = (*Memory)(nil)

func NewMemory(buffer int) *Memory {
	if buffer < 1 {
		buffer = 1
	}
	return &Memory{
		tasks:  make(chan Task, buffer),
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
		now:    time.Now,
	}
}

func (q *Memory) Enqueue(ctx context.Context, task Task) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	if delay := task.ProcessAt.Sub(q.now()); !task.ProcessAt.IsZero() && delay > 0 {
		if q.isClosed() {
			return "", ErrClosed
		}
		q.timersMu.Lock()
		q.timers[task.ID] = time.AfterFunc(delay, func() { q.release(task) })
		q.timersMu.Unlock()
		return task.ID, nil
	}

	if err := q.send(ctx, task); err != nil {
		return "", err
	}
	return task.ID, nil
}

func (q *Memory) send(ctx context.Context, task Task) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrClosed
	}

	select {
	case q.tasks <- task:
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Memory) release(task Task) {
	q.timersMu.Lock()
	delete(q.timers, task.ID)
	q.timersMu.Unlock()

	_ = q.send(context.Background(), task)
}

func (q *Memory) isClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

// Tasks is the channel workers consume from.
func (q *Memory) Tasks() <-chan Task {
	return q.tasks
}

// Pending returns the number of parked delayed tasks.
func (q *Memory) Pending() int {
	q.timersMu.Lock()
	defer q.timersMu.Unlock()
	return len(q.timers)
}

// Close drops parked tasks and closes the channel. Tasks already buffered
// stay readable.
func (q *Memory) Close() {
	q.closeOnce.Do(func() {
		close(q.done)

		q.timersMu.Lock()
		for id, t := range q.timers {
			t.Stop()
			delete(q.timers, id)
		}
		q.timersMu.Unlock()

		q.mu.Lock()
		q.closed = true
		close(q.tasks)
		q.mu.Unlock()
	})
}
