// Package queue hands tasks from producers to background workers. The
// durable record of any work lives in the database; a task is only a
// wake-up signal for a worker.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

type Task struct {
	ID        string
	Type      string
	Payload   []byte
	ProcessAt time.Time
}

// NewTask marshals payload into a task of the given type.
func NewTask(taskType string, payload any) (Task, error) {
	if payload == nil {
		return Task{Type: taskType}, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Task{}, fmt.Errorf("marshal %s payload: %w", taskType, err)
	}
	return Task{Type: taskType, Payload: b}, nil
}

// Decode unmarshals the task payload into v.
func (t Task) Decode(v any) error {
	if len(t.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(t.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", t.Type, err)
	}
	return nil
}

// Enqueuer accepts a task and returns an execution handle for it.
type Enqueuer interface {
	Enqueue(ctx context.Context, task Task) (string, error)
}

type HandlerFunc func(ctx context.Context, task Task) error

var ErrNoHandler = errors.New("no handler registered")

// Mux routes tasks to handlers by type.
type Mux struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

func NewMux() *Mux {
	return &Mux{handlers: make(map[string]HandlerFunc)}
}

func (m *Mux) Handle(taskType string, h HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[taskType] = h
}

func (m *Mux) Types() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	types := make([]string, 0, len(m.handlers))
	for t := range m.handlers {
		types = append(types, t)
	}
	return types
}

func (m *Mux) Dispatch(ctx context.Context, task Task) error {
	m.mu.RLock()
	h, ok := m.handlers[task.Type]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, task.Type)
	}
	return h(ctx, task)
}

// PeriodicScheduler enqueues tasks on cron specs.
type PeriodicScheduler interface {
	RegisterCron(spec string, task Task) error
	Start() error
	Stop()
}

// permanent marks an error that must not be retried by the backend.
type permanent struct{ err error }

func (p *permanent) Error() string { return p.err.Error() }
func (p *permanent) Unwrap() error { return p.err }

// Permanent wraps err so that no backend retries it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanent{err: err}
}

func IsPermanent(err error) bool {
	var p *permanent
	return errors.As(err, &p)
}
