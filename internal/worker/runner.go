// Package worker executes queued tasks: generation and research jobs,
// scheduled publishes and the periodic rollups.
package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/extract"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
	"github.com/joshu-sajeev/trendplanner/internal/textgen"
)

type Deps struct {
	Jobs      JobStore
	Posts     PostStore
	Stats     StatsRefresher
	Analytics AnalyticsStore
	Generator textgen.Generator
	Publisher Publisher
}

type Options struct {
	// StepRetries is the number of extra attempts for a retryable job step.
	StepRetries    int
	PublishRetries int
	Backoff        time.Duration
}

type Runner struct {
	Deps
	opts Options
	log  *logger.Logger
	now  func() time.Time
}

func NewRunner(deps Deps, opts Options, log *logger.Logger) *Runner {
	return &Runner{Deps: deps, opts: opts, log: log, now: time.Now}
}

// WithClock replaces the time source.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Register installs every task handler on mux.
func (r *Runner) Register(mux *queue.Mux) {
	mux.Handle(config.TaskContentGenerate, r.HandleContentGeneration)
	mux.Handle(config.TaskTrendResearch, r.HandleTrendResearch)
	mux.Handle(config.TaskPostPublish, r.HandlePublishPost)
	mux.Handle(config.TaskStatsRefresh, r.HandleStatsRefresh)
	mux.Handle(config.TaskAnalyticsRefresh, r.HandleAnalyticsRefresh)
}

// retry runs fn up to attempts+1 times with exponential backoff. Permanent
// errors stop immediately.
func (r *Runner) retry(ctx context.Context, step string, attempts int, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= attempts; attempt++ {
		if attempt > 0 {
			delay := r.opts.Backoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("step %s: %w", step, ctx.Err())
			}
		}

		if err = fn(ctx); err == nil {
			return nil
		}
		if queue.IsPermanent(err) || ctx.Err() != nil {
			break
		}
		r.log.Warn("step failed", "step", step, "attempt", attempt+1, "error", err)
	}
	return fmt.Errorf("step %s: %w", step, err)
}

// generate calls the text generator with retries and extracts the JSON
// value from its output. Extraction failures are permanent.
func (r *Runner) generate(ctx context.Context, instructions, input string) (any, error) {
	var text string
	err := r.retry(ctx, "generate", r.opts.StepRetries, func(ctx context.Context) error {
		out, err := r.Generator.Generate(ctx, instructions, input)
		if err != nil {
			return err
		}
		text = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	raw, err := extract.JSON(text)
	if err != nil {
		return nil, queue.Permanent(fmt.Errorf("step extract: %w", err))
	}
	return raw, nil
}

// failureMessage returns the message stored on a failed row. Collaborator
// and extraction messages are kept verbatim.
func failureMessage(err error) string {
	var upstream *textgen.UpstreamError
	var parse *extract.Error
	switch {
	case errors.As(err, &upstream):
		return upstream.Message
	case errors.As(err, &parse):
		return parse.Error()
	case errors.Is(err, textgen.ErrMissingAPIKey):
		return textgen.ErrMissingAPIKey.Error()
	default:
		return err.Error()
	}
}

// detached returns a short-lived context that survives cancellation of
// ctx, for recording a terminal state during shutdown.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
}
