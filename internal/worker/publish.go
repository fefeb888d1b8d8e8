package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
	"gorm.io/gorm"
)

// HandlePublishPost publishes a scheduled post. Tasks for cancelled,
// rescheduled or already published posts are dropped.
func (r *Runner) HandlePublishPost(ctx context.Context, task queue.Task) error {
	var payload dto.PublishTaskPayload
	if err := task.Decode(&payload); err != nil {
		return queue.Permanent(err)
	}

	post, err := r.Posts.GetScheduledPost(ctx, payload.PostID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Info("scheduled post gone, skipping publish", "post_id", payload.PostID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load post %s: %w", payload.PostID, err)
	}

	if post.Status == config.PostStatusPublished {
		return nil
	}
	if !post.ScheduledAt.Equal(payload.ScheduledAt) {
		r.log.Info("post rescheduled, skipping stale publish",
			"post_id", post.ID, "task_at", payload.ScheduledAt, "post_at", post.ScheduledAt)
		return nil
	}

	ok, err := r.Posts.MarkPostProcessing(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("mark post %s processing: %w", post.ID, err)
	}
	if !ok {
		return nil
	}

	err = r.retry(ctx, "publish", r.opts.PublishRetries, func(ctx context.Context) error {
		return r.Publisher.Publish(ctx, post)
	})

	dctx, cancel := detached(ctx)
	defer cancel()

	if err != nil {
		r.log.Error("publish failed", "post_id", post.ID, "error", err)
		applied, markErr := r.Posts.MarkPostFailed(dctx, post.ID, payload.ScheduledAt, failureMessage(err))
		if markErr != nil {
			r.log.Error("failed to record publish failure", "post_id", post.ID, "error", markErr)
			return queue.Permanent(err)
		}
		if !applied {
			r.log.Info("post changed during publish, dropping failure", "post_id", post.ID)
			return nil
		}
		return queue.Permanent(err)
	}

	applied, err := r.Posts.MarkPostPublished(dctx, post.ID, payload.ScheduledAt, r.now())
	if err != nil {
		return queue.Permanent(fmt.Errorf("mark post %s published: %w", post.ID, err))
	}
	if !applied {
		r.log.Info("post cancelled or rescheduled during publish, dropping result", "post_id", post.ID)
		return nil
	}
	r.log.Info("post published", "post_id", post.ID, "content_item_id", post.ContentItemID)
	return nil
}

// SimulatedPublisher stands in for the platform APIs. It waits for delay
// and reports success.
type SimulatedPublisher struct {
	delay time.Duration
	log   *logger.Logger
}

var _ Publisher = (*SimulatedPublisher)(nil)

func NewSimulatedPublisher(delay time.Duration, log *logger.Logger) *SimulatedPublisher {
	return &SimulatedPublisher{delay: delay, log: log}
}

func (p *SimulatedPublisher) Publish(ctx context.Context, post *models.ScheduledPost) error {
	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return fmt.Errorf("publish cancelled: %w", ctx.Err())
	}

	p.log.Debug("simulated publish", "post_id", post.ID, "scheduled_at", post.ScheduledAt.Format(time.RFC3339))
	return nil
}
