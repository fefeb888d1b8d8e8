package scheduling

import (
	"context"
	"net/http"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
)

const (
	statusScheduled = "scheduled"

	DefaultUpcomingLimit = 14
	enqueueTimeout       = 5 * time.Second
)

type SchedulingService struct {
	repo  ScheduleRepoInterface
	queue queue.Enqueuer
	log   *logger.Logger
	now   func() time.Time
}

func NewSchedulingService(repo ScheduleRepoInterface, q queue.Enqueuer, log *logger.Logger) *SchedulingService {
	return &SchedulingService{repo: repo, queue: q, log: log, now: time.Now}
}

var _ SchedulingServiceInterface = (*SchedulingService)(nil)

// Schedule creates or moves the post of a content item and queues its
// publish for scheduledAt. Earlier publish tasks for the item become stale.
func (s *SchedulingService) Schedule(ctx context.Context, userID, workspaceID string, req *dto.SchedulePostRequest) (*dto.SchedulePostResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		tz = config.DefaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, common.NewAPIError(http.StatusBadRequest, "invalid timezone", map[string]any{"timezone": tz})
	}

	at := req.ScheduledAt.UTC().Truncate(time.Second)
	post, err := s.repo.Upsert(ctx, &models.ScheduledPost{
		ContentItemID: req.ContentItemID,
		UserID:        userID,
		WorkspaceID:   workspaceID,
		ScheduledAt:   at,
		Timezone:      tz,
	})
	if err != nil {
		return nil, common.FromRepoError(err, "content item not found", "failed to schedule post")
	}

	task, err := queue.NewTask(config.TaskPostPublish, dto.PublishTaskPayload{
		PostID:        post.ID,
		ContentItemID: post.ContentItemID,
		ScheduledAt:   at,
	})
	if err != nil {
		return nil, common.Errf(http.StatusInternalServerError, "failed to queue publish")
	}
	task.ProcessAt = at

	qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	handle, err := s.queue.Enqueue(qctx, task)
	if err != nil {
		s.log.Error("failed to queue publish", "post_id", post.ID, "error", err)
		return nil, common.Errf(http.StatusInternalServerError, "failed to queue publish")
	}
	if err := s.repo.SetEventID(qctx, post.ID, handle); err != nil {
		s.log.Warn("failed to record publish handle", "post_id", post.ID, "error", err)
	}

	s.log.Info("post scheduled", "post_id", post.ID, "content_item_id", post.ContentItemID, "at", at)
	return &dto.SchedulePostResponse{ID: post.ID, Status: statusScheduled}, nil
}

// Cancel removes the scheduled post of a content item. A publish task that
// is already queued finds no row and does nothing.
func (s *SchedulingService) Cancel(ctx context.Context, workspaceID, contentItemID string) error {
	if err := common.CheckContext(ctx); err != nil {
		return err
	}

	if err := s.repo.Cancel(ctx, workspaceID, contentItemID); err != nil {
		return common.FromRepoError(err, "scheduled post not found", "failed to cancel scheduled post")
	}
	return nil
}

func (s *SchedulingService) Upcoming(ctx context.Context, userID string, limit int) ([]dto.ScheduledPostResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	posts, err := s.repo.Upcoming(ctx, userID, s.now(), common.ClampLimit(limit, DefaultUpcomingLimit))
	if err != nil {
		return nil, common.FromRepoError(err, "no scheduled posts", "failed to list scheduled posts")
	}

	out := make([]dto.ScheduledPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toResponse(p))
	}
	return out, nil
}

func toResponse(p models.ScheduledPost) dto.ScheduledPostResponse {
	resp := dto.ScheduledPostResponse{
		ID:            p.ID,
		ContentItemID: p.ContentItemID,
		ScheduledAt:   p.ScheduledAt,
		Timezone:      p.Timezone,
		Status:        string(p.Status),
		Error:         p.Error,
		PublishedAt:   p.PublishedAt,
	}
	if item := p.ContentItem; item != nil {
		resp.ContentItem = &dto.ContentSummary{
			ID:            item.ID,
			Platform:      item.Platform,
			Theme:         item.Theme,
			Hook:          item.Hook,
			ContentPillar: item.ContentPillar,
			Status:        string(item.Status),
		}
	}
	return resp
}
