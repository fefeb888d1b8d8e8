package worker

import (
	"context"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/models"
	"gorm.io/datatypes"
)

// JobStore is the slice of job persistence the runner drives.
type JobStore interface {
	Get(ctx context.Context, id string) (*models.Job, error)
	// MarkRunning moves a PENDING job to RUNNING. It reports false when the
	// job was not PENDING.
	MarkRunning(ctx context.Context, id string) (bool, error)
	MarkFailed(ctx context.Context, id, msg string) error
	// ReleaseRunning returns a RUNNING job to PENDING.
	ReleaseRunning(ctx context.Context, id string) error
	CompleteContentJob(ctx context.Context, id string, result datatypes.JSON, item *models.ContentItem) error
	CompleteResearchJob(ctx context.Context, id string, result datatypes.JSON, report *models.TrendReport) error
}

type PostStore interface {
	GetScheduledPost(ctx context.Context, id string) (*models.ScheduledPost, error)
	MarkPostProcessing(ctx context.Context, id string) (bool, error)
	// MarkPostPublished and MarkPostFailed report false when the post was
	// cancelled or rescheduled after the claim for scheduledAt.
	MarkPostPublished(ctx context.Context, id string, scheduledAt, at time.Time) (bool, error)
	MarkPostFailed(ctx context.Context, id string, scheduledAt time.Time, msg string) (bool, error)
}

type StatsRefresher interface {
	RefreshWorkspace(ctx context.Context, workspaceID string) (*models.DashboardStats, error)
	RefreshAll(ctx context.Context) error
}

type AnalyticsStore interface {
	ListWorkspaceIDs(ctx context.Context) ([]string, error)
	// EnsureAnalyticsDay inserts a zero row unless one exists for the date.
	EnsureAnalyticsDay(ctx context.Context, workspaceID string, date time.Time) (bool, error)
}

// Publisher performs the outbound publish of a scheduled post.
type Publisher interface {
	Publish(ctx context.Context, post *models.ScheduledPost) error
}
