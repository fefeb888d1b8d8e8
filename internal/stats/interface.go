package stats

import (
	"context"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/models"
)

// Window aggregates AnalyticsDay rows over a half-open date range.
type Window struct {
	Reach         int64
	AvgEngagement float64
	Days          int64
}

type Store interface {
	LatestTopicCount(ctx context.Context, workspaceID string) (int, error)
	CountContentCreated(ctx context.Context, workspaceID string, from, to time.Time) (int64, error)
	AnalyticsWindow(ctx context.Context, workspaceID string, from, to time.Time) (Window, error)
	UpsertStats(ctx context.Context, row *models.DashboardStats) (*models.DashboardStats, error)
	ListWorkspaceIDs(ctx context.Context) ([]string, error)
}
