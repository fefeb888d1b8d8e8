package dashboard

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/models"
)

// PillarCount is one content pillar with its item count.
type PillarCount struct {
	Pillar string
	Count  int64
}

type DashboardRepoInterface interface {
	LatestStats(ctx context.Context, workspaceID string) (*models.DashboardStats, error)
	LatestTopics(ctx context.Context, workspaceID string, limit int) ([]models.TrendTopic, error)
	AnalyticsSince(ctx context.Context, workspaceID string, since time.Time) ([]models.AnalyticsDay, error)
	RecentPlatformStats(ctx context.Context, workspaceID string, limit int) ([]models.PlatformStat, error)
	PillarCounts(ctx context.Context, workspaceID string) ([]PillarCount, error)
	Weekly(ctx context.Context, workspaceID string, limit int) ([]models.WeeklyAnalytic, error)
	Heatmap(ctx context.Context, workspaceID string) ([]models.EngagementHeatmap, error)
	Competitors(ctx context.Context, workspaceID string) ([]models.CompetitorProfile, error)
}

type DashboardServiceInterface interface {
	Stats(ctx context.Context, workspaceID string) (*dto.DashboardStatsResponse, error)
	TrendingTopics(ctx context.Context, workspaceID string, limit int) ([]dto.TrendTopicResponse, error)
	Engagement(ctx context.Context, workspaceID string, days int) ([]dto.EngagementPoint, error)
	Platforms(ctx context.Context, workspaceID string) ([]dto.PlatformShare, error)
	Pillars(ctx context.Context, workspaceID string) ([]dto.PillarShare, error)
	Weekly(ctx context.Context, workspaceID string) ([]dto.WeeklyPoint, error)
	Heatmap(ctx context.Context, workspaceID string) ([]dto.HeatmapRow, error)
	Competitors(ctx context.Context, workspaceID string) ([]dto.CompetitorResponse, error)
	TriggerRefresh(ctx context.Context, workspaceID string) error
}

type DashboardHandlerInterface interface {
	Stats(c *gin.Context)
	TrendingTopics(c *gin.Context)
	Engagement(c *gin.Context)
	Platforms(c *gin.Context)
	Pillars(c *gin.Context)
	Weekly(c *gin.Context)
	Heatmap(c *gin.Context)
	Competitors(c *gin.Context)
	Refresh(c *gin.Context)
}
