package dashboard

import (
	"context"
	"errors"
	"math"
	"net/http"
	"slices"
	"time"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
	"gorm.io/gorm"
)

const (
	DefaultTopicLimit = 12
	maxPlatforms      = 10
	platformScan      = 50
	weeklyPoints      = 8
)

// EngagementRanges are the accepted day counts for the engagement series.
var EngagementRanges = []int{7, 30, 90}

var ErrInvalidRange = errors.New("days must be 7, 30 or 90")

type DashboardService struct {
	repo  DashboardRepoInterface
	queue queue.Enqueuer
	log   *logger.Logger
	now   func() time.Time
}

func NewDashboardService(repo DashboardRepoInterface, q queue.Enqueuer, log *logger.Logger) *DashboardService {
	return &DashboardService{repo: repo, queue: q, log: log, now: time.Now}
}

var _ DashboardServiceInterface = (*DashboardService)(nil)

// Stats returns the newest rollup. Without one it returns zeros flagged as
// stale.
func (s *DashboardService) Stats(ctx context.Context, workspaceID string) (*dto.DashboardStatsResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	row, err := s.repo.LatestStats(ctx, workspaceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.DashboardStatsResponse{IsStale: true}, nil
	}
	if err != nil {
		return nil, common.FromRepoError(err, "stats not found", "failed to load stats")
	}

	return &dto.DashboardStatsResponse{
		TrendingTopicsCount:    row.TrendingTopicsCount,
		ContentGeneratedCount:  row.ContentGeneratedCount,
		TotalReach:             row.TotalReach,
		EngagementRate:         row.EngagementRate,
		TrendingTopicsChange:   row.TrendingTopicsChange,
		ContentGeneratedChange: row.ContentGeneratedChange,
		TotalReachChange:       row.TotalReachChange,
		EngagementRateChange:   row.EngagementRateChange,
		PeriodStart:            &row.PeriodStart,
		PeriodEnd:              &row.PeriodEnd,
	}, nil
}

func (s *DashboardService) TrendingTopics(ctx context.Context, workspaceID string, limit int) ([]dto.TrendTopicResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	topics, err := s.repo.LatestTopics(ctx, workspaceID, common.ClampLimit(limit, DefaultTopicLimit))
	if err != nil {
		return nil, common.FromRepoError(err, "no trend report", "failed to load trending topics")
	}

	out := make([]dto.TrendTopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, dto.TrendTopicResponse{
			ID:        t.ID,
			Topic:     t.Topic,
			Score:     t.Score,
			Longevity: t.Longevity,
			Platforms: nonNil(t.Platforms),
			Category:  t.Category,
			Growth:    t.Growth,
			Volume:    t.Volume,
			Keywords:  nonNil(t.Keywords),
		})
	}
	return out, nil
}

func (s *DashboardService) Engagement(ctx context.Context, workspaceID string, days int) ([]dto.EngagementPoint, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}
	if !slices.Contains(EngagementRanges, days) {
		return nil, common.NewAPIError(http.StatusBadRequest, ErrInvalidRange.Error(), map[string]any{
			"provided": days,
			"allowed":  EngagementRanges,
		})
	}

	rows, err := s.repo.AnalyticsSince(ctx, workspaceID, s.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, common.FromRepoError(err, "no analytics", "failed to load engagement")
	}

	out := make([]dto.EngagementPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.EngagementPoint{
			Date:       r.Date.Format(time.DateOnly),
			Engagement: r.Engagement,
			Reach:      r.Reach,
			Followers:  r.Followers,
			Clicks:     r.Clicks,
		})
	}
	return out, nil
}

// Platforms returns the newest share per platform.
func (s *DashboardService) Platforms(ctx context.Context, workspaceID string) ([]dto.PlatformShare, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.RecentPlatformStats(ctx, workspaceID, platformScan)
	if err != nil {
		return nil, common.FromRepoError(err, "no platform stats", "failed to load platform stats")
	}

	seen := make(map[string]bool, len(rows))
	out := make([]dto.PlatformShare, 0, maxPlatforms)
	for _, r := range rows {
		if seen[r.Platform] {
			continue
		}
		seen[r.Platform] = true
		out = append(out, dto.PlatformShare{Name: r.Platform, Value: r.Percentage, Color: r.Color})
		if len(out) == maxPlatforms {
			break
		}
	}
	return out, nil
}

func (s *DashboardService) Pillars(ctx context.Context, workspaceID string) ([]dto.PillarShare, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	counts, err := s.repo.PillarCounts(ctx, workspaceID)
	if err != nil {
		return nil, common.FromRepoError(err, "no content", "failed to load pillar counts")
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		total = 1
	}

	out := make([]dto.PillarShare, 0, len(counts))
	for _, c := range counts {
		color, ok := config.PillarColors[c.Pillar]
		if !ok {
			color = config.DefaultPillarColor
		}
		out = append(out, dto.PillarShare{
			Name:       c.Pillar,
			Count:      c.Count,
			Percentage: math.Round(float64(c.Count)*1000/float64(total)) / 10,
			Color:      color,
		})
	}
	return out, nil
}

// Weekly returns the last eight weeks, oldest first.
func (s *DashboardService) Weekly(ctx context.Context, workspaceID string) ([]dto.WeeklyPoint, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.Weekly(ctx, workspaceID, weeklyPoints)
	if err != nil {
		return nil, common.FromRepoError(err, "no weekly analytics", "failed to load weekly analytics")
	}

	out := make([]dto.WeeklyPoint, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, dto.WeeklyPoint{
			Week:       rows[i].WeekLabel,
			Engagement: rows[i].Engagement,
			Followers:  rows[i].Followers,
		})
	}
	return out, nil
}

func (s *DashboardService) Heatmap(ctx context.Context, workspaceID string) ([]dto.HeatmapRow, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.Heatmap(ctx, workspaceID)
	if err != nil {
		return nil, common.FromRepoError(err, "no heatmap", "failed to load heatmap")
	}

	out := make([]dto.HeatmapRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.HeatmapRow{
			Time: r.TimeSlot,
			Mon:  r.Mon, Tue: r.Tue, Wed: r.Wed, Thu: r.Thu, Fri: r.Fri, Sat: r.Sat, Sun: r.Sun,
		})
	}
	return out, nil
}

func (s *DashboardService) Competitors(ctx context.Context, workspaceID string) ([]dto.CompetitorResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.Competitors(ctx, workspaceID)
	if err != nil {
		return nil, common.FromRepoError(err, "no competitors", "failed to load competitors")
	}

	out := make([]dto.CompetitorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, competitorResponse(r))
	}
	return out, nil
}

func competitorResponse(r models.CompetitorProfile) dto.CompetitorResponse {
	return dto.CompetitorResponse{
		Name:           r.Name,
		Followers:      r.Followers,
		PostsPerMonth:  r.PostsPerMonth,
		EngagementRate: r.EngagementRate,
		GrowthRate:     r.GrowthRate,
		IsYou:          r.IsYou,
	}
}

// TriggerRefresh queues a stats rollup for one workspace.
func (s *DashboardService) TriggerRefresh(ctx context.Context, workspaceID string) error {
	if err := common.CheckContext(ctx); err != nil {
		return err
	}

	task, err := queue.NewTask(config.TaskStatsRefresh, dto.StatsTaskPayload{WorkspaceID: workspaceID})
	if err != nil {
		return common.Errf(http.StatusInternalServerError, "failed to queue refresh")
	}
	if _, err := s.queue.Enqueue(ctx, task); err != nil {
		s.log.Error("failed to queue stats refresh", "workspace_id", workspaceID, "error", err)
		return common.Errf(http.StatusInternalServerError, "failed to queue refresh")
	}
	return nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
