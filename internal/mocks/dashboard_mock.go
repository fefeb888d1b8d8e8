package mocks

import (
	"context"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/dashboard"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/stretchr/testify/mock"
)

type DashboardRepoMock struct {
	mock.Mock
}

func (m *DashboardRepoMock) LatestStats(ctx context.Context, workspaceID string) (*models.DashboardStats, error) {
	args := m.Called(ctx, workspaceID)
	row, _ := args.Get(0).(*models.DashboardStats)
	return row, args.Error(1)
}

func (m *DashboardRepoMock) LatestTopics(ctx context.Context, workspaceID string, limit int) ([]models.TrendTopic, error) {
	args := m.Called(ctx, workspaceID, limit)
	rows, _ := args.Get(0).([]models.TrendTopic)
	return rows, args.Error(1)
}

func (m *DashboardRepoMock) AnalyticsSince(ctx context.Context, workspaceID string, since time.Time) ([]models.AnalyticsDay, error) {
	args := m.Called(ctx, workspaceID, since)
	rows, _ := args.Get(0).([]models.AnalyticsDay)
	return rows, args.Error(1)
}

func (m *DashboardRepoMock) RecentPlatformStats(ctx context.Context, workspaceID string, limit int) ([]models.PlatformStat, error) {
	args := m.Called(ctx, workspaceID, limit)
	rows, _ := args.Get(0).([]models.PlatformStat)
	return rows, args.Error(1)
}

func (m *DashboardRepoMock) PillarCounts(ctx context.Context, workspaceID string) ([]dashboard.PillarCount, error) {
	args := m.Called(ctx, workspaceID)
	rows, _ := args.Get(0).([]dashboard.PillarCount)
	return rows, args.Error(1)
}

func (m *DashboardRepoMock) Weekly(ctx context.Context, workspaceID string, limit int) ([]models.WeeklyAnalytic, error) {
	args := m.Called(ctx, workspaceID, limit)
	rows, _ := args.Get(0).([]models.WeeklyAnalytic)
	return rows, args.Error(1)
}

func (m *DashboardRepoMock) Heatmap(ctx context.Context, workspaceID string) ([]models.EngagementHeatmap, error) {
	args := m.Called(ctx, workspaceID)
	rows, _ := args.Get(0).([]models.EngagementHeatmap)
	return rows, args.Error(1)
}

func (m *DashboardRepoMock) Competitors(ctx context.Context, workspaceID string) ([]models.CompetitorProfile, error) {
	args := m.Called(ctx, workspaceID)
	rows, _ := args.Get(0).([]models.CompetitorProfile)
	return rows, args.Error(1)
}

type DashboardServiceMock struct {
	mock.Mock
}

func (m *DashboardServiceMock) Stats(ctx context.Context, workspaceID string) (*dto.DashboardStatsResponse, error) {
	args := m.Called(ctx, workspaceID)
	resp, _ := args.Get(0).(*dto.DashboardStatsResponse)
	return resp, args.Error(1)
}

func (m *DashboardServiceMock) TrendingTopics(ctx context.Context, workspaceID string, limit int) ([]dto.TrendTopicResponse, error) {
	args := m.Called(ctx, workspaceID, limit)
	resp, _ := args.Get(0).([]dto.TrendTopicResponse)
	return resp, args.Error(1)
}

func (m *DashboardServiceMock) Engagement(ctx context.Context, workspaceID string, days int) ([]dto.EngagementPoint, error) {
	args := m.Called(ctx, workspaceID, days)
	resp, _ := args.Get(0).([]dto.EngagementPoint)
	return resp, args.Error(1)
}

func (m *DashboardServiceMock) Platforms(ctx context.Context, workspaceID string) ([]dto.PlatformShare, error) {
	args := m.Called(ctx, workspaceID)
	resp, _ := args.Get(0).([]dto.PlatformShare)
	return resp, args.Error(1)
}

func (m *DashboardServiceMock) Pillars(ctx context.Context, workspaceID string) ([]dto.PillarShare, error) {
	args := m.Called(ctx, workspaceID)
	resp, _ := args.Get(0).([]dto.PillarShare)
	return resp, args.Error(1)
}

func (m *DashboardServiceMock) Weekly(ctx context.Context, workspaceID string) ([]dto.WeeklyPoint, error) {
	args := m.Called(ctx, workspaceID)
	resp, _ := args.Get(0).([]dto.WeeklyPoint)
	return resp, args.Error(1)
}

func (m *DashboardServiceMock) Heatmap(ctx context.Context, workspaceID string) ([]dto.HeatmapRow, error) {
	args := m.Called(ctx, workspaceID)
	resp, _ := args.Get(0).([]dto.HeatmapRow)
	return resp, args.Error(1)
}

func (m *DashboardServiceMock) Competitors(ctx context.Context, workspaceID string) ([]dto.CompetitorResponse, error) {
	args := m.Called(ctx, workspaceID)
	resp, _ := args.Get(0).([]dto.CompetitorResponse)
	return resp, args.Error(1)
}

func (m *DashboardServiceMock) TriggerRefresh(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}
