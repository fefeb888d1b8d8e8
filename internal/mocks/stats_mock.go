package mocks

import (
	"context"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/stats"
	"github.com/stretchr/testify/mock"
)

type StatsStoreMock struct {
	mock.Mock
}

func (m *StatsStoreMock) LatestTopicCount(ctx context.Context, workspaceID string) (int, error) {
	args := m.Called(ctx, workspaceID)
	return args.Int(0), args.Error(1)
}

func (m *StatsStoreMock) CountContentCreated(ctx context.Context, workspaceID string, from, to time.Time) (int64, error) {
	args := m.Called(ctx, workspaceID, from, to)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *StatsStoreMock) AnalyticsWindow(ctx context.Context, workspaceID string, from, to time.Time) (stats.Window, error) {
	args := m.Called(ctx, workspaceID, from, to)
	w, _ := args.Get(0).(stats.Window)
	return w, args.Error(1)
}

func (m *StatsStoreMock) UpsertStats(ctx context.Context, row *models.DashboardStats) (*models.DashboardStats, error) {
	args := m.Called(ctx, row)
	saved, _ := args.Get(0).(*models.DashboardStats)
	return saved, args.Error(1)
}

func (m *StatsStoreMock) ListWorkspaceIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
