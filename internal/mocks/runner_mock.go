package mocks

import (
	"context"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/stretchr/testify/mock"
)

type PostStoreMock struct {
	mock.Mock
}

func (m *PostStoreMock) GetScheduledPost(ctx context.Context, id string) (*models.ScheduledPost, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*models.ScheduledPost)
	return post, args.Error(1)
}

func (m *PostStoreMock) MarkPostProcessing(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PostStoreMock) MarkPostPublished(ctx context.Context, id string, scheduledAt, at time.Time) (bool, error) {
	args := m.Called(ctx, id, scheduledAt, at)
	return args.Bool(0), args.Error(1)
}

func (m *PostStoreMock) MarkPostFailed(ctx context.Context, id string, scheduledAt time.Time, msg string) (bool, error) {
	args := m.Called(ctx, id, scheduledAt, msg)
	return args.Bool(0), args.Error(1)
}

type StatsRefresherMock struct {
	mock.Mock
}

func (m *StatsRefresherMock) RefreshWorkspace(ctx context.Context, workspaceID string) (*models.DashboardStats, error) {
	args := m.Called(ctx, workspaceID)
	row, _ := args.Get(0).(*models.DashboardStats)
	return row, args.Error(1)
}

func (m *StatsRefresherMock) RefreshAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type AnalyticsStoreMock struct {
	mock.Mock
}

func (m *AnalyticsStoreMock) ListWorkspaceIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *AnalyticsStoreMock) EnsureAnalyticsDay(ctx context.Context, workspaceID string, date time.Time) (bool, error) {
	args := m.Called(ctx, workspaceID, date)
	return args.Bool(0), args.Error(1)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(ctx context.Context, post *models.ScheduledPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

type GeneratorMock struct {
	mock.Mock
}

func (m *GeneratorMock) Generate(ctx context.Context, instructions, input string) (string, error) {
	args := m.Called(ctx, instructions, input)
	return args.String(0), args.Error(1)
}
