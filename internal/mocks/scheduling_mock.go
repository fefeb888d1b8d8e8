package mocks

import (
	"context"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/stretchr/testify/mock"
)

type ScheduleRepoMock struct {
	mock.Mock
}

func (m *ScheduleRepoMock) Upsert(ctx context.Context, post *models.ScheduledPost) (*models.ScheduledPost, error) {
	args := m.Called(ctx, post)
	saved, _ := args.Get(0).(*models.ScheduledPost)
	return saved, args.Error(1)
}

func (m *ScheduleRepoMock) SetEventID(ctx context.Context, id, eventID string) error {
	args := m.Called(ctx, id, eventID)
	return args.Error(0)
}

func (m *ScheduleRepoMock) Cancel(ctx context.Context, workspaceID, contentItemID string) error {
	args := m.Called(ctx, workspaceID, contentItemID)
	return args.Error(0)
}

func (m *ScheduleRepoMock) Upcoming(ctx context.Context, userID string, from time.Time, limit int) ([]models.ScheduledPost, error) {
	args := m.Called(ctx, userID, from, limit)
	posts, _ := args.Get(0).([]models.ScheduledPost)
	return posts, args.Error(1)
}

type SchedulingServiceMock struct {
	mock.Mock
}

func (m *SchedulingServiceMock) Schedule(ctx context.Context, userID, workspaceID string, req *dto.SchedulePostRequest) (*dto.SchedulePostResponse, error) {
	args := m.Called(ctx, userID, workspaceID, req)
	resp, _ := args.Get(0).(*dto.SchedulePostResponse)
	return resp, args.Error(1)
}

func (m *SchedulingServiceMock) Cancel(ctx context.Context, workspaceID, contentItemID string) error {
	args := m.Called(ctx, workspaceID, contentItemID)
	return args.Error(0)
}

func (m *SchedulingServiceMock) Upcoming(ctx context.Context, userID string, limit int) ([]dto.ScheduledPostResponse, error) {
	args := m.Called(ctx, userID, limit)
	posts, _ := args.Get(0).([]dto.ScheduledPostResponse)
	return posts, args.Error(1)
}
