package mocks

import (
	"context"

	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/content"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/stretchr/testify/mock"
)

type ContentRepoMock struct {
	mock.Mock
}

func (m *ContentRepoMock) List(ctx context.Context, workspaceID string, f content.ListFilter) ([]models.ContentItem, error) {
	args := m.Called(ctx, workspaceID, f)
	items, _ := args.Get(0).([]models.ContentItem)
	return items, args.Error(1)
}

func (m *ContentRepoMock) UpdateStatus(ctx context.Context, workspaceID, id string, status config.ContentStatus) (*models.ContentItem, error) {
	args := m.Called(ctx, workspaceID, id, status)
	item, _ := args.Get(0).(*models.ContentItem)
	return item, args.Error(1)
}

type ContentServiceMock struct {
	mock.Mock
}

func (m *ContentServiceMock) List(ctx context.Context, workspaceID string, f content.ListFilter) (*dto.ContentListResponse, error) {
	args := m.Called(ctx, workspaceID, f)
	resp, _ := args.Get(0).(*dto.ContentListResponse)
	return resp, args.Error(1)
}

func (m *ContentServiceMock) UpdateStatus(ctx context.Context, workspaceID, id string, status config.ContentStatus) (*dto.ContentItemResponse, error) {
	args := m.Called(ctx, workspaceID, id, status)
	resp, _ := args.Get(0).(*dto.ContentItemResponse)
	return resp, args.Error(1)
}
