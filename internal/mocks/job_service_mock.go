package mocks

import (
	"context"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/stretchr/testify/mock"
)

type JobServiceMock struct {
	mock.Mock
}

func (m *JobServiceMock) SubmitContentGeneration(ctx context.Context, userID, workspaceID string, req *dto.GenerateContentRequest) (*dto.SubmitJobResponse, error) {
	args := m.Called(ctx, userID, workspaceID, req)
	resp, _ := args.Get(0).(*dto.SubmitJobResponse)
	return resp, args.Error(1)
}

func (m *JobServiceMock) SubmitTrendResearch(ctx context.Context, userID, workspaceID string, req *dto.ResearchTrendsRequest) (*dto.SubmitJobResponse, error) {
	args := m.Called(ctx, userID, workspaceID, req)
	resp, _ := args.Get(0).(*dto.SubmitJobResponse)
	return resp, args.Error(1)
}

func (m *JobServiceMock) GetJob(ctx context.Context, userID, id string) (*dto.JobResponse, error) {
	args := m.Called(ctx, userID, id)
	resp, _ := args.Get(0).(*dto.JobResponse)
	return resp, args.Error(1)
}

func (m *JobServiceMock) RequeueStale(ctx context.Context, olderThan time.Duration) (int, error) {
	args := m.Called(ctx, olderThan)
	return args.Int(0), args.Error(1)
}
