package mocks

import (
	"context"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

type JobRepoMock struct {
	mock.Mock
}

func (m *JobRepoMock) CreateCharged(ctx context.Context, job *models.Job, cost int) error {
	args := m.Called(ctx, job, cost)
	return args.Error(0)
}

func (m *JobRepoMock) GetForUser(ctx context.Context, id, userID string) (*models.Job, error) {
	args := m.Called(ctx, id, userID)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *JobRepoMock) SetExecutionHandle(ctx context.Context, id, handle string) error {
	args := m.Called(ctx, id, handle)
	return args.Error(0)
}

func (m *JobRepoMock) ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]models.Job, error) {
	args := m.Called(ctx, createdBefore, limit)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Error(1)
}

// JobStoreMock covers the runner side of job persistence.
type JobStoreMock struct {
	mock.Mock
}

func (m *JobStoreMock) Get(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *JobStoreMock) MarkRunning(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *JobStoreMock) MarkFailed(ctx context.Context, id, msg string) error {
	args := m.Called(ctx, id, msg)
	return args.Error(0)
}

func (m *JobStoreMock) ReleaseRunning(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JobStoreMock) CompleteContentJob(ctx context.Context, id string, result datatypes.JSON, item *models.ContentItem) error {
	args := m.Called(ctx, id, result, item)
	return args.Error(0)
}

func (m *JobStoreMock) CompleteResearchJob(ctx context.Context, id string, result datatypes.JSON, report *models.TrendReport) error {
	args := m.Called(ctx, id, result, report)
	return args.Error(0)
}
