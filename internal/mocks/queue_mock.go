package mocks

import (
	"context"

	"github.com/joshu-sajeev/trendplanner/internal/queue"
	"github.com/stretchr/testify/mock"
)

type EnqueuerMock struct {
	mock.Mock
}

func (m *EnqueuerMock) Enqueue(ctx context.Context, task queue.Task) (string, error) {
	args := m.Called(ctx, task)
	return args.String(0), args.Error(1)
}
