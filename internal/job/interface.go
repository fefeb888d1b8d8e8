package job

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/models"
)

// JobRepoInterface defines the contract for job repository operations.
type JobRepoInterface interface {
	// CreateCharged deducts cost from the owner's credits and inserts the job
	// in one transaction.
	CreateCharged(ctx context.Context, job *models.Job, cost int) error
	GetForUser(ctx context.Context, id, userID string) (*models.Job, error)
	SetExecutionHandle(ctx context.Context, id, handle string) error
	ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]models.Job, error)
}

// JobServiceInterface defines the contract for job dispatch operations.
type JobServiceInterface interface {
	SubmitContentGeneration(ctx context.Context, userID, workspaceID string, req *dto.GenerateContentRequest) (*dto.SubmitJobResponse, error)
	SubmitTrendResearch(ctx context.Context, userID, workspaceID string, req *dto.ResearchTrendsRequest) (*dto.SubmitJobResponse, error)
	GetJob(ctx context.Context, userID, id string) (*dto.JobResponse, error)
	RequeueStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// JobHandlerInterface defines the contract for HTTP request handlers.
type JobHandlerInterface interface {
	GenerateContent(c *gin.Context)
	ResearchTrends(c *gin.Context)
	Get(c *gin.Context)
}
