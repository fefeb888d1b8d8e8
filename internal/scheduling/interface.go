package scheduling

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/models"
)

type ScheduleRepoInterface interface {
	// Upsert creates or reschedules the single post of a content item and
	// marks the item SCHEDULED.
	Upsert(ctx context.Context, post *models.ScheduledPost) (*models.ScheduledPost, error)
	SetEventID(ctx context.Context, id, eventID string) error
	// Cancel deletes the post and reverts the item to DRAFT.
	Cancel(ctx context.Context, workspaceID, contentItemID string) error
	Upcoming(ctx context.Context, userID string, from time.Time, limit int) ([]models.ScheduledPost, error)
}

type SchedulingServiceInterface interface {
	Schedule(ctx context.Context, userID, workspaceID string, req *dto.SchedulePostRequest) (*dto.SchedulePostResponse, error)
	Cancel(ctx context.Context, workspaceID, contentItemID string) error
	Upcoming(ctx context.Context, userID string, limit int) ([]dto.ScheduledPostResponse, error)
}

type SchedulingHandlerInterface interface {
	Schedule(c *gin.Context)
	Cancel(c *gin.Context)
	Upcoming(c *gin.Context)
}
