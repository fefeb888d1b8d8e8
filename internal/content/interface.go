package content

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/models"
)

// ListFilter narrows a content listing. Cursor is the id of the first item
// of the page.
type ListFilter struct {
	Status   config.ContentStatus
	Platform string
	Limit    int
	Cursor   string
}

type ContentRepoInterface interface {
	List(ctx context.Context, workspaceID string, f ListFilter) ([]models.ContentItem, error)
	UpdateStatus(ctx context.Context, workspaceID, id string, status config.ContentStatus) (*models.ContentItem, error)
}

type ContentServiceInterface interface {
	List(ctx context.Context, workspaceID string, f ListFilter) (*dto.ContentListResponse, error)
	UpdateStatus(ctx context.Context, workspaceID, id string, status config.ContentStatus) (*dto.ContentItemResponse, error)
}

type ContentHandlerInterface interface {
	List(c *gin.Context)
	UpdateStatus(c *gin.Context)
}
