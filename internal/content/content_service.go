package content

import (
	"context"
	"net/http"
	"slices"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/models"
)

const DefaultPageSize = 30

type ContentService struct {
	repo ContentRepoInterface
	log  *logger.Logger
}

func NewContentService(repo ContentRepoInterface, log *logger.Logger) *ContentService {
	return &ContentService{repo: repo, log: log}
}

var _ ContentServiceInterface = (*ContentService)(nil)

// List returns one page of content items ordered by scheduled day. The
// next cursor is set when another page exists.
func (s *ContentService) List(ctx context.Context, workspaceID string, f ListFilter) (*dto.ContentListResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}
	if f.Status != "" && !slices.Contains(config.AllowedContentStatuses, f.Status) {
		return nil, common.NewAPIError(http.StatusBadRequest, "invalid status filter", map[string]any{
			"status": string(f.Status),
		})
	}
	f.Limit = common.ClampLimit(f.Limit, DefaultPageSize)

	items, err := s.repo.List(ctx, workspaceID, f)
	if err != nil {
		return nil, common.FromRepoError(err, "cursor not found", "failed to list content")
	}

	resp := &dto.ContentListResponse{Items: make([]dto.ContentItemResponse, 0, len(items))}
	if len(items) > f.Limit {
		next := items[f.Limit].ID
		resp.NextCursor = &next
		items = items[:f.Limit]
	}
	for _, it := range items {
		resp.Items = append(resp.Items, toResponse(it))
	}
	return resp, nil
}

func (s *ContentService) UpdateStatus(ctx context.Context, workspaceID, id string, status config.ContentStatus) (*dto.ContentItemResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}
	if !slices.Contains(config.AllowedContentStatuses, status) {
		return nil, common.NewAPIError(http.StatusBadRequest, "invalid status", map[string]any{
			"status": string(status),
		})
	}

	item, err := s.repo.UpdateStatus(ctx, workspaceID, id, status)
	if err != nil {
		return nil, common.FromRepoError(err, "content item not found", "failed to update content status")
	}

	s.log.Info("content status updated", "content_item_id", id, "status", status)
	resp := toResponse(*item)
	return &resp, nil
}

func toResponse(it models.ContentItem) dto.ContentItemResponse {
	hashtags := []string(it.Hashtags)
	if hashtags == nil {
		hashtags = []string{}
	}
	return dto.ContentItemResponse{
		ID:                   it.ID,
		Platform:             it.Platform,
		PostType:             it.PostType,
		Theme:                it.Theme,
		Hook:                 it.Hook,
		Caption:              it.Caption,
		Hashtags:             hashtags,
		CTA:                  it.CTA,
		BestTime:             it.BestTime,
		ContentPillar:        it.ContentPillar,
		EngagementPrediction: it.EngagementPrediction,
		Status:               string(it.Status),
		ScheduledDay:         it.ScheduledDay,
		ScheduledDate:        it.ScheduledDate,
		Script:               it.Script,
		Slides:               it.Slides,
		ThreadParts:          it.ThreadParts,
		CreatedAt:            it.CreatedAt,
	}
}
