package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/content"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"gorm.io/gorm"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

var _ content.ContentRepoInterface = (*ContentRepository)(nil)

// List orders by scheduled day then id and returns up to Limit+1 rows so
// the caller can tell whether another page exists. A cursor is the id of
// the first row of the page.
func (r *ContentRepository) List(ctx context.Context, workspaceID string, f content.ListFilter) ([]models.ContentItem, error) {
	q := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Platform != "" {
		q = q.Where("platform = ?", f.Platform)
	}

	if f.Cursor != "" {
		var anchor models.ContentItem
		if err := r.db.WithContext(ctx).
			Where("id = ? AND workspace_id = ?", f.Cursor, workspaceID).
			First(&anchor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("cursor %s: %w", f.Cursor, common.ErrNotFound)
			}
			return nil, fmt.Errorf("load cursor: %w", err)
		}
		day := 0
		if anchor.ScheduledDay != nil {
			day = *anchor.ScheduledDay
		}
		q = q.Where("(COALESCE(scheduled_day, 0) > ?) OR (COALESCE(scheduled_day, 0) = ? AND id >= ?)", day, day, anchor.ID)
	}

	var items []models.ContentItem
	if err := q.Order("COALESCE(scheduled_day, 0) ASC").
		Order("id ASC").
		Limit(f.Limit + 1).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

func (r *ContentRepository) UpdateStatus(ctx context.Context, workspaceID, id string, status config.ContentStatus) (*models.ContentItem, error) {
	res := r.db.WithContext(ctx).Model(&models.ContentItem{}).
		Where("id = ? AND workspace_id = ?", id, workspaceID).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("update content status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("content item %s: %w", id, common.ErrNotFound)
	}

	var item models.ContentItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload content item: %w", err)
	}
	return &item, nil
}
