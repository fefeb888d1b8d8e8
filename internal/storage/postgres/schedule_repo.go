package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/scheduling"
	"github.com/joshu-sajeev/trendplanner/internal/worker"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

var (
	_ scheduling.ScheduleRepoInterface = (*ScheduleRepository)(nil)
	_ worker.PostStore                 = (*ScheduleRepository)(nil)
)

// Upsert keys on content_item_id. Rescheduling keeps the post id and resets
// it to PENDING.
func (r *ScheduleRepository) Upsert(ctx context.Context, post *models.ScheduledPost) (*models.ScheduledPost, error) {
	var saved models.ScheduledPost

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ContentItem
		if err := tx.Where("id = ? AND workspace_id = ?", post.ContentItemID, post.WorkspaceID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("content item %s: %w", post.ContentItemID, common.ErrNotFound)
			}
			return fmt.Errorf("load content item: %w", err)
		}

		err := tx.Where("content_item_id = ?", post.ContentItemID).First(&saved).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = *post
			saved.Status = config.PostStatusPending
			if err := tx.Create(&saved).Error; err != nil {
				return fmt.Errorf("create scheduled post: %w", err)
			}
		case err != nil:
			return fmt.Errorf("load scheduled post: %w", err)
		default:
			if err := tx.Model(&saved).Updates(map[string]any{
				"scheduled_at": post.ScheduledAt,
				"timezone":     post.Timezone,
				"user_id":      post.UserID,
				"status":       config.PostStatusPending,
				"error":        "",
				"published_at": nil,
			}).Error; err != nil {
				return fmt.Errorf("reschedule post: %w", err)
			}
		}

		scheduledAt := post.ScheduledAt
		if err := tx.Model(&item).Updates(map[string]any{
			"status":         config.ContentStatusScheduled,
			"scheduled_date": &scheduledAt,
		}).Error; err != nil {
			return fmt.Errorf("mark item scheduled: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ScheduleRepository) SetEventID(ctx context.Context, id, eventID string) error {
	if err := r.db.WithContext(ctx).Model(&models.ScheduledPost{}).
		Where("id = ?", id).
		Update("event_id", eventID).Error; err != nil {
		return fmt.Errorf("set event id: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Cancel(ctx context.Context, workspaceID, contentItemID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("content_item_id = ? AND workspace_id = ?", contentItemID, workspaceID).
			Delete(&models.ScheduledPost{})
		if res.Error != nil {
			return fmt.Errorf("delete scheduled post: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("scheduled post for %s: %w", contentItemID, common.ErrNotFound)
		}

		if err := tx.Model(&models.ContentItem{}).
			Where("id = ?", contentItemID).
			Updates(map[string]any{
				"status":         config.ContentStatusDraft,
				"scheduled_date": nil,
			}).Error; err != nil {
			return fmt.Errorf("revert content item: %w", err)
		}
		return nil
	})
}

// Upcoming lists the owner's PENDING posts due at or after from.
func (r *ScheduleRepository) Upcoming(ctx context.Context, userID string, from time.Time, limit int) ([]models.ScheduledPost, error) {
	var posts []models.ScheduledPost
	if err := r.db.WithContext(ctx).
		Preload("ContentItem").
		Where("user_id = ? AND status = ? AND scheduled_at >= ?", userID, config.PostStatusPending, from).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list upcoming posts: %w", err)
	}
	return posts, nil
}

func (r *ScheduleRepository) GetScheduledPost(ctx context.Context, id string) (*models.ScheduledPost, error) {
	var post models.ScheduledPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("scheduled post %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("get scheduled post: %w", err)
	}
	return &post, nil
}

// MarkPostProcessing claims a post. Posts already PROCESSING are claimable
// again so a retried publish can resume.
func (r *ScheduleRepository) MarkPostProcessing(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.ScheduledPost{}).
		Where("id = ? AND status IN ?", id, []config.PostStatus{config.PostStatusPending, config.PostStatusProcessing}).
		Update("status", config.PostStatusProcessing)
	if res.Error != nil {
		return false, fmt.Errorf("mark processing: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// MarkPostPublished records a successful publish for the claim made at
// scheduledAt. It reports false, and writes nothing, when the post was
// cancelled, rescheduled or is no longer PROCESSING.
func (r *ScheduleRepository) MarkPostPublished(ctx context.Context, id string, scheduledAt, at time.Time) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, ok, err := claimedPost(tx, id, scheduledAt)
		if err != nil || !ok {
			return err
		}

		res := tx.Model(&models.ScheduledPost{}).
			Where("id = ? AND status = ?", id, config.PostStatusProcessing).
			Updates(map[string]any{
				"status":       config.PostStatusPublished,
				"published_at": &at,
				"error":        "",
			})
		if res.Error != nil {
			return fmt.Errorf("mark post published: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&models.ContentItem{}).
			Where("id = ?", post.ContentItemID).
			Update("status", config.ContentStatusPublished).Error; err != nil {
			return fmt.Errorf("mark item published: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// MarkPostFailed records msg for the claim made at scheduledAt, with the
// same not-applied rules as MarkPostPublished.
func (r *ScheduleRepository) MarkPostFailed(ctx context.Context, id string, scheduledAt time.Time, msg string) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, ok, err := claimedPost(tx, id, scheduledAt); err != nil || !ok {
			return err
		}

		res := tx.Model(&models.ScheduledPost{}).
			Where("id = ? AND status = ?", id, config.PostStatusProcessing).
			Updates(map[string]any{
				"status": config.PostStatusFailed,
				"error":  msg,
			})
		if res.Error != nil {
			return fmt.Errorf("mark post failed: %w", res.Error)
		}
		applied = res.RowsAffected == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// claimedPost loads the post a publish task claimed. ok is false when the
// row is gone, not PROCESSING, or due at a different time than the task.
func claimedPost(tx *gorm.DB, id string, scheduledAt time.Time) (*models.ScheduledPost, bool, error) {
	var post models.ScheduledPost
	err := tx.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load scheduled post: %w", err)
	}
	if post.Status != config.PostStatusProcessing || !post.ScheduledAt.Equal(scheduledAt) {
		return nil, false, nil
	}
	return &post, true, nil
}
