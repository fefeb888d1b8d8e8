package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/job"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/worker"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db, now: time.Now}
}

var (
	_ job.JobRepoInterface = (*JobRepository)(nil)
	_ worker.JobStore      = (*JobRepository)(nil)
)

// CreateCharged deducts cost from the owner's balance and inserts the job in
// one transaction. The deduction is a conditional update so two concurrent
// submissions cannot both spend the same credits.
func (r *JobRepository) CreateCharged(ctx context.Context, j *models.Job, cost int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND credits >= ?", j.UserID, cost).
			Update("credits", gorm.Expr("credits - ?", cost))
		if res.Error != nil {
			return fmt.Errorf("deduct credits: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&models.User{}).Where("id = ?", j.UserID).Count(&n).Error; err != nil {
				return fmt.Errorf("lookup user: %w", err)
			}
			if n == 0 {
				return fmt.Errorf("user %s: %w", j.UserID, common.ErrNotFound)
			}
			return common.ErrInsufficientCredits
		}

		j.Status = config.JobStatusPending
		j.CreditsUsed = cost
		if err := tx.Create(j).Error; err != nil {
			return fmt.Errorf("create job: %w", err)
		}
		return nil
	})
}

func (r *JobRepository) Get(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	if err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

// GetForUser scopes the lookup to the owner. Another user's job is
// indistinguishable from a missing one.
func (r *JobRepository) GetForUser(ctx context.Context, id, userID string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&j).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) SetExecutionHandle(ctx context.Context, id, handle string) error {
	if err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		Update("execution_handle", handle).Error; err != nil {
		return fmt.Errorf("set execution handle: %w", err)
	}
	return nil
}

// ListStalePending returns PENDING jobs created before the cutoff, oldest
// first.
func (r *JobRepository) ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", config.JobStatusPending, createdBefore).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list stale jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) MarkRunning(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND status = ?", id, config.JobStatusPending).
		Update("status", config.JobStatusRunning)
	if res.Error != nil {
		return false, fmt.Errorf("mark running: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// MarkFailed records msg on a job that has not reached a terminal state.
func (r *JobRepository) MarkFailed(ctx context.Context, id, msg string) error {
	now := r.now()
	res := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND status IN ?", id, []config.JobStatus{config.JobStatusPending, config.JobStatusRunning}).
		Updates(map[string]any{
			"status":       config.JobStatusFailed,
			"error":        msg,
			"completed_at": &now,
		})
	if res.Error != nil {
		return fmt.Errorf("mark failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrStaleTransition
	}
	return nil
}

// ReleaseRunning hands an interrupted job back to PENDING so the janitor or
// a queue retry can claim it again.
func (r *JobRepository) ReleaseRunning(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND status = ?", id, config.JobStatusRunning).
		Update("status", config.JobStatusPending).Error; err != nil {
		return fmt.Errorf("release job: %w", err)
	}
	return nil
}

// CompleteContentJob stores the draft item, completes the job and bumps the
// active stats counter together.
func (r *JobRepository) CompleteContentJob(ctx context.Context, id string, result datatypes.JSON, item *models.ContentItem) error {
	now := r.now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.complete(tx, id, result, now); err != nil {
			return err
		}

		if item != nil {
			if err := tx.Create(item).Error; err != nil {
				return fmt.Errorf("create content item: %w", err)
			}

			if err := tx.Model(&models.DashboardStats{}).
				Where("workspace_id = ? AND period_end >= ?", item.WorkspaceID, activeSince(now)).
				Update("content_generated_count", gorm.Expr("content_generated_count + ?", 1)).Error; err != nil {
				return fmt.Errorf("bump content count: %w", err)
			}
		}
		return nil
	})
}

// CompleteResearchJob appends the report with its topics, completes the job
// and sets the topic count on active stats rows.
func (r *JobRepository) CompleteResearchJob(ctx context.Context, id string, result datatypes.JSON, report *models.TrendReport) error {
	now := r.now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.complete(tx, id, result, now); err != nil {
			return err
		}

		if err := tx.Create(report).Error; err != nil {
			return fmt.Errorf("create trend report: %w", err)
		}

		if err := tx.Model(&models.DashboardStats{}).
			Where("workspace_id = ? AND period_end >= ?", report.WorkspaceID, activeSince(now)).
			Update("trending_topics_count", len(report.Topics)).Error; err != nil {
			return fmt.Errorf("update topic count: %w", err)
		}
		return nil
	})
}

func (r *JobRepository) complete(tx *gorm.DB, id string, result datatypes.JSON, now time.Time) error {
	res := tx.Model(&models.Job{}).
		Where("id = ? AND status = ?", id, config.JobStatusRunning).
		Updates(map[string]any{
			"status":       config.JobStatusCompleted,
			"result":       result,
			"completed_at": &now,
		})
	if res.Error != nil {
		return fmt.Errorf("complete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job %s: %w", id, common.ErrStaleTransition)
	}
	return nil
}

// activeSince is the cutoff for stats rows that still cover the current
// window.
func activeSince(now time.Time) time.Time {
	return now.AddDate(0, 0, -config.StatsWindowDays)
}
