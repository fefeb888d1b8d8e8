package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/stats"
	"github.com/joshu-sajeev/trendplanner/internal/worker"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var (
	_ stats.Store           = (*StatsRepository)(nil)
	_ worker.AnalyticsStore = (*StatsRepository)(nil)
)

// LatestTopicCount counts the topics of the newest report, or 0 when the
// workspace has none.
func (r *StatsRepository) LatestTopicCount(ctx context.Context, workspaceID string) (int, error) {
	var report models.TrendReport
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("latest trend report: %w", err)
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(&models.TrendTopic{}).
		Where("report_id = ?", report.ID).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}
	return int(n), nil
}

func (r *StatsRepository) CountContentCreated(ctx context.Context, workspaceID string, from, to time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.ContentItem{}).
		Where("workspace_id = ? AND created_at >= ? AND created_at < ?", workspaceID, from, to).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count content: %w", err)
	}
	return n, nil
}

func (r *StatsRepository) AnalyticsWindow(ctx context.Context, workspaceID string, from, to time.Time) (stats.Window, error) {
	var w stats.Window
	if err := r.db.WithContext(ctx).Model(&models.AnalyticsDay{}).
		Select("COALESCE(SUM(reach), 0) AS reach, COALESCE(AVG(engagement), 0) AS avg_engagement, COUNT(*) AS days").
		Where("workspace_id = ? AND date >= ? AND date < ?", workspaceID, from, to).
		Scan(&w).Error; err != nil {
		return stats.Window{}, fmt.Errorf("aggregate analytics: %w", err)
	}
	return w, nil
}

// UpsertStats writes the row keyed by (workspace_id, period_start) and
// returns the stored version. trending_topics_change is only set on insert.
func (r *StatsRepository) UpsertStats(ctx context.Context, row *models.DashboardStats) (*models.DashboardStats, error) {
	db := r.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "workspace_id"}, {Name: "period_start"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"period_end",
			"trending_topics_count",
			"content_generated_count",
			"total_reach",
			"engagement_rate",
			"content_generated_change",
			"total_reach_change",
			"engagement_rate_change",
			"updated_at",
		}),
	}).Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert dashboard stats: %w", err)
	}

	var saved models.DashboardStats
	if err := db.Where("workspace_id = ? AND period_start = ?", row.WorkspaceID, row.PeriodStart).
		First(&saved).Error; err != nil {
		return nil, fmt.Errorf("reload dashboard stats: %w", err)
	}
	return &saved, nil
}

func (r *StatsRepository) ListWorkspaceIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&models.Workspace{}).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return ids, nil
}

// EnsureAnalyticsDay never overwrites an existing row for the date.
func (r *StatsRepository) EnsureAnalyticsDay(ctx context.Context, workspaceID string, date time.Time) (bool, error) {
	row := models.AnalyticsDay{WorkspaceID: workspaceID, Date: date}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(&row)
	if res.Error != nil {
		return false, fmt.Errorf("ensure analytics day: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}
