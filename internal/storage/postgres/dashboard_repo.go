package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/dashboard"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

var _ dashboard.DashboardRepoInterface = (*DashboardRepository)(nil)

func (r *DashboardRepository) LatestStats(ctx context.Context, workspaceID string) (*models.DashboardStats, error) {
	var s models.DashboardStats
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("period_end DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dashboard stats: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("latest dashboard stats: %w", err)
	}
	return &s, nil
}

// LatestTopics returns the highest scoring topics of the newest report.
func (r *DashboardRepository) LatestTopics(ctx context.Context, workspaceID string, limit int) ([]models.TrendTopic, error) {
	var report models.TrendReport
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("score DESC").Limit(limit)
		}).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.TrendTopic{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest topics: %w", err)
	}
	return report.Topics, nil
}

func (r *DashboardRepository) AnalyticsSince(ctx context.Context, workspaceID string, since time.Time) ([]models.AnalyticsDay, error) {
	var rows []models.AnalyticsDay
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND date >= ?", workspaceID, since).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("analytics since: %w", err)
	}
	return rows, nil
}

func (r *DashboardRepository) RecentPlatformStats(ctx context.Context, workspaceID string, limit int) ([]models.PlatformStat, error) {
	var rows []models.PlatformStat
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	return rows, nil
}

func (r *DashboardRepository) PillarCounts(ctx context.Context, workspaceID string) ([]dashboard.PillarCount, error) {
	var rows []dashboard.PillarCount
	if err := r.db.WithContext(ctx).Model(&models.ContentItem{}).
		Select("content_pillar AS pillar, COUNT(*) AS count").
		Where("workspace_id = ?", workspaceID).
		Group("content_pillar").
		Order("content_pillar").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("pillar counts: %w", err)
	}
	return rows, nil
}

// Weekly returns the newest rows first.
func (r *DashboardRepository) Weekly(ctx context.Context, workspaceID string, limit int) ([]models.WeeklyAnalytic, error) {
	var rows []models.WeeklyAnalytic
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("week_start DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("weekly analytics: %w", err)
	}
	return rows, nil
}

func (r *DashboardRepository) Heatmap(ctx context.Context, workspaceID string) ([]models.EngagementHeatmap, error) {
	var rows []models.EngagementHeatmap
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("time_slot ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("engagement heatmap: %w", err)
	}
	return rows, nil
}

func (r *DashboardRepository) Competitors(ctx context.Context, workspaceID string) ([]models.CompetitorProfile, error) {
	var rows []models.CompetitorProfile
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("is_you DESC").
		Order("followers DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("competitors: %w", err)
	}
	return rows, nil
}
