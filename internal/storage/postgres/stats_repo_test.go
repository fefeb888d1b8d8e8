package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_LatestTopicCount(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	n, err := repo.LatestTopicCount(ctx, "ws-1")
	require.NoError(t, err)
	assert.Zero(t, n)

	older := &models.TrendReport{WorkspaceID: "ws-1", CreatedAt: time.Now().Add(-time.Hour),
		Topics: []models.TrendTopic{{Topic: "a"}, {Topic: "b"}, {Topic: "c"}}}
	newer := &models.TrendReport{WorkspaceID: "ws-1", CreatedAt: time.Now(),
		Topics: []models.TrendTopic{{Topic: "x"}, {Topic: "y"}}}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	n, err = repo.LatestTopicCount(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStatsRepository_CountContentCreated(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewStatsRepository(db)
	now := time.Now()

	for _, age := range []time.Duration{time.Hour, 3 * 24 * time.Hour, 10 * 24 * time.Hour} {
		item := seedItem(t, db, "ws-1")
		require.NoError(t, db.Model(item).Update("created_at", now.Add(-age)).Error)
	}
	seedItem(t, db, "ws-2")

	n, err := repo.CountContentCreated(context.Background(), "ws-1", now.AddDate(0, 0, -7), now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountContentCreated(context.Background(), "ws-1", now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStatsRepository_AnalyticsWindow(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewStatsRepository(db)
	now := time.Now()

	rows := []models.AnalyticsDay{
		{WorkspaceID: "ws-1", Date: now.AddDate(0, 0, -1), Reach: 100, Engagement: 10},
		{WorkspaceID: "ws-1", Date: now.AddDate(0, 0, -2), Reach: 300, Engagement: 20},
		{WorkspaceID: "ws-1", Date: now.AddDate(0, 0, -9), Reach: 999, Engagement: 99},
		{WorkspaceID: "ws-2", Date: now.AddDate(0, 0, -1), Reach: 5, Engagement: 5},
	}
	require.NoError(t, db.Create(&rows).Error)

	w, err := repo.AnalyticsWindow(context.Background(), "ws-1", now.AddDate(0, 0, -7), now)
	require.NoError(t, err)
	assert.Equal(t, int64(400), w.Reach)
	assert.InDelta(t, 15.0, w.AvgEngagement, 0.0001)
	assert.Equal(t, int64(2), w.Days)

	empty, err := repo.AnalyticsWindow(context.Background(), "ws-3", now.AddDate(0, 0, -7), now)
	require.NoError(t, err)
	assert.Zero(t, empty.Reach)
	assert.Zero(t, empty.Days)
}

func TestStatsRepository_UpsertStatsIsIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()
	start := time.Now().AddDate(0, 0, -7).Truncate(time.Second)

	row := func() *models.DashboardStats {
		return &models.DashboardStats{
			WorkspaceID:            "ws-1",
			PeriodStart:            start,
			PeriodEnd:              start.AddDate(0, 0, 7),
			TrendingTopicsCount:    12,
			ContentGeneratedCount:  15,
			TotalReach:             4000,
			EngagementRate:         210.5,
			ContentGeneratedChange: 50,
			TotalReachChange:       -12.5,
			EngagementRateChange:   3.1,
		}
	}

	first, err := repo.UpsertStats(ctx, row())
	require.NoError(t, err)
	second, err := repo.UpsertStats(ctx, row())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ContentGeneratedCount, second.ContentGeneratedCount)
	assert.Equal(t, first.TotalReach, second.TotalReach)
	assert.Equal(t, first.EngagementRate, second.EngagementRate)
	assert.Equal(t, first.ContentGeneratedChange, second.ContentGeneratedChange)
	assert.Equal(t, first.TotalReachChange, second.TotalReachChange)
	assert.Equal(t, first.EngagementRateChange, second.EngagementRateChange)

	var n int64
	require.NoError(t, db.Model(&models.DashboardStats{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	changed := row()
	changed.TotalReach = 5000
	third, err := repo.UpsertStats(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.Equal(t, 5000, third.TotalReach)
}

func TestStatsRepository_ListWorkspaceIDs(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewStatsRepository(db)

	require.NoError(t, db.Create(&models.Workspace{ID: "b", Name: "B"}).Error)
	require.NoError(t, db.Create(&models.Workspace{ID: "a", Name: "A"}).Error)

	ids, err := repo.ListWorkspaceIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestStatsRepository_EnsureAnalyticsDayKeepsExisting(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&models.AnalyticsDay{WorkspaceID: "ws-1", Date: day, Reach: 777}).Error)

	inserted, err := repo.EnsureAnalyticsDay(ctx, "ws-1", day)
	require.NoError(t, err)
	assert.False(t, inserted)

	inserted, err = repo.EnsureAnalyticsDay(ctx, "ws-1", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, inserted)

	var kept models.AnalyticsDay
	require.NoError(t, db.Where("workspace_id = ? AND date = ?", "ws-1", day).First(&kept).Error)
	assert.Equal(t, 777, kept.Reach)
}
