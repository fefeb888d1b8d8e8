package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_LatestStats(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	_, err := repo.LatestStats(ctx, "ws-1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	now := time.Now()
	require.NoError(t, db.Create(&models.DashboardStats{WorkspaceID: "ws-1", PeriodStart: now.AddDate(0, 0, -14), PeriodEnd: now.AddDate(0, 0, -7), TotalReach: 1}).Error)
	require.NoError(t, db.Create(&models.DashboardStats{WorkspaceID: "ws-1", PeriodStart: now.AddDate(0, 0, -7), PeriodEnd: now, TotalReach: 2}).Error)

	got, err := repo.LatestStats(ctx, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalReach)
}

func TestDashboardRepository_LatestTopics(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewDashboardRepository(db)
	ctx := context.Background()

	topics, err := repo.LatestTopics(ctx, "ws-1", 12)
	require.NoError(t, err)
	assert.Empty(t, topics)

	require.NoError(t, db.Create(&models.TrendReport{WorkspaceID: "ws-1", CreatedAt: time.Now().Add(-time.Hour),
		Topics: []models.TrendTopic{{Topic: "stale", Score: 99}}}).Error)
	require.NoError(t, db.Create(&models.TrendReport{WorkspaceID: "ws-1", CreatedAt: time.Now(),
		Topics: []models.TrendTopic{{Topic: "low", Score: 10}, {Topic: "high", Score: 90}, {Topic: "mid", Score: 50}}}).Error)

	topics, err = repo.LatestTopics(ctx, "ws-1", 2)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "high", topics[0].Topic)
	assert.Equal(t, "mid", topics[1].Topic)
}

func TestDashboardRepository_ReferenceReads(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewDashboardRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, db.Create(&[]models.CompetitorProfile{
		{WorkspaceID: "ws-1", Name: "Big", Followers: 900},
		{WorkspaceID: "ws-1", Name: "Me", Followers: 10, IsYou: true},
		{WorkspaceID: "ws-1", Name: "Mid", Followers: 500},
	}).Error)
	comps, err := repo.Competitors(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"Me", "Big", "Mid"}, []string{comps[0].Name, comps[1].Name, comps[2].Name})

	for i := 0; i < 10; i++ {
		require.NoError(t, db.Create(&models.WeeklyAnalytic{
			WorkspaceID: "ws-1", WeekStart: now.AddDate(0, 0, -7*i), WeekLabel: "W",
		}).Error)
	}
	weeks, err := repo.Weekly(ctx, "ws-1", 8)
	require.NoError(t, err)
	require.Len(t, weeks, 8)
	assert.True(t, weeks[0].WeekStart.After(weeks[7].WeekStart))

	require.NoError(t, db.Create(&[]models.AnalyticsDay{
		{WorkspaceID: "ws-1", Date: now.AddDate(0, 0, -2)},
		{WorkspaceID: "ws-1", Date: now.AddDate(0, 0, -1)},
		{WorkspaceID: "ws-1", Date: now.AddDate(0, 0, -40)},
	}).Error)
	days, err := repo.AnalyticsSince(ctx, "ws-1", now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.True(t, days[0].Date.Before(days[1].Date))

	require.NoError(t, db.Create(&models.EngagementHeatmap{WorkspaceID: "ws-1", TimeSlot: "9:00 AM", Mon: 1}).Error)
	rows, err := repo.Heatmap(ctx, "ws-1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, db.Create(&models.PlatformStat{WorkspaceID: "ws-1", Platform: "X", Percentage: 12}).Error)
	stats, err := repo.RecentPlatformStats(ctx, "ws-1", 10)
	require.NoError(t, err)
	assert.Len(t, stats, 1)
}

func TestDashboardRepository_PillarCounts(t *testing.T) {
	db := SetupTestDB(t)
	repo := NewDashboardRepository(db)

	for _, p := range []string{"viral", "viral", "authority"} {
		item := seedItem(t, db, "ws-1")
		require.NoError(t, db.Model(item).Update("content_pillar", p).Error)
	}

	counts, err := repo.PillarCounts(context.Background(), "ws-1")
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "authority", counts[0].Pillar)
	assert.Equal(t, int64(1), counts[0].Count)
	assert.Equal(t, "viral", counts[1].Pillar)
	assert.Equal(t, int64(2), counts[1].Count)
}
