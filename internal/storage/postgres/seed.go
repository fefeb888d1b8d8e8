package postgres

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DemoUserID      = "demo-user"
	DemoWorkspaceID = "demo-workspace"
)

type heatmapSeed struct {
	slot                              string
	mon, tue, wed, thu, fri, sat, sun int
}

var demoHeatmap = []heatmapSeed{
	{"9:00 AM", 72, 68, 75, 70, 65, 45, 40},
	{"12:00 PM", 85, 88, 90, 87, 82, 55, 50},
	{"3:00 PM", 78, 80, 82, 79, 75, 60, 55},
	{"6:00 PM", 92, 88, 85, 90, 88, 70, 65},
	{"9:00 PM", 65, 60, 62, 68, 75, 80, 78},
	{"11:00 PM", 35, 32, 30, 38, 55, 62, 58},
}

var demoPlatforms = []models.PlatformStat{
	{Platform: "Instagram", Percentage: 35, Color: "#8B5CF6"},
	{Platform: "TikTok", Percentage: 28, Color: "#EC4899"},
	{Platform: "LinkedIn", Percentage: 18, Color: "#3B82F6"},
	{Platform: "X", Percentage: 12, Color: "#1F2937"},
	{Platform: "YouTube", Percentage: 7, Color: "#EF4444"},
}

var demoCompetitors = []models.CompetitorProfile{
	{Name: "Jane Doe", Followers: 12400, PostsPerMonth: 28, EngagementRate: 5.2, GrowthRate: 18, IsYou: true},
	{Name: "Creator A", Followers: 24800, PostsPerMonth: 35, EngagementRate: 3.8, GrowthRate: 12},
	{Name: "Creator B", Followers: 18600, PostsPerMonth: 22, EngagementRate: 4.5, GrowthRate: 21},
	{Name: "Brand Account", Followers: 51200, PostsPerMonth: 60, EngagementRate: 2.1, GrowthRate: 5},
	{Name: "Niche Influencer", Followers: 8900, PostsPerMonth: 15, EngagementRate: 6.1, GrowthRate: 28},
}

// SeedDemoData creates the demo user and workspace with reference rows.
// Running it again leaves existing rows untouched.
func SeedDemoData(ctx context.Context, db *gorm.DB, now time.Time, rnd *rand.Rand, log *logger.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.User{
			ID:          DemoUserID,
			Email:       "jane@example.com",
			Name:        "Jane Doe",
			Plan:        "PRO",
			Credits:     500,
			WorkspaceID: DemoWorkspaceID,
		}).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Workspace{
			ID:       DemoWorkspaceID,
			Name:     "Jane Doe's Workspace",
			Niche:    "SaaS & Tech",
			Audience: "Founders & Entrepreneurs",
			Market:   "United States",
			Tone:     "Educational",
		}).Error; err != nil {
			return fmt.Errorf("seed workspace: %w", err)
		}
		log.Info("Seeded account", "user", DemoUserID, "workspace", DemoWorkspaceID)

		for _, h := range demoHeatmap {
			row := models.EngagementHeatmap{
				WorkspaceID: DemoWorkspaceID, TimeSlot: h.slot,
				Mon: h.mon, Tue: h.tue, Wed: h.wed, Thu: h.thu, Fri: h.fri, Sat: h.sat, Sun: h.sun,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "time_slot"}},
				DoUpdates: clause.AssignmentColumns([]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("seed heatmap: %w", err)
			}
		}

		if err := seedOnce(tx, &models.PlatformStat{}, demoPlatforms); err != nil {
			return fmt.Errorf("seed platform stats: %w", err)
		}
		if err := seedOnce(tx, &models.CompetitorProfile{}, demoCompetitors); err != nil {
			return fmt.Errorf("seed competitors: %w", err)
		}

		today := midnight(now)
		for i := 29; i >= 0; i-- {
			day := models.AnalyticsDay{
				WorkspaceID: DemoWorkspaceID,
				Date:        today.AddDate(0, 0, -i),
				Engagement:  rnd.IntN(300) + 100,
				Reach:       rnd.IntN(5000) + 1000,
				Followers:   rnd.IntN(50) + 10,
				Clicks:      rnd.IntN(200) + 50,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "date"}},
				DoNothing: true,
			}).Create(&day).Error; err != nil {
				return fmt.Errorf("seed analytics day: %w", err)
			}
		}

		for i := 7; i >= 0; i-- {
			week := models.WeeklyAnalytic{
				WorkspaceID: DemoWorkspaceID,
				WeekStart:   today.AddDate(0, 0, -7*i),
				WeekLabel:   fmt.Sprintf("W%d", 8-i),
				Engagement:  rnd.IntN(1000) + 500,
				Followers:   rnd.IntN(200) + 50,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "week_start"}},
				DoNothing: true,
			}).Create(&week).Error; err != nil {
				return fmt.Errorf("seed weekly analytics: %w", err)
			}
		}

		var statsRows int64
		if err := tx.Model(&models.DashboardStats{}).
			Where("workspace_id = ?", DemoWorkspaceID).
			Count(&statsRows).Error; err != nil {
			return fmt.Errorf("count dashboard stats: %w", err)
		}
		if statsRows == 0 {
			end := now.Truncate(time.Second)
			if err := tx.Create(&models.DashboardStats{
				WorkspaceID: DemoWorkspaceID,
				PeriodStart: end.AddDate(0, 0, -7),
				PeriodEnd:   end,
			}).Error; err != nil {
				return fmt.Errorf("seed dashboard stats: %w", err)
			}
		}

		log.Info("Seeded reference data", "analytics_days", 30, "weeks", 8)
		return nil
	})
}

// seedOnce inserts rows for the demo workspace only when it has none of
// that model yet.
func seedOnce[T any](tx *gorm.DB, model any, rows []T) error {
	var n int64
	if err := tx.Model(model).Where("workspace_id = ?", DemoWorkspaceID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	batch := make([]T, len(rows))
	copy(batch, rows)
	for i := range batch {
		setWorkspace(&batch[i])
	}
	return tx.Create(&batch).Error
}

func setWorkspace(row any) {
	switch r := row.(type) {
	case *models.PlatformStat:
		r.WorkspaceID = DemoWorkspaceID
	case *models.CompetitorProfile:
		r.WorkspaceID = DemoWorkspaceID
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
