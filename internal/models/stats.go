package models

import (
	"time"

	"gorm.io/gorm"
)

// DashboardStats holds one rolled-up 7-day window per workspace.
type DashboardStats struct {
	ID                     string    `gorm:"type:varchar(64);primaryKey"`
	WorkspaceID            string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_stats_ws_period"`
	PeriodStart            time.Time `gorm:"not null;uniqueIndex:idx_stats_ws_period"`
	PeriodEnd              time.Time `gorm:"not null;index"`
	TrendingTopicsCount    int       `gorm:"not null;default:0"`
	ContentGeneratedCount  int       `gorm:"not null;default:0"`
	TotalReach             int       `gorm:"not null;default:0"`
	EngagementRate         float64   `gorm:"not null;default:0"`
	TrendingTopicsChange   float64   `gorm:"not null;default:0"`
	ContentGeneratedChange float64   `gorm:"not null;default:0"`
	TotalReachChange       float64   `gorm:"not null;default:0"`
	EngagementRateChange   float64   `gorm:"not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (s *DashboardStats) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

// All lists every model for auto-migration.
func All() []any {
	return []any{
		&User{},
		&Workspace{},
		&Job{},
		&TrendReport{},
		&TrendTopic{},
		&ContentItem{},
		&ScheduledPost{},
		&AnalyticsDay{},
		&WeeklyAnalytic{},
		&EngagementHeatmap{},
		&PlatformStat{},
		&CompetitorProfile{},
		&DashboardStats{},
	}
}
