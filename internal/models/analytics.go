package models

import (
	"time"

	"gorm.io/gorm"
)

type AnalyticsDay struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	WorkspaceID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_analytics_ws_date"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_analytics_ws_date"`
	Engagement  int       `gorm:"not null;default:0"`
	Reach       int       `gorm:"not null;default:0"`
	Followers   int       `gorm:"not null;default:0"`
	Clicks      int       `gorm:"not null;default:0"`
}

func (a *AnalyticsDay) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}

type WeeklyAnalytic struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	WorkspaceID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_weekly_ws_week"`
	WeekStart   time.Time `gorm:"not null;uniqueIndex:idx_weekly_ws_week"`
	WeekLabel   string    `gorm:"type:varchar(16)"`
	Engagement  int
	Followers   int
}

func (w *WeeklyAnalytic) BeforeCreate(tx *gorm.DB) error {
	newID(&w.ID)
	return nil
}

type EngagementHeatmap struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	WorkspaceID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_heatmap_ws_slot"`
	TimeSlot    string `gorm:"type:varchar(16);not null;uniqueIndex:idx_heatmap_ws_slot"`
	Mon         int
	Tue         int
	Wed         int
	Thu         int
	Fri         int
	Sat         int
	Sun         int
}

func (h *EngagementHeatmap) BeforeCreate(tx *gorm.DB) error {
	newID(&h.ID)
	return nil
}

type PlatformStat struct {
	ID          string  `gorm:"type:varchar(64);primaryKey"`
	WorkspaceID string  `gorm:"type:varchar(64);not null;index"`
	Platform    string  `gorm:"type:varchar(32);not null"`
	Percentage  float64 `gorm:"not null"`
	Color       string  `gorm:"type:varchar(16)"`
	CreatedAt   time.Time
}

func (p *PlatformStat) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}

type CompetitorProfile struct {
	ID             string `gorm:"type:varchar(64);primaryKey"`
	WorkspaceID    string `gorm:"type:varchar(64);not null;index"`
	Name           string `gorm:"not null"`
	Followers      int
	PostsPerMonth  int
	EngagementRate float64
	GrowthRate     float64
	IsYou          bool `gorm:"not null;default:false"`
}

func (c *CompetitorProfile) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}
