package models

import (
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/config"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentItem struct {
	ID                   string                      `gorm:"type:varchar(64);primaryKey"`
	WorkspaceID          string                      `gorm:"type:varchar(64);not null;index"`
	Platform             string                      `gorm:"type:varchar(32);not null"`
	PostType             string                      `gorm:"type:varchar(32)"`
	Theme                string
	Hook                 string                      `gorm:"type:text"`
	Caption              string                      `gorm:"type:text"`
	Hashtags             datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CTA                  string                      `gorm:"column:cta;type:text"`
	BestTime             string                      `gorm:"type:varchar(16)"`
	ContentPillar        string                      `gorm:"type:varchar(16);not null;default:'authority';index"`
	EngagementPrediction int                         `gorm:"not null;default:50"`
	Status               config.ContentStatus        `gorm:"type:varchar(16);not null;default:'DRAFT';index"`
	ScheduledDay         *int
	ScheduledDate        *time.Time
	Script               string                      `gorm:"type:text"`
	Slides               datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ThreadParts          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt            time.Time                   `gorm:"index"`
	UpdatedAt            time.Time
}

func (c *ContentItem) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}

// ScheduledPost is one-to-one with a ContentItem.
type ScheduledPost struct {
	ID            string            `gorm:"type:varchar(64);primaryKey"`
	ContentItemID string            `gorm:"type:varchar(64);not null;uniqueIndex"`
	ContentItem   *ContentItem      `gorm:"constraint:OnDelete:CASCADE"`
	UserID        string            `gorm:"type:varchar(64);not null;index"`
	WorkspaceID   string            `gorm:"type:varchar(64);not null;index"`
	ScheduledAt   time.Time         `gorm:"not null;index"`
	Timezone      string            `gorm:"type:varchar(64);not null"`
	Status        config.PostStatus `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	EventID       string            `gorm:"type:varchar(128)"`
	Error         string            `gorm:"type:text"`
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *ScheduledPost) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}
