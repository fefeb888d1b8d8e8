package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TrendReport is append-only. The newest report per workspace is current.
type TrendReport struct {
	ID          string       `gorm:"type:varchar(64);primaryKey"`
	WorkspaceID string       `gorm:"type:varchar(64);not null;index:idx_trend_reports_ws_created"`
	Niche       string
	Audience    string
	Market      string
	Tone        string
	Topics      []TrendTopic `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time    `gorm:"index:idx_trend_reports_ws_created"`
}

func (r *TrendReport) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}

type TrendTopic struct {
	ID        string                      `gorm:"type:varchar(64);primaryKey"`
	ReportID  string                      `gorm:"type:varchar(64);not null;index"`
	Topic     string                      `gorm:"not null"`
	Score     float64                     `gorm:"not null;default:70"`
	Longevity string                      `gorm:"type:varchar(16);not null;default:'mid-term'"`
	Platforms datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Category  string
	Growth    float64
	Volume    string
	Keywords  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
}

func (t *TrendTopic) BeforeCreate(tx *gorm.DB) error {
	newID(&t.ID)
	return nil
}
