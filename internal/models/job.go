package models

import (
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/config"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Job struct {
	ID              string           `gorm:"type:varchar(64);primaryKey"`
	UserID          string           `gorm:"type:varchar(64);not null;index"`
	WorkspaceID     string           `gorm:"type:varchar(64);not null;index"`
	JobType         config.JobType   `gorm:"type:varchar(32);not null"`
	Status          config.JobStatus `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	CreditsUsed     int              `gorm:"not null;default:0"`
	Payload         datatypes.JSON   `gorm:"type:jsonb"`
	Result          datatypes.JSON   `gorm:"type:jsonb"`
	Error           string           `gorm:"type:text"`
	ExecutionHandle string           `gorm:"type:varchar(128)"`
	CreatedAt       time.Time        `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime"`
	CompletedAt     *time.Time
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	newID(&j.ID)
	return nil
}
