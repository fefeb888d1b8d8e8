package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Name        string
	Plan        string `gorm:"type:varchar(16);not null;default:'FREE'"`
	Credits     int    `gorm:"not null;default:0"`
	WorkspaceID string `gorm:"type:varchar(64);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

type Workspace struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string `gorm:"not null"`
	Niche     string
	Audience  string
	Market    string
	Tone      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	newID(&w.ID)
	return nil
}
