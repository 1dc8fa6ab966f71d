package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is an in-app message produced by project-update fan-out.
type Notification struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RecipientID uint           `gorm:"index;not null" json:"recipient_id"`
	ProjectID   uint           `gorm:"index" json:"project_id"`
	UpdateID    uint           `gorm:"index" json:"update_id"`
	Message     string         `gorm:"size:500;not null" json:"message"`
	IsRead      bool           `gorm:"default:false;index" json:"is_read"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
