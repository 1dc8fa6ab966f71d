package models

import (
	"time"

	"gorm.io/gorm"
)

// LearningResource is a platform-wide catalog entry (course, article, video)
// independent of any project.
type LearningResource struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"size:500" json:"description"`
	URL         string         `gorm:"size:500" json:"url"`
	Category    string         `gorm:"size:100;index" json:"category"`
	CreatedBy   uint           `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LearningResource) TableName() string { return "learning_resources" }
