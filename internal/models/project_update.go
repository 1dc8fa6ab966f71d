package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectUpdate is an announcement authored by a Profile within a Project.
type ProjectUpdate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"index;not null" json:"project_id"`
	Project   *Project       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	AuthorID  uint           `gorm:"index;not null" json:"author_id"`
	Author    *Profile       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProjectUpdate) TableName() string { return "project_updates" }
