package models

import (
	"time"

	"gorm.io/gorm"
)

// Project statuses. Any status-to-status transition is legal; only set
// membership is enforced.
const (
	ProjectStatusPlanning    = "planning"
	ProjectStatusDevelopment = "development"
	ProjectStatusTesting     = "testing"
	ProjectStatusLaunched    = "launched"
)

// Project represents a collaborative learning effort.
type Project struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"size:200;not null" json:"name"`
	Description      string         `gorm:"type:text" json:"description"`
	Status           string         `gorm:"size:50;default:planning;check:status IN ('planning','development','testing','launched')" json:"status"`
	StartDate        *time.Time     `json:"start_date"`
	TargetCompletion *time.Time     `json:"target_completion"`
	CreatedBy        uint           `gorm:"index;not null" json:"created_by"`
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }

// ValidProjectStatus reports whether s is a member of the status set.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusDevelopment, ProjectStatusTesting, ProjectStatusLaunched:
		return true
	}
	return false
}
