package models

import (
	"time"

	"gorm.io/gorm"
)

// Timeline phases and statuses.
const (
	PhasePlanning    = "planning"
	PhaseDevelopment = "development"
	PhaseTesting     = "testing"
	PhaseLaunch      = "launch"

	TimelineStatusPending    = "pending"
	TimelineStatusInProgress = "in_progress"
	TimelineStatusCompleted  = "completed"
)

// ProjectTimeline is a phase entry belonging to a Project. Attachments is a
// JSON array of attachment references; order is significant.
type ProjectTimeline struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProjectID   uint           `gorm:"index;not null" json:"project_id"`
	Project     *Project       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Phase       string         `gorm:"size:50;not null;check:phase IN ('planning','development','testing','launch')" json:"phase"`
	Status      string         `gorm:"size:50;default:pending;check:status IN ('pending','in_progress','completed')" json:"status"`
	Description string         `gorm:"type:text" json:"description"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Attachments string         `gorm:"type:text" json:"attachments"` // JSON array, ordered
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProjectTimeline) TableName() string { return "project_timelines" }

// ValidTimelinePhase reports whether p is a member of the phase set.
func ValidTimelinePhase(p string) bool {
	switch p {
	case PhasePlanning, PhaseDevelopment, PhaseTesting, PhaseLaunch:
		return true
	}
	return false
}

// ValidTimelineStatus reports whether s is a member of the status set.
func ValidTimelineStatus(s string) bool {
	switch s {
	case TimelineStatusPending, TimelineStatusInProgress, TimelineStatusCompleted:
		return true
	}
	return false
}
