package models

import (
	"time"

	"gorm.io/gorm"
)

// Participant roles. Creator holds full management rights over a project's
// collaboration sub-entities.
const (
	RoleCreator     = "creator"
	RoleContributor = "contributor"
	RoleViewer      = "viewer"
)

// ProjectParticipant links a Profile to a Project with a role.
// Authorization for mutating a project's collaboration sub-entities is
// gated on this relation.
type ProjectParticipant struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"uniqueIndex:idx_project_profile;not null" json:"project_id"`
	Project   *Project       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	ProfileID uint           `gorm:"uniqueIndex:idx_project_profile;not null" json:"profile_id"`
	Profile   *Profile       `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Role      string         `gorm:"size:50;default:contributor;check:role IN ('creator','contributor','viewer')" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProjectParticipant) TableName() string { return "project_participants" }

// ValidParticipantRole reports whether r is a member of the role set.
func ValidParticipantRole(r string) bool {
	switch r {
	case RoleCreator, RoleContributor, RoleViewer:
		return true
	}
	return false
}
