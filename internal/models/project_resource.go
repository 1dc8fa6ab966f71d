package models

import (
	"time"

	"gorm.io/gorm"
)

// Resource types.
const (
	ResourceTypeDocument = "document"
	ResourceTypeLink     = "link"
	ResourceTypeForum    = "forum"
)

// ProjectResource is a typed artifact attached to a Project. CreatedBy is the
// owning creator; LastEditedBy tracks the most recent editor.
type ProjectResource struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ProjectID    uint           `gorm:"index;not null" json:"project_id"`
	Project      *Project       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Type         string         `gorm:"size:50;not null;check:type IN ('document','link','forum')" json:"type"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	URL          string         `gorm:"size:500" json:"url"`
	Content      string         `gorm:"type:text" json:"content"`
	CreatedBy    uint           `gorm:"index;not null" json:"created_by"`
	LastEditedBy uint           `json:"last_edited_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProjectResource) TableName() string { return "project_resources" }

// ValidResourceType reports whether t is a member of the type set.
func ValidResourceType(t string) bool {
	switch t {
	case ResourceTypeDocument, ResourceTypeLink, ResourceTypeForum:
		return true
	}
	return false
}
