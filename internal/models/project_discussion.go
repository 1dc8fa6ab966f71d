package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectDiscussion is a comment attached to exactly one ProjectUpdate and
// one Project. Any participant may create one; only the author may change
// or remove it.
type ProjectDiscussion struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UpdateID  uint           `gorm:"index;not null" json:"update_id"`
	Update    *ProjectUpdate `gorm:"foreignKey:UpdateID;constraint:OnDelete:CASCADE" json:"update,omitempty"`
	ProjectID uint           `gorm:"index;not null" json:"project_id"`
	AuthorID  uint           `gorm:"index;not null" json:"author_id"`
	Author    *Profile       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProjectDiscussion) TableName() string { return "project_discussions" }
