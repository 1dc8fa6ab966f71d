package models

import "time"

// AdminMembership maps an email to administrative privilege. A profile is an
// administrator iff a row exists with matching email and is_active = true.
// The unique index on email enforces single-row lookup semantics.
type AdminMembership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdminMembership) TableName() string { return "admin_memberships" }
