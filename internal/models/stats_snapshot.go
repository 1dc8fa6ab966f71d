package models

import "time"

// StatsSnapshot is a daily record of the dashboard counters, written by the
// snapshot scheduler. Gives the history needed to replace the active-user
// estimate with a measured value later.
type StatsSnapshot struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	TotalUsers       int64     `json:"total_users"`
	ActiveUsers      int64     `json:"active_users"`
	TotalProjects    int64     `json:"total_projects"`
	TotalResources   int64     `json:"total_resources"`
	TotalStudyGroups int64     `json:"total_study_groups"`
	NewUsersThisWeek int64     `json:"new_users_this_week"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}

func (StatsSnapshot) TableName() string { return "stats_snapshots" }
