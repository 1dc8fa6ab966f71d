package services

import (
	"math"
	"time"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/logger"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalUsers       int64 `json:"total_users"`
	ActiveUsers      int64 `json:"active_users"`
	TotalProjects    int64 `json:"total_projects"`
	TotalResources   int64 `json:"total_resources"`
	TotalStudyGroups int64 `json:"total_study_groups"`
	NewUsersThisWeek int64 `json:"new_users_this_week"`
}

// GetStats runs the five head-count queries independently. A failing count
// is logged and reported as zero; the other counts are unaffected.
func (s *DashboardService) GetStats() *DashboardStats {
	stats := &DashboardStats{}

	stats.TotalUsers = s.count(s.db.Model(&models.Profile{}), "total_users")
	stats.TotalProjects = s.count(s.db.Model(&models.Project{}), "total_projects")
	stats.TotalResources = s.count(s.db.Model(&models.LearningResource{}), "total_resources")
	stats.TotalStudyGroups = s.count(s.db.Model(&models.StudyGroup{}), "total_study_groups")

	weekAgo := time.Now().AddDate(0, 0, -7)
	stats.NewUsersThisWeek = s.count(
		s.db.Model(&models.Profile{}).Where("created_at >= ?", weekAgo),
		"new_users_this_week",
	)

	stats.ActiveUsers = estimateActiveUsers(stats.TotalUsers)

	return stats
}

func (s *DashboardService) count(query *gorm.DB, metric string) int64 {
	var n int64
	if err := query.Count(&n).Error; err != nil {
		logger.Error().Err(err).Str("metric", metric).Msg("dashboard count failed")
		return 0
	}
	return n
}

// estimateActiveUsers approximates the active-user count as 70% of all
// profiles, rounded down. A placeholder until per-user activity tracking
// lands; stats_snapshots keeps the history needed to replace it.
func estimateActiveUsers(totalUsers int64) int64 {
	return int64(math.Floor(float64(totalUsers) * 0.7))
}
