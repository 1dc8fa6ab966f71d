package services

import (
	"fmt"
	"strconv"

	"github.com/Bhautik-2004/Colrnx-Main/internal/models"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StatsSnapshotService records the dashboard counters once a day so the
// active-user estimate can eventually be replaced with measured history.
type StatsSnapshotService struct {
	db           *gorm.DB
	dashboardSvc *DashboardService
	configSvc    *SystemConfigService
	cron         *cron.Cron
}

func NewStatsSnapshotService(db *gorm.DB) *StatsSnapshotService {
	return &StatsSnapshotService{
		db:           db,
		dashboardSvc: NewDashboardService(db),
		configSvc:    NewSystemConfigService(db),
	}
}

// Capture takes a snapshot of the current dashboard stats.
func (s *StatsSnapshotService) Capture() (*models.StatsSnapshot, error) {
	stats := s.dashboardSvc.GetStats()

	snapshot := models.StatsSnapshot{
		TotalUsers:       stats.TotalUsers,
		ActiveUsers:      stats.ActiveUsers,
		TotalProjects:    stats.TotalProjects,
		TotalResources:   stats.TotalResources,
		TotalStudyGroups: stats.TotalStudyGroups,
		NewUsersThisWeek: stats.NewUsersThisWeek,
	}
	if err := s.db.Create(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// List returns the most recent snapshots, newest first.
func (s *StatsSnapshotService) List(limit int) ([]models.StatsSnapshot, error) {
	if limit <= 0 || limit > 365 {
		limit = 30
	}

	var snapshots []models.StatsSnapshot
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// StartScheduler schedules the daily snapshot at the configured hour
// (system config dashboard_snapshot_hour, default 02:00).
func (s *StatsSnapshotService) StartScheduler() error {
	hour := s.snapshotHour()

	s.cron = cron.New()
	spec := fmt.Sprintf("0 %d * * *", hour)
	if _, err := s.cron.AddFunc(spec, func() {
		snapshot, err := s.Capture()
		if err != nil {
			logger.Error().Err(err).Msg("stats snapshot failed")
			return
		}
		logger.Info().
			Uint("snapshot_id", snapshot.ID).
			Int64("total_users", snapshot.TotalUsers).
			Msg("stats snapshot captured")
	}); err != nil {
		return err
	}

	s.cron.Start()
	logger.Infof("[StatsSnapshot] Scheduler started, daily at %02d:00", hour)
	return nil
}

// StopScheduler stops the snapshot cron.
func (s *StatsSnapshotService) StopScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *StatsSnapshotService) snapshotHour() int {
	value := s.configSvc.GetWithDefault("dashboard_snapshot_hour", "2")
	hour, err := strconv.Atoi(value)
	if err != nil || hour < 0 || hour > 23 {
		return 2
	}
	return hour
}
