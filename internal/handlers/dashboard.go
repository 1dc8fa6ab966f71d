package handlers

import (
	"strconv"

	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	snapshotService  *services.StatsSnapshotService
}

func NewDashboardHandler(db *gorm.DB, snapshotService *services.StatsSnapshotService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: services.NewDashboardService(db),
		snapshotService:  snapshotService,
	}
}

// GetStats returns the five dashboard head-counts. Never fails outright;
// counts that cannot be computed come back as zero.
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	response.Success(c, h.dashboardService.GetStats())
}

// GetHistory lists recent daily snapshots, newest first.
// GET /api/dashboard/history
func (h *DashboardHandler) GetHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	snapshots, err := h.snapshotService.List(limit)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"items": snapshots})
}

// CaptureSnapshot takes an on-demand snapshot outside the daily schedule.
// POST /api/dashboard/snapshot
func (h *DashboardHandler) CaptureSnapshot(c *gin.Context) {
	snapshot, err := h.snapshotService.Capture()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Created(c, snapshot)
}
