package handlers

import (
	"net/http"

	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	taskQueue services.TaskQueue
}

func NewHealthHandler(db *gorm.DB, taskQueue services.TaskQueue) *HealthHandler {
	return &HealthHandler{db: db, taskQueue: taskQueue}
}

// Check reports service liveness, database reachability and queue mode.
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	overall := "ok"
	dbStatus := "ok"

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = http.StatusServiceUnavailable
		overall = "degraded"
		dbStatus = "unreachable"
	}

	queueMode := "sync"
	if h.taskQueue != nil && h.taskQueue.IsAsync() {
		queueMode = "async"
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"service":  "learnflow",
		"database": dbStatus,
		"queue":    queueMode,
	})
}
