package handlers

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemConfigHandler exposes runtime-tunable settings. Admin only.
type SystemConfigHandler struct {
	configService *services.SystemConfigService
}

func NewSystemConfigHandler(db *gorm.DB) *SystemConfigHandler {
	return &SystemConfigHandler{configService: services.NewSystemConfigService(db)}
}

// List returns all config entries, optionally filtered by group.
// GET /api/admin/system-config
func (h *SystemConfigHandler) List(c *gin.Context) {
	group := c.Query("group")

	var (
		configs interface{}
		err     error
	)
	if group != "" {
		configs, err = h.configService.GetByGroup(group)
	} else {
		configs, err = h.configService.GetAll()
	}
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, configs)
}

type setConfigRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// Set creates or updates a config entry.
// PUT /api/admin/system-config
func (h *SystemConfigHandler) Set(c *gin.Context) {
	var req setConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.configService.Set(req.Key, req.Value); err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"key": req.Key, "value": req.Value})
}
