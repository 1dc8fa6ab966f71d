package handlers

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateHandler struct {
	updateService *services.UpdateService
}

func NewUpdateHandler(db *gorm.DB) *UpdateHandler {
	return &UpdateHandler{updateService: services.NewUpdateService(db)}
}

// List returns a project's updates, newest first.
// GET /api/projects/:id/updates
func (h *UpdateHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	updates, err := h.updateService.ListByProject(projectID, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, updates)
}

// Create publishes an update and triggers the notification fan-out.
// Creator only.
// POST /api/projects/:id/updates
func (h *UpdateHandler) Create(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	update, err := h.updateService.Create(projectID, middleware.GetUserID(c), &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	response.Created(c, update)
}

// Update edits an update. Creator only.
// PUT /api/projects/:id/updates/:updateID
func (h *UpdateHandler) Update(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updateID, ok := parseIDParam(c, "updateID")
	if !ok {
		return
	}

	var req services.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	update, err := h.updateService.Update(projectID, updateID, middleware.GetUserID(c), &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	response.Success(c, update)
}

// Delete removes an update and its discussions. Creator only.
// DELETE /api/projects/:id/updates/:updateID
func (h *UpdateHandler) Delete(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updateID, ok := parseIDParam(c, "updateID")
	if !ok {
		return
	}

	if err := h.updateService.Delete(projectID, updateID, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "update deleted"})
}
