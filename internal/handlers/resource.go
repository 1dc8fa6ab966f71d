package handlers

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResourceHandler struct {
	resourceService *services.ResourceService
}

func NewResourceHandler(db *gorm.DB) *ResourceHandler {
	return &ResourceHandler{resourceService: services.NewResourceService(db)}
}

// List returns a project's resources.
// GET /api/projects/:id/resources
func (h *ResourceHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resources, err := h.resourceService.ListByProject(projectID, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, resources)
}

// Create adds a resource. Creator only.
// POST /api/projects/:id/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resource, err := h.resourceService.Create(projectID, middleware.GetUserID(c), &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	response.Created(c, resource)
}

// Update edits a resource and records the editor. Creator only.
// PUT /api/projects/:id/resources/:resourceID
func (h *ResourceHandler) Update(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resourceID, ok := parseIDParam(c, "resourceID")
	if !ok {
		return
	}

	var req services.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resource, err := h.resourceService.Update(projectID, resourceID, middleware.GetUserID(c), &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	response.Success(c, resource)
}

// Delete removes a resource. Creator only.
// DELETE /api/projects/:id/resources/:resourceID
func (h *ResourceHandler) Delete(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resourceID, ok := parseIDParam(c, "resourceID")
	if !ok {
		return
	}

	if err := h.resourceService.Delete(projectID, resourceID, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "resource deleted"})
}
