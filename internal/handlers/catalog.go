package handlers

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogHandler serves the learning resource and study group catalogs.
// Reads are open to any signed-in profile; writes are admin only.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{catalogService: services.NewCatalogService(db)}
}

// ListLearningResources returns paginated catalog entries.
// GET /api/learning-resources
func (h *CatalogHandler) ListLearningResources(c *gin.Context) {
	var req services.CatalogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.catalogService.ListLearningResources(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, resp)
}

// CreateLearningResource adds a catalog entry. Admin only.
// POST /api/admin/learning-resources
func (h *CatalogHandler) CreateLearningResource(c *gin.Context) {
	var req services.LearningResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resource, err := h.catalogService.CreateLearningResource(&req, middleware.GetUserID(c))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Created(c, resource)
}

// UpdateLearningResource edits a catalog entry. Admin only.
// PUT /api/admin/learning-resources/:id
func (h *CatalogHandler) UpdateLearningResource(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.LearningResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resource, err := h.catalogService.UpdateLearningResource(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, resource)
}

// DeleteLearningResource removes a catalog entry. Admin only.
// DELETE /api/admin/learning-resources/:id
func (h *CatalogHandler) DeleteLearningResource(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteLearningResource(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "learning resource deleted"})
}

// ListStudyGroups returns paginated study groups.
// GET /api/study-groups
func (h *CatalogHandler) ListStudyGroups(c *gin.Context) {
	var req services.CatalogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.catalogService.ListStudyGroups(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, resp)
}

// CreateStudyGroup adds a study group. Admin only.
// POST /api/admin/study-groups
func (h *CatalogHandler) CreateStudyGroup(c *gin.Context) {
	var req services.StudyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	group, err := h.catalogService.CreateStudyGroup(&req, middleware.GetUserID(c))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Created(c, group)
}

// UpdateStudyGroup edits a study group. Admin only.
// PUT /api/admin/study-groups/:id
func (h *CatalogHandler) UpdateStudyGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.StudyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	group, err := h.catalogService.UpdateStudyGroup(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, group)
}

// DeleteStudyGroup removes a study group. Admin only.
// DELETE /api/admin/study-groups/:id
func (h *CatalogHandler) DeleteStudyGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteStudyGroup(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "study group deleted"})
}
