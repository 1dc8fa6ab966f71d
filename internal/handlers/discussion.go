package handlers

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiscussionHandler struct {
	discussionService *services.DiscussionService
}

func NewDiscussionHandler(db *gorm.DB) *DiscussionHandler {
	return &DiscussionHandler{discussionService: services.NewDiscussionService(db)}
}

// List returns the discussion thread under an update.
// GET /api/projects/:id/updates/:updateID/discussions
func (h *DiscussionHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updateID, ok := parseIDParam(c, "updateID")
	if !ok {
		return
	}

	discussions, err := h.discussionService.ListByUpdate(projectID, updateID, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, discussions)
}

// Create posts a discussion entry. Any participant may post.
// POST /api/projects/:id/updates/:updateID/discussions
func (h *DiscussionHandler) Create(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updateID, ok := parseIDParam(c, "updateID")
	if !ok {
		return
	}

	var req services.DiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	discussion, err := h.discussionService.Create(projectID, updateID, middleware.GetUserID(c), &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	response.Created(c, discussion)
}

// Update edits a discussion entry. Author only.
// PUT /api/projects/:id/discussions/:discussionID
func (h *DiscussionHandler) Update(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	discussionID, ok := parseIDParam(c, "discussionID")
	if !ok {
		return
	}

	var req services.DiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	discussion, err := h.discussionService.Update(projectID, discussionID, middleware.GetUserID(c), &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	response.Success(c, discussion)
}

// Delete removes a discussion entry. Author only.
// DELETE /api/projects/:id/discussions/:discussionID
func (h *DiscussionHandler) Delete(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	discussionID, ok := parseIDParam(c, "discussionID")
	if !ok {
		return
	}

	if err := h.discussionService.Delete(projectID, discussionID, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "discussion deleted"})
}
