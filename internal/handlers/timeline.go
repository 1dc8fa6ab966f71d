package handlers

import (
	"errors"

	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TimelineHandler struct {
	timelineService *services.TimelineService
}

func NewTimelineHandler(db *gorm.DB) *TimelineHandler {
	return &TimelineHandler{timelineService: services.NewTimelineService(db)}
}

// List returns a project's timeline entries.
// GET /api/projects/:id/timelines
func (h *TimelineHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	timelines, err := h.timelineService.ListByProject(projectID, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, timelines)
}

// Create adds a timeline entry. Creator only.
// POST /api/projects/:id/timelines
func (h *TimelineHandler) Create(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.TimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	timeline, err := h.timelineService.Create(projectID, middleware.GetUserID(c), &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	response.Created(c, timeline)
}

// Update edits a timeline entry. Creator only.
// PUT /api/projects/:id/timelines/:timelineID
func (h *TimelineHandler) Update(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	timelineID, ok := parseIDParam(c, "timelineID")
	if !ok {
		return
	}

	var req services.TimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	timeline, err := h.timelineService.Update(projectID, timelineID, middleware.GetUserID(c), &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	response.Success(c, timeline)
}

// Delete removes a timeline entry. Creator only.
// DELETE /api/projects/:id/timelines/:timelineID
func (h *TimelineHandler) Delete(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	timelineID, ok := parseIDParam(c, "timelineID")
	if !ok {
		return
	}

	if err := h.timelineService.Delete(projectID, timelineID, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "timeline entry deleted"})
}

// respondMutationError distinguishes policy violations and missing rows
// from validation problems on write endpoints.
func respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotParticipant),
		errors.Is(err, services.ErrNotCreator),
		errors.Is(err, services.ErrNotAuthor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "not found")
	default:
		response.BadRequest(c, err.Error())
	}
}
