package handlers

import (
	"errors"

	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ParticipantHandler provides CRUD endpoints for project participants.
type ParticipantHandler struct {
	participantService *services.ParticipantService
}

func NewParticipantHandler(db *gorm.DB) *ParticipantHandler {
	return &ParticipantHandler{participantService: services.NewParticipantService(db)}
}

// List returns all participants of a project.
// GET /api/projects/:id/participants
func (h *ParticipantHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	participants, err := h.participantService.ListByProject(projectID, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, participants)
}

// Add enrolls a profile into the project. Creator only.
// POST /api/projects/:id/participants
func (h *ParticipantHandler) Add(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	participant, err := h.participantService.Add(projectID, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotParticipant), errors.Is(err, services.ErrNotCreator):
			respondServiceError(c, err)
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}
	response.Created(c, participant)
}

// UpdateRole changes a participant's role. Creator only.
// PUT /api/projects/:id/participants/:participantID
func (h *ParticipantHandler) UpdateRole(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	participantID, ok := parseIDParam(c, "participantID")
	if !ok {
		return
	}

	var req services.UpdateParticipantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	participant, err := h.participantService.UpdateRole(projectID, participantID, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotParticipant), errors.Is(err, services.ErrNotCreator):
			respondServiceError(c, err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "participant not found")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}
	response.Success(c, participant)
}

// Remove removes a participant from the project. Creator only.
// DELETE /api/projects/:id/participants/:participantID
func (h *ParticipantHandler) Remove(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	participantID, ok := parseIDParam(c, "participantID")
	if !ok {
		return
	}

	if err := h.participantService.Remove(projectID, participantID, middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "participant removed"})
}
