package handlers

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
)

// MembershipHandler manages admin memberships. Admin only.
type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// List returns all admin memberships.
// GET /api/admin/memberships
func (h *MembershipHandler) List(c *gin.Context) {
	resp, err := h.membershipService.List()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, resp)
}

// Create grants admin privilege to an email.
// POST /api/admin/memberships
func (h *MembershipHandler) Create(c *gin.Context) {
	var req services.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	membership, err := h.membershipService.Create(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, membership)
}

// Deactivate revokes admin privilege.
// DELETE /api/admin/memberships/:id
func (h *MembershipHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.membershipService.Deactivate(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "membership deactivated"})
}
