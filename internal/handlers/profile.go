package handlers

import (
	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{profileService: services.NewProfileService(db)}
}

// List returns paginated profiles. Admin only.
// GET /api/admin/profiles
func (h *ProfileHandler) List(c *gin.Context) {
	var req services.ProfileListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.profileService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, resp)
}

// UpdateMe edits the caller's own profile.
// PUT /api/profile
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Update(middleware.GetUserID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, profile)
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetActive enables or disables an account. Admin only. A caller cannot
// disable their own account.
// PUT /api/admin/profiles/:id/active
func (h *ProfileHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if id == middleware.GetUserID(c) {
		response.BadRequest(c, "cannot modify your own account")
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.profileService.SetActive(id, *req.IsActive); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "profile updated"})
}
