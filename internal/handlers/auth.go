package handlers

import (
	"errors"

	"github.com/Bhautik-2004/Colrnx-Main/internal/config"
	"github.com/Bhautik-2004/Colrnx-Main/internal/middleware"
	"github.com/Bhautik-2004/Colrnx-Main/internal/services"
	"github.com/Bhautik-2004/Colrnx-Main/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService  *services.AuthService
	adminService *services.AdminService
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  services.NewAuthService(db, &cfg.JWT),
		adminService: services.NewAdminService(db),
	}
}

// Signup registers a profile and signs it in.
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Signup(&req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrPasswordMismatch),
			errors.Is(err, services.ErrWeakPassword):
			// Validation failures surface verbatim and are never logged.
			response.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			response.Conflict(c, err.Error())
		default:
			response.ServerError(c, err.Error())
		}
		return
	}

	response.Created(c, loginPayload(result))
}

// Login authenticates by email and password.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(&req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}

	response.Success(c, loginPayload(result))
}

func loginPayload(result *services.LoginResult) gin.H {
	return gin.H{
		"token":             result.AccessToken,
		"expire_at":         result.AccessExpireAt,
		"refresh_token":     result.RefreshToken,
		"refresh_expire_at": result.RefreshExpireAt,
		"profile":           result.Profile,
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh rotates the refresh token and issues a new access token.
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Refresh(req.RefreshToken, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"token":             result.AccessToken,
		"expire_at":         result.AccessExpireAt,
		"refresh_token":     result.RefreshToken,
		"refresh_expire_at": result.RefreshExpireAt,
	})
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout revokes the presented refresh token.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req logoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.RevokeRefreshToken(req.RefreshToken); err != nil {
		response.ServerError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"message": "logged out successfully"})
}

// Me returns the current profile with its resolved admin flag.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	profileID := middleware.GetUserID(c)
	profile, err := h.authService.GetProfileByID(profileID)
	if err != nil {
		response.NotFound(c, "profile not found")
		return
	}

	response.Success(c, gin.H{
		"profile":  profile,
		"is_admin": h.adminService.IsAdmin(profile.Email),
	})
}

// ChangePassword changes the caller's password.
// PUT /api/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profileID := middleware.GetUserID(c)
	if err := h.authService.ChangePassword(profileID, &req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, gin.H{"message": "password changed"})
}
