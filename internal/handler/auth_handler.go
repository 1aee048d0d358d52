package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/merrickdc/cms_api/internal/middleware"
	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/service"
	"github.com/merrickdc/cms_api/internal/utils"
)

// AuthHandler handles admin authentication HTTP endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Login failed")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me handles GET /api/admin/me. The auth gate has already resolved the
// identity; this just echoes it back without the password hash.
func (h *AuthHandler) Me(c *gin.Context) {
	admin, ok := c.Get(middleware.ContextAdminKey)
	if !ok {
		utils.Error(c, 401, "UNKNOWN_SUBJECT", "Admin user not found")
		return
	}

	utils.Success(c, 200, "Current admin", admin.(*models.AdminUser))
}
