package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/merrickdc/cms_api/internal/repository"
	"github.com/merrickdc/cms_api/internal/utils"
)

// ContextAdminKey is the gin context key carrying the resolved admin identity
// after the gate has passed.
const ContextAdminKey = "admin"

// AuthMiddleware is the admin gate: it extracts the bearer token, verifies
// it, and resolves the subject against the admin user store. Every
// admin-prefixed route except login must sit behind it.
type AuthMiddleware struct {
	adminRepo *repository.AdminUserRepository
	secret    []byte
}

// NewAuthMiddleware constructs the gate with the process-wide signing secret.
func NewAuthMiddleware(adminRepo *repository.AdminUserRepository, secret []byte) *AuthMiddleware {
	return &AuthMiddleware{adminRepo: adminRepo, secret: secret}
}

func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "MISSING_CREDENTIALS", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "MISSING_CREDENTIALS", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1], m.secret)
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		admin, err := m.adminRepo.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			utils.Error(c, 401, "UNKNOWN_SUBJECT", "Admin user not found")
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, admin)
		c.Next()
	}
}
