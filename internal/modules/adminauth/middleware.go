package adminauth

import (
	"errors"
	"net/http"
	"strings"

	"vaultadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "admin_session"

// SessionAuth resolves the bearer token on every protected request and
// stashes the session in the gin context.
func SessionAuth(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		session, err := service.ResolveToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			code := "INVALID_SESSION"
			if errors.Is(err, ErrSessionExpired) {
				code = "SESSION_EXPIRED"
			}
			response.Error(c, http.StatusUnauthorized, code, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequirePermission gates a route on resource/action. Runs after
// SessionAuth.
func RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if session == nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}
		if !session.HasPermission(resource, action) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

func SessionFromContext(c *gin.Context) *Session {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := v.(*Session)
	if !ok {
		return nil
	}
	return session
}
