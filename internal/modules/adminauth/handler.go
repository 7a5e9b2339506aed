package adminauth

import (
	"errors"
	"net/http"
	"strconv"

	"vaultadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /admin/auth/login. Account-not-found and
// wrong-password collapse into one generic message so the endpoint cannot
// be used to enumerate accounts. Going through Service.Login (not
// Authenticate) keeps the session snapshot file current when one is
// configured, so the session survives a restart.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	session, err := h.service.Login(
		c.Request.Context(),
		req.Username,
		req.Password,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "AUTH_FAILED", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, session)
}

// Logout handles POST /admin/auth/logout.
func (h *Handler) Logout(c *gin.Context) {
	session := SessionFromContext(c)
	h.service.Revoke(c.Request.Context(), session)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMe handles GET /admin/auth/me.
func (h *Handler) GetMe(c *gin.Context) {
	session := SessionFromContext(c)
	if session == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	response.Success(c, http.StatusOK, session.Admin)
}

// Validate handles GET /admin/auth/validate. Reaching it at all means the
// middleware accepted the token, so it only echoes the expiry.
func (h *Handler) Validate(c *gin.Context) {
	session := SessionFromContext(c)
	if session == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"valid":      true,
		"expires_at": session.ExpiresAt,
	})
}

// CreateAdmin handles POST /admin/accounts.
func (h *Handler) CreateAdmin(c *gin.Context) {
	session := SessionFromContext(c)

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	account, err := h.service.CreateAdmin(c.Request.Context(), session, CreateAdminInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		case errors.Is(err, ErrDuplicateAccount):
			response.Error(c, http.StatusConflict, "DUPLICATE_ACCOUNT", "Username or email already exists")
		default:
			response.Error(c, http.StatusBadRequest, "CREATE_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, account)
}

// ListAdmins handles GET /admin/accounts.
func (h *Handler) ListAdmins(c *gin.Context) {
	session := SessionFromContext(c)

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = (n - 1) * limit
		}
	}

	accounts, total, err := h.service.ListAdmins(c.Request.Context(), session, limit, offset)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list admin accounts")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accounts": accounts,
		"total":    total,
	})
}
