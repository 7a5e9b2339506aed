package users

import (
	"errors"
	"net/http"
	"strconv"

	"vaultadmin/internal/domain"
	"vaultadmin/internal/modules/adminauth"
	"vaultadmin/internal/pkg/response"
	"vaultadmin/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", adminauth.RequirePermission("users", "read"), h.GetUsers)
		users.GET("/:id", adminauth.RequirePermission("users", "read"), h.GetUser)
		users.PATCH("/:id/status", adminauth.RequirePermission("users", "write"), h.UpdateStatus)
		users.DELETE("/:id", adminauth.RequirePermission("users", "delete"), h.DeleteUser)
	}
}

// GetUsers handles GET /admin/users with status/search filters.
func (h *Handler) GetUsers(c *gin.Context) {
	var f repository.ProfileFilters

	f.Status = c.Query("status")
	f.Search = c.Query("search")
	if v := c.Query("dummy"); v != "" {
		dummy := v == "true" || v == "1"
		f.Dummy = &dummy
	}

	f.Limit = 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			f.Limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Offset = (n - 1) * f.Limit
		}
	}

	profiles, total, err := h.service.GetProfiles(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}

	totalPages := (int(total) + f.Limit - 1) / f.Limit
	response.Success(c, http.StatusOK, gin.H{
		"users": profiles,
		"pagination": gin.H{
			"page":        (f.Offset / f.Limit) + 1,
			"limit":       f.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

func (h *Handler) GetUser(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, profile)
}

type updateStatusRequest struct {
	Status domain.ProfileStatus `json:"status" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	profile, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown profile status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user")
		}
		return
	}
	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}
