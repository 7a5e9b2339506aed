package dummy

import (
	"errors"
	"net/http"

	"vaultadmin/internal/modules/adminauth"
	"vaultadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	dummy := rg.Group("/dummy")
	{
		dummy.GET("/categories", adminauth.RequirePermission("dummy_data", "create"), h.GetCategories)
		dummy.POST("/works", adminauth.RequirePermission("dummy_data", "create"), h.GenerateWorks)
		dummy.POST("/users", adminauth.RequirePermission("dummy_data", "create"), h.GenerateUsers)
		dummy.DELETE("/content", adminauth.RequirePermission("dummy_data", "delete"), h.PurgeContent)
		dummy.DELETE("/users", adminauth.RequirePermission("dummy_data", "delete"), h.PurgeUsers)
	}
}

func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": h.service.Categories()})
}

type generateWorksRequest struct {
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

func (h *Handler) GenerateWorks(c *gin.Context) {
	var req generateWorksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	works, err := h.service.GenerateWorks(c.Request.Context(), req.Count, req.Categories)
	if err != nil {
		if errors.Is(err, ErrNoCategories) {
			response.Error(c, http.StatusBadRequest, "NO_CATEGORIES", "Select at least one known category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate works")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"generated": len(works)})
}

type generateUsersRequest struct {
	Count int `json:"count"`
}

func (h *Handler) GenerateUsers(c *gin.Context) {
	var req generateUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	profiles, err := h.service.GenerateUsers(c.Request.Context(), req.Count)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate users")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"generated": len(profiles)})
}

func (h *Handler) PurgeContent(c *gin.Context) {
	result, err := h.service.PurgeContent(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to purge content")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) PurgeUsers(c *gin.Context) {
	deleted, err := h.service.PurgeUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to purge dummy users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}
