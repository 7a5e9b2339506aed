package works

import (
	"errors"
	"net/http"
	"strconv"

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
	works := rg.Group("/works")
	{
		works.GET("", adminauth.RequirePermission("works", "read"), h.GetWorks)
		works.GET("/:id", adminauth.RequirePermission("works", "read"), h.GetWork)
		works.POST("", adminauth.RequirePermission("works", "write"), h.CreateWork)
		works.PUT("/:id", adminauth.RequirePermission("works", "write"), h.UpdateWork)
		works.DELETE("/:id", adminauth.RequirePermission("works", "delete"), h.DeleteWork)
	}
}

// GetWorks handles GET /admin/works with category/search/private filters.
func (h *Handler) GetWorks(c *gin.Context) {
	var f repository.WorkFilters

	f.Category = c.Query("category")
	f.Search = c.Query("search")
	if v := c.Query("private"); v != "" {
		private := v == "true" || v == "1"
		f.Private = &private
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

	works, total, err := h.service.GetWorks(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load works")
		return
	}

	totalPages := (int(total) + f.Limit - 1) / f.Limit
	response.Success(c, http.StatusOK, gin.H{
		"works": works,
		"pagination": gin.H{
			"page":        (f.Offset / f.Limit) + 1,
			"limit":       f.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

func (h *Handler) GetWork(c *gin.Context) {
	detail, err := h.service.GetWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrWorkNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Work not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load work")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CreateWork(c *gin.Context) {
	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	work, err := h.service.CreateWork(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create work")
		return
	}
	response.Success(c, http.StatusCreated, work)
}

func (h *Handler) UpdateWork(c *gin.Context) {
	var req UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	work, err := h.service.UpdateWork(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrWorkNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Work not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update work")
		return
	}
	response.Success(c, http.StatusOK, work)
}

func (h *Handler) DeleteWork(c *gin.Context) {
	if err := h.service.DeleteWork(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrWorkNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Work not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete work")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Work deleted"})
}
