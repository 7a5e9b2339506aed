package contributions

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
	rg.GET("/works/:id/contributions", adminauth.RequirePermission("contributions", "read"), h.GetByWork)
	rg.POST("/works/:id/contributions", adminauth.RequirePermission("contributions", "write"), h.Create)
	rg.DELETE("/contributions/:id", adminauth.RequirePermission("contributions", "delete"), h.Delete)
}

func (h *Handler) GetByWork(c *gin.Context) {
	contributions, err := h.service.GetByWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrWorkNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Work not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load contributions")
		return
	}
	response.Success(c, http.StatusOK, contributions)
}

type createRequest struct {
	Author   string  `json:"author"`
	AuthorID *string `json:"author_id,omitempty"`
	Content  string  `json:"content" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	contribution, err := h.service.Create(c.Request.Context(), CreateInput{
		WorkID:   c.Param("id"),
		Author:   req.Author,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Work not found")
		case errors.Is(err, ErrWorkFull):
			response.Error(c, http.StatusConflict, "WORK_FULL", "Work has reached its contribution limit")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create contribution")
		}
		return
	}
	response.Success(c, http.StatusCreated, contribution)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrContributionNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contribution not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete contribution")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Contribution deleted"})
}
