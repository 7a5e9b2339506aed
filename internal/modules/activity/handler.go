package activity

import (
	"net/http"
	"strconv"

	"vaultadmin/internal/modules/adminauth"
	"vaultadmin/internal/pkg/response"
	"vaultadmin/internal/pkg/ticket"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	recorder *Recorder
	tickets  *ticket.Service
}

func NewHandler(recorder *Recorder, tickets *ticket.Service) *Handler {
	return &Handler{recorder: recorder, tickets: tickets}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	activity := rg.Group("/activity")
	{
		activity.GET("", adminauth.RequirePermission("admin_accounts", "read"), h.GetRecent)
		activity.POST("/ticket", adminauth.RequirePermission("admin_accounts", "read"), h.IssueTicket)
	}
}

// GetRecent handles GET /admin/activity.
func (h *Handler) GetRecent(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.recorder.Recent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load activity log")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}

// IssueTicket handles POST /admin/activity/ticket, minting the short-lived
// credential used to open the websocket feed.
func (h *Handler) IssueTicket(c *gin.Context) {
	session := adminauth.SessionFromContext(c)
	if session == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	raw, err := h.tickets.Issue(session.Admin.ID, string(session.Admin.Role))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue ticket")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ticket": raw})
}
