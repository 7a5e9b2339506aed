package activity

import (
	"net/http"

	"vaultadmin/internal/pkg/ticket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades dashboard clients onto the live activity feed.
// Browsers cannot set Authorization headers on websocket requests, so the
// client first fetches a short-lived signed ticket and passes it as
// ?ticket=.
type WSHandler struct {
	hub     *Hub
	tickets *ticket.Service
}

func NewWSHandler(hub *Hub, tickets *ticket.Service) *WSHandler {
	return &WSHandler{hub: hub, tickets: tickets}
}

func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	raw := c.Query("ticket")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   gin.H{"code": "TICKET_REQUIRED", "message": "Use ?ticket=YOUR_TICKET"},
		})
		return
	}

	claims, err := h.tickets.Validate(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   gin.H{"code": "INVALID_TICKET", "message": "Invalid or expired ticket"},
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("activity: websocket upgrade failed")
		return
	}

	connID := uuid.NewString()
	h.hub.Register(connID, conn)
	logrus.WithFields(logrus.Fields{
		"admin_id": claims.AdminID,
		"conn_id":  connID,
	}).Debug("activity: feed client connected")

	// Reader loop only watches for close; the feed is one-way.
	go func() {
		defer h.hub.Unregister(connID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
