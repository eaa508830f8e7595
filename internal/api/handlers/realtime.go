package handlers

import (
	"project-tracker-backend/internal/realtime"

	"github.com/gin-gonic/gin"
)

// RealtimeHandler exposes the websocket endpoint for live subscriptions
type RealtimeHandler struct {
	hub *realtime.Hub
}

// NewRealtimeHandler creates a new realtime handler
func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// Serve handles GET /ws
// @Summary Realtime subscription socket
// @Description Upgrade to a websocket carrying task and comment stream subscriptions
// @Tags realtime
// @Success 101 "Switching protocols"
// @Router /ws [get]
func (h *RealtimeHandler) Serve(c *gin.Context) {
	h.hub.ServeHTTP(c.Writer, c.Request)
}
