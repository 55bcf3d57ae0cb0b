package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/roadmate/roadmate/internal/pkg/middleware"
	"github.com/roadmate/roadmate/internal/pkg/models"
	handler_http "github.com/roadmate/roadmate/services/discovery/handler/http"
	handler_nats "github.com/roadmate/roadmate/services/discovery/handler/nats"
	handler_ws "github.com/roadmate/roadmate/services/discovery/handler/websocket"
)

// Handler coordinates all protocol handlers for the discovery service
type Handler struct {
	nearbyHandler *handler_http.NearbyHandler
	wsHandler     *handler_ws.WebSocketHandler
	natsHandler   *handler_nats.NatsHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	nearbyHandler *handler_http.NearbyHandler,
	wsHandler *handler_ws.WebSocketHandler,
	natsHandler *handler_nats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		nearbyHandler: nearbyHandler,
		wsHandler:     wsHandler,
		natsHandler:   natsHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	// Protected REST surface
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/nearby", h.nearbyHandler.GetNearby)

	// WebSocket surface authenticates during the upgrade handshake
	e.GET("/ws", h.wsHandler.HandleWebSocket)

	return h.natsHandler.InitConsumers()
}

// Close shuts down the NATS consumers
func (h *Handler) Close() {
	h.natsHandler.Close()
}
