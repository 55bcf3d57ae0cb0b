package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/roadmate/roadmate/internal/pkg/constants"
	"github.com/roadmate/roadmate/internal/pkg/logger"
	"github.com/roadmate/roadmate/internal/pkg/models"
	wspkg "github.com/roadmate/roadmate/internal/pkg/websocket"
	"github.com/roadmate/roadmate/internal/utils"
	"github.com/roadmate/roadmate/services/discovery"
)

// WebSocketHandler is the device-facing surface of the discovery engine.
// Each authenticated connection owns one engine session; inbound events
// drive it and engine output flows back over the same connection.
type WebSocketHandler struct {
	manager     *wspkg.Manager
	discoveryUC discovery.DiscoveryUC
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *wspkg.Manager, discoveryUC discovery.DiscoveryUC) *WebSocketHandler {
	return &WebSocketHandler{
		manager:     manager,
		discoveryUC: discoveryUC,
	}
}

// HandleWebSocket upgrades the connection and runs the session loop
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client)

	provider := newWSLocationProvider()
	sink := newWSEventSink(h.manager, client.UserID)

	handle, err := h.discoveryUC.OpenSession(context.Background(), client.UserID, provider, sink)
	if err != nil {
		return err
	}
	defer h.discoveryUC.CloseSession(client.UserID, handle)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read failed",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid message format")
			continue
		}

		h.dispatch(client, conn, provider, &msg)
	}
}

type enablePayload struct {
	ServiceEnabled    bool `json:"service_enabled"`
	PermissionGranted bool `json:"permission_granted"`
}

type fixPayload struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type categoryPayload struct {
	Category string `json:"category"`
}

type searchPayload struct {
	Query string `json:"query"`
}

type selectPayload struct {
	EntityID string `json:"entity_id"`
}

func (h *WebSocketHandler) dispatch(client *models.WebSocketClient, conn *websocket.Conn, provider *wsLocationProvider, msg *models.WSMessage) {
	ctx := context.Background()

	switch msg.Event {
	case constants.EventLocationEnable:
		var p enablePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid location.enable payload")
			return
		}
		provider.HandleEnable(p.ServiceEnabled, p.PermissionGranted)

	case constants.EventLocationUpdate:
		var p fixPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid location.update payload")
			return
		}
		if !utils.IsValidCoordinate(p.Latitude, p.Longitude) {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidLocation, "coordinates out of range")
			return
		}
		provider.HandleFix(p.Latitude, p.Longitude, p.Timestamp)

	case constants.EventCategorySwitch:
		var p categoryPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid category.switch payload")
			return
		}
		if err := h.discoveryUC.SwitchCategory(ctx, client.UserID, models.Category(p.Category)); err != nil {
			h.sendActionError(conn, err)
		}

	case constants.EventSearchQuery:
		var p searchPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid search.query payload")
			return
		}
		entities, err := h.discoveryUC.Search(client.UserID, p.Query)
		if err != nil {
			h.sendActionError(conn, err)
			return
		}
		h.manager.SendMessage(conn, constants.EventMarkersUpdated, map[string]interface{}{
			"markers": entities,
		})

	case constants.EventMarkerSelect:
		var p selectPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "invalid marker.select payload")
			return
		}
		if err := h.discoveryUC.SelectMarker(ctx, client.UserID, p.EntityID); err != nil {
			h.sendActionError(conn, err)
		}

	case constants.EventMarkerDismiss:
		if err := h.discoveryUC.Dismiss(client.UserID); err != nil {
			h.sendActionError(conn, err)
		}

	case constants.EventFriendRequest:
		h.runAction(ctx, conn, client.UserID, h.discoveryUC.SendFriendRequest)

	case constants.EventFriendAccept:
		h.runAction(ctx, conn, client.UserID, h.discoveryUC.AcceptFriendRequest)

	case constants.EventUserBlock:
		h.runAction(ctx, conn, client.UserID, h.discoveryUC.BlockSelected)

	case constants.EventMeetingRequest:
		h.runAction(ctx, conn, client.UserID, h.discoveryUC.SendMeetingRequest)

	case constants.EventPing:
		h.manager.SendMessage(conn, constants.EventPong, nil)

	case constants.EventSOSFlag:
		if err := h.discoveryUC.FlagEmergency(ctx, client.UserID); err != nil {
			h.sendActionError(conn, err)
			return
		}
		h.manager.SendMessage(conn, constants.EventActionResult, &models.ActionResult{Success: true})

	default:
		h.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}

// runAction executes a selection action and reports its result
func (h *WebSocketHandler) runAction(ctx context.Context, conn *websocket.Conn, userID string, action func(context.Context, string) (*models.ActionResult, error)) {
	result, err := action(ctx, userID)
	if err != nil {
		h.sendActionError(conn, err)
		return
	}
	h.manager.SendMessage(conn, constants.EventActionResult, result)
}

func (h *WebSocketHandler) sendActionError(conn *websocket.Conn, err error) {
	switch {
	case errors.Is(err, discovery.ErrInvalidCategory):
		h.manager.SendErrorMessage(conn, constants.ErrorInvalidCategory, "unknown category")
	case errors.Is(err, discovery.ErrMissingCredential):
		h.manager.SendErrorMessage(conn, constants.ErrorMissingCredential, "sign in required for this action")
	case errors.Is(err, discovery.ErrNoSelection):
		h.manager.SendErrorMessage(conn, constants.ErrorNoSelection, "no marker selected")
	case errors.Is(err, discovery.ErrNotFound):
		h.manager.SendErrorMessage(conn, constants.ErrorActionFailed, "target not found")
	default:
		h.manager.SendErrorMessage(conn, constants.ErrorActionFailed, "action failed")
	}
}
