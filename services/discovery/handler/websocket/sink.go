package websocket

import (
	"github.com/roadmate/roadmate/internal/pkg/constants"
	"github.com/roadmate/roadmate/internal/pkg/models"
	wspkg "github.com/roadmate/roadmate/internal/pkg/websocket"
)

// wsEventSink pushes engine output to the connected device. Sends are
// fire-and-forget through the connection manager so a slow device never
// blocks the engine.
type wsEventSink struct {
	manager *wspkg.Manager
	userID  string
}

func newWSEventSink(manager *wspkg.Manager, userID string) *wsEventSink {
	return &wsEventSink{manager: manager, userID: userID}
}

func (s *wsEventSink) MarkersUpdated(entities []models.Entity) {
	s.manager.NotifyClient(s.userID, constants.EventMarkersUpdated, map[string]interface{}{
		"markers": entities,
	})
}

func (s *wsEventSink) CameraMove(intent models.CameraIntent) {
	s.manager.NotifyClient(s.userID, constants.EventCameraMove, intent)
}

func (s *wsEventSink) RelationshipUpdated(status models.RelationshipStatus) {
	s.manager.NotifyClient(s.userID, constants.EventRelationshipUpdated, map[string]interface{}{
		"status": status,
	})
}
