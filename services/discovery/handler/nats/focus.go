package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/roadmate/roadmate/internal/pkg/constants"
	"github.com/roadmate/roadmate/internal/pkg/logger"
	"github.com/roadmate/roadmate/internal/pkg/models"
	natspkg "github.com/roadmate/roadmate/internal/pkg/nats"
	"github.com/roadmate/roadmate/services/discovery"
)

// NatsHandler consumes notification events addressed to live sessions
type NatsHandler struct {
	client      *natspkg.Client
	discoveryUC discovery.DiscoveryUC
	subs        []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(client *natspkg.Client, discoveryUC discovery.DiscoveryUC) *NatsHandler {
	return &NatsHandler{
		client:      client,
		discoveryUC: discoveryUC,
	}
}

// InitConsumers subscribes to the notification subjects
func (h *NatsHandler) InitConsumers() error {
	sub, err := h.client.Subscribe(constants.SubjectFocusRequested, h.handleFocusRequested)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectFocusRequested, err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

// handleFocusRequested routes a deep-link focus event, typically from a
// tapped SOS notification, to the target user's session.
func (h *NatsHandler) handleFocusRequested(msg *nats.Msg) {
	var event models.FocusEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("failed to unmarshal focus event",
			logger.Err(err))
		return
	}

	logger.Info("focus event received",
		logger.String("user_id", event.UserID),
		logger.Float64("latitude", event.Latitude),
		logger.Float64("longitude", event.Longitude))
	h.discoveryUC.HandleFocus(event)
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}
