package gateway_nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roadmate/roadmate/internal/pkg/constants"
	"github.com/roadmate/roadmate/internal/pkg/logger"
	"github.com/roadmate/roadmate/internal/pkg/models"
	natspkg "github.com/roadmate/roadmate/internal/pkg/nats"
)

// NATSGateway handles NATS publish operations for the discovery service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{client: client}
}

// PublishEmergencyFlag publishes an emergency flag event for fan-out by
// the notification dispatcher.
func (g *NATSGateway) PublishEmergencyFlag(ctx context.Context, event *models.EmergencyFlagEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency flag event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectSOSFlagged, data); err != nil {
		return fmt.Errorf("failed to publish emergency flag event: %w", err)
	}

	logger.Info("published emergency flag event",
		logger.String("user_id", event.UserID),
		logger.String("target_id", event.TargetID))
	return nil
}
