package discovery

import (
	"context"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

// DiscoveryGW defines the remote collaborator gateway interface
type DiscoveryGW interface {
	// Nearby search services
	GetNearbyPersons(ctx context.Context, loc models.GeoLocation, authToken string) ([]models.Entity, error)
	GetNearbyPlaces(ctx context.Context, loc models.GeoLocation, category models.Category, radiusM int) ([]models.Entity, error)

	// Emergency registry service
	GetActiveSignals(ctx context.Context, loc models.GeoLocation) ([]models.EmergencySignal, error)

	// Relationship service
	GetRelationshipStatus(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error)
	SendFriendRequest(ctx context.Context, personID, authToken string) (*models.ActionResult, error)
	ListPendingRequests(ctx context.Context, authToken string) ([]models.PendingRequest, error)
	AcceptFriendRequest(ctx context.Context, requestID, authToken string) (*models.ActionResult, error)

	// Safety and notification services
	BlockUser(ctx context.Context, personID, authToken string) (*models.ActionResult, error)
	SendMeetingRequest(ctx context.Context, personID, authToken string) (*models.ActionResult, error)

	// NATS gateway
	PublishEmergencyFlag(ctx context.Context, event *models.EmergencyFlagEvent) error
}

// WatchConfig holds location watch policy knobs
type WatchConfig struct {
	Accuracy          string
	MinIntervalSecs   int
	MinDistanceMeters float64
}

// LocationProvider is the device-side location source for one session.
// Watch delivers fixes until the returned cancel function is called.
type LocationProvider interface {
	ServiceEnabled(ctx context.Context) (bool, error)
	RequestPermission(ctx context.Context) (bool, error)
	Watch(ctx context.Context, cfg WatchConfig, onFix func(models.Position)) (cancel func(), err error)
}

// EventSink receives engine output destined for the connected device.
// Calls are fire-and-forget; a slow consumer must not block the engine.
type EventSink interface {
	MarkersUpdated(entities []models.Entity)
	CameraMove(intent models.CameraIntent)
	RelationshipUpdated(status models.RelationshipStatus)
}
