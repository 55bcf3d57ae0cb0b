package gateway

import (
	"context"

	"github.com/roadmate/roadmate/internal/pkg/models"
	natspkg "github.com/roadmate/roadmate/internal/pkg/nats"
	"github.com/roadmate/roadmate/services/discovery"
	gateway_http "github.com/roadmate/roadmate/services/discovery/gateway/http"
	gateway_nats "github.com/roadmate/roadmate/services/discovery/gateway/nats"
)

// DiscoveryGW aggregates the HTTP collaborator clients and the NATS
// gateway behind the single gateway interface the usecase depends on.
type DiscoveryGW struct {
	persons      *gateway_http.PersonsClient
	places       *gateway_http.PlacesClient
	emergency    *gateway_http.EmergencyClient
	relationship *gateway_http.RelationshipClient
	safety       *gateway_http.SafetyClient
	notify       *gateway_http.NotifyClient
	nats         *gateway_nats.NATSGateway
}

// NewDiscoveryGW creates the combined gateway from the configured
// collaborator base URLs and a connected NATS client.
func NewDiscoveryGW(cfg models.ServicesConfig, natsClient *natspkg.Client) discovery.DiscoveryGW {
	return &DiscoveryGW{
		persons:      gateway_http.NewPersonsClient(cfg.PersonsURL),
		places:       gateway_http.NewPlacesClient(cfg.PlacesURL),
		emergency:    gateway_http.NewEmergencyClient(cfg.EmergencyURL),
		relationship: gateway_http.NewRelationshipClient(cfg.RelationshipURL),
		safety:       gateway_http.NewSafetyClient(cfg.SafetyURL),
		notify:       gateway_http.NewNotifyClient(cfg.NotifyURL),
		nats:         gateway_nats.NewNATSGateway(natsClient),
	}
}

func (g *DiscoveryGW) GetNearbyPersons(ctx context.Context, loc models.GeoLocation, authToken string) ([]models.Entity, error) {
	return g.persons.GetNearbyPersons(ctx, loc, authToken)
}

func (g *DiscoveryGW) GetNearbyPlaces(ctx context.Context, loc models.GeoLocation, category models.Category, radiusM int) ([]models.Entity, error) {
	return g.places.GetNearbyPlaces(ctx, loc, category, radiusM)
}

func (g *DiscoveryGW) GetActiveSignals(ctx context.Context, loc models.GeoLocation) ([]models.EmergencySignal, error) {
	return g.emergency.GetActiveSignals(ctx, loc)
}

func (g *DiscoveryGW) GetRelationshipStatus(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
	return g.relationship.GetRelationshipStatus(ctx, personID, authToken)
}

func (g *DiscoveryGW) SendFriendRequest(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	return g.relationship.SendFriendRequest(ctx, personID, authToken)
}

func (g *DiscoveryGW) ListPendingRequests(ctx context.Context, authToken string) ([]models.PendingRequest, error) {
	return g.relationship.ListPendingRequests(ctx, authToken)
}

func (g *DiscoveryGW) AcceptFriendRequest(ctx context.Context, requestID, authToken string) (*models.ActionResult, error) {
	return g.relationship.AcceptFriendRequest(ctx, requestID, authToken)
}

func (g *DiscoveryGW) BlockUser(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	return g.safety.BlockUser(ctx, personID, authToken)
}

func (g *DiscoveryGW) SendMeetingRequest(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	return g.notify.SendMeetingRequest(ctx, personID, authToken)
}

func (g *DiscoveryGW) PublishEmergencyFlag(ctx context.Context, event *models.EmergencyFlagEvent) error {
	return g.nats.PublishEmergencyFlag(ctx, event)
}
