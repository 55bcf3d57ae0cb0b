package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/roadmate/roadmate/internal/pkg/http"
	"github.com/roadmate/roadmate/internal/pkg/models"
)

// PersonsClient is an HTTP client for the persons directory service
type PersonsClient struct {
	client *httpclient.Client
}

// NewPersonsClient creates a new persons directory client
func NewPersonsClient(baseURL string) *PersonsClient {
	return &PersonsClient{
		client: httpclient.NewClient("persons-service", baseURL, 10*time.Second),
	}
}

type coordinatePayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// personPayload mirrors the persons service wire shape. Older deployments
// send a nested coordinate object, newer ones flat latitude/longitude
// fields; both are accepted.
type personPayload struct {
	ID           string             `json:"id"`
	FullName     string             `json:"full_name"`
	PhotoURL     string             `json:"photo_url"`
	VehicleLabel string             `json:"vehicle_label"`
	VehicleModel string             `json:"vehicle_model"`
	StatusText   string             `json:"status_text"`
	Route        string             `json:"route"`
	Coordinate   *coordinatePayload `json:"coordinate"`
	Latitude     float64            `json:"latitude"`
	Longitude    float64            `json:"longitude"`
	DistanceKm   *float64           `json:"distance_km"`
}

type nearbyPersonsResponse struct {
	Persons []personPayload `json:"persons"`
}

func (p *personPayload) location() models.GeoLocation {
	if p.Coordinate != nil {
		return models.GeoLocation{Latitude: p.Coordinate.Latitude, Longitude: p.Coordinate.Longitude}
	}
	return models.GeoLocation{Latitude: p.Latitude, Longitude: p.Longitude}
}

func (p *personPayload) toEntity() models.Entity {
	return models.Entity{
		ID:           p.ID,
		Kind:         models.KindPerson,
		DisplayName:  p.FullName,
		Location:     p.location(),
		DistanceKm:   p.DistanceKm,
		ImageRef:     p.PhotoURL,
		VehicleLabel: p.VehicleLabel,
		VehicleModel: p.VehicleModel,
		StatusText:   p.StatusText,
		Route:        p.Route,
	}
}

// GetNearbyPersons fetches persons around a location. The auth token is
// optional; without it the service returns the public subset.
func (c *PersonsClient) GetNearbyPersons(ctx context.Context, loc models.GeoLocation, authToken string) ([]models.Entity, error) {
	endpoint := fmt.Sprintf("/persons/nearby?latitude=%f&longitude=%f", loc.Latitude, loc.Longitude)

	var resp nearbyPersonsResponse
	if err := c.client.GetJSON(ctx, endpoint, authToken, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch nearby persons: %w", err)
	}

	entities := make([]models.Entity, 0, len(resp.Persons))
	for i := range resp.Persons {
		entities = append(entities, resp.Persons[i].toEntity())
	}
	return entities, nil
}
