package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/roadmate/roadmate/internal/pkg/http"
	"github.com/roadmate/roadmate/internal/pkg/models"
)

// PlacesClient is an HTTP client for the places search service
type PlacesClient struct {
	client *httpclient.Client
}

// NewPlacesClient creates a new places search client
func NewPlacesClient(baseURL string) *PlacesClient {
	return &PlacesClient{
		client: httpclient.NewClient("places-service", baseURL, 10*time.Second),
	}
}

type placePayload struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Address    string   `json:"address"`
	OpenNow    *bool    `json:"open_now"`
	PhotoURL   string   `json:"photo_url"`
	DistanceKm *float64 `json:"distance_km"`
}

type nearbyPlacesResponse struct {
	Places []placePayload `json:"places"`
}

func (p *placePayload) toEntity() models.Entity {
	openStatus := ""
	if p.OpenNow != nil {
		if *p.OpenNow {
			openStatus = "open"
		} else {
			openStatus = "closed"
		}
	}
	return models.Entity{
		ID:          p.ID,
		Kind:        models.KindPlace,
		DisplayName: p.Name,
		Location:    models.GeoLocation{Latitude: p.Latitude, Longitude: p.Longitude},
		DistanceKm:  p.DistanceKm,
		ImageRef:    p.PhotoURL,
		Address:     p.Address,
		OpenStatus:  openStatus,
	}
}

// GetNearbyPlaces fetches places of a category within a radius in meters
func (c *PlacesClient) GetNearbyPlaces(ctx context.Context, loc models.GeoLocation, category models.Category, radiusM int) ([]models.Entity, error) {
	placeType, ok := category.PlaceType()
	if !ok {
		return nil, fmt.Errorf("category %s has no place type mapping", category)
	}

	endpoint := fmt.Sprintf("/places/nearby?latitude=%f&longitude=%f&type=%s&radius=%d",
		loc.Latitude, loc.Longitude, placeType, radiusM)

	var resp nearbyPlacesResponse
	if err := c.client.GetJSON(ctx, endpoint, "", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch nearby places: %w", err)
	}

	entities := make([]models.Entity, 0, len(resp.Places))
	for i := range resp.Places {
		entities = append(entities, resp.Places[i].toEntity())
	}
	return entities, nil
}
