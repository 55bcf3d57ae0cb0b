package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/roadmate/roadmate/internal/pkg/http"
	"github.com/roadmate/roadmate/internal/pkg/models"
)

// EmergencyClient is an HTTP client for the emergency signal registry
type EmergencyClient struct {
	client *httpclient.Client
}

// NewEmergencyClient creates a new emergency registry client
func NewEmergencyClient(baseURL string) *EmergencyClient {
	return &EmergencyClient{
		client: httpclient.NewClient("emergency-service", baseURL, 10*time.Second),
	}
}

type signalPayload struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	OwnerRef  string  `json:"owner_ref"`
}

type activeSignalsResponse struct {
	Signals []signalPayload `json:"signals"`
}

// GetActiveSignals fetches the currently active SOS signals around a location
func (c *EmergencyClient) GetActiveSignals(ctx context.Context, loc models.GeoLocation) ([]models.EmergencySignal, error) {
	endpoint := fmt.Sprintf("/signals/active?latitude=%f&longitude=%f", loc.Latitude, loc.Longitude)

	var resp activeSignalsResponse
	if err := c.client.GetJSON(ctx, endpoint, "", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch active signals: %w", err)
	}

	signals := make([]models.EmergencySignal, 0, len(resp.Signals))
	for _, s := range resp.Signals {
		signals = append(signals, models.EmergencySignal{
			ID:       s.ID,
			Location: models.GeoLocation{Latitude: s.Latitude, Longitude: s.Longitude},
			OwnerRef: s.OwnerRef,
		})
	}
	return signals, nil
}
