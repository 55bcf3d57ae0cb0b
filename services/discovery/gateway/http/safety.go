package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/roadmate/roadmate/internal/pkg/http"
	"github.com/roadmate/roadmate/internal/pkg/models"
)

// SafetyClient is an HTTP client for the safety service (user blocking)
type SafetyClient struct {
	client *httpclient.Client
}

// NewSafetyClient creates a new safety service client
func NewSafetyClient(baseURL string) *SafetyClient {
	return &SafetyClient{
		client: httpclient.NewClient("safety-service", baseURL, 10*time.Second),
	}
}

// BlockUser blocks a person on behalf of the authenticated user
func (c *SafetyClient) BlockUser(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	body := map[string]string{"person_id": personID}

	var resp actionResultResponse
	if err := c.client.PostJSON(ctx, "/safety/blocks", authToken, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to block user: %w", err)
	}
	return &models.ActionResult{Success: resp.Success, Message: resp.Message}, nil
}

// NotifyClient is an HTTP client for the notification dispatcher
type NotifyClient struct {
	client *httpclient.Client
}

// NewNotifyClient creates a new notification dispatcher client
func NewNotifyClient(baseURL string) *NotifyClient {
	return &NotifyClient{
		client: httpclient.NewClient("notify-service", baseURL, 10*time.Second),
	}
}

// SendMeetingRequest asks the dispatcher to deliver a meeting request
func (c *NotifyClient) SendMeetingRequest(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	body := map[string]string{"person_id": personID}

	var resp actionResultResponse
	if err := c.client.PostJSON(ctx, "/notifications/meeting-requests", authToken, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to send meeting request: %w", err)
	}
	return &models.ActionResult{Success: resp.Success, Message: resp.Message}, nil
}
