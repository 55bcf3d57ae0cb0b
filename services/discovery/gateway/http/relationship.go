package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/roadmate/roadmate/internal/pkg/http"
	"github.com/roadmate/roadmate/internal/pkg/models"
)

// RelationshipClient is an HTTP client for the relationship service
type RelationshipClient struct {
	client *httpclient.Client
}

// NewRelationshipClient creates a new relationship service client
func NewRelationshipClient(baseURL string) *RelationshipClient {
	return &RelationshipClient{
		client: httpclient.NewClient("relationship-service", baseURL, 10*time.Second),
	}
}

type relationshipStatusResponse struct {
	Status string `json:"status"`
}

type actionResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type pendingRequestPayload struct {
	ID          string `json:"id"`
	RequesterID string `json:"requester_id"`
}

type pendingRequestsResponse struct {
	Requests []pendingRequestPayload `json:"requests"`
}

// GetRelationshipStatus fetches the friendship state between the
// authenticated user and a person. Unknown wire values map to none so a
// service rollout can never wedge the client in a phantom state.
func (c *RelationshipClient) GetRelationshipStatus(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
	endpoint := fmt.Sprintf("/relationships/status/%s", personID)

	var resp relationshipStatusResponse
	if err := c.client.GetJSON(ctx, endpoint, authToken, &resp); err != nil {
		return models.RelationshipNone, fmt.Errorf("failed to fetch relationship status: %w", err)
	}

	switch status := models.RelationshipStatus(resp.Status); status {
	case models.RelationshipPendingSent, models.RelationshipPendingReceived, models.RelationshipFriends:
		return status, nil
	default:
		return models.RelationshipNone, nil
	}
}

// SendFriendRequest submits a friend request to a person
func (c *RelationshipClient) SendFriendRequest(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	body := map[string]string{"person_id": personID}

	var resp actionResultResponse
	if err := c.client.PostJSON(ctx, "/relationships/requests", authToken, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to send friend request: %w", err)
	}
	return &models.ActionResult{Success: resp.Success, Message: resp.Message}, nil
}

// ListPendingRequests fetches the friend requests awaiting the user's answer
func (c *RelationshipClient) ListPendingRequests(ctx context.Context, authToken string) ([]models.PendingRequest, error) {
	var resp pendingRequestsResponse
	if err := c.client.GetJSON(ctx, "/relationships/requests/pending", authToken, &resp); err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	requests := make([]models.PendingRequest, 0, len(resp.Requests))
	for _, r := range resp.Requests {
		requests = append(requests, models.PendingRequest{ID: r.ID, RequesterID: r.RequesterID})
	}
	return requests, nil
}

// AcceptFriendRequest confirms a pending friend request by its id
func (c *RelationshipClient) AcceptFriendRequest(ctx context.Context, requestID, authToken string) (*models.ActionResult, error) {
	endpoint := fmt.Sprintf("/relationships/requests/%s/accept", requestID)

	var resp actionResultResponse
	if err := c.client.PostJSON(ctx, endpoint, authToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to accept friend request: %w", err)
	}
	return &models.ActionResult{Success: resp.Success, Message: resp.Message}, nil
}
