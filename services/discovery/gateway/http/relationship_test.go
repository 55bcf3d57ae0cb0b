package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

func TestGetRelationshipStatus_KnownStates(t *testing.T) {
	tests := []struct {
		name     string
		wire     string
		expected models.RelationshipStatus
	}{
		{name: "friends", wire: "friends", expected: models.RelationshipFriends},
		{name: "pending sent", wire: "pending_sent", expected: models.RelationshipPendingSent},
		{name: "pending received", wire: "pending_received", expected: models.RelationshipPendingReceived},
		{name: "none", wire: "none", expected: models.RelationshipNone},
		{name: "unknown value maps to none", wire: "soulmates", expected: models.RelationshipNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/relationships/status/p1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]string{"status": tt.wire})
			}))
			defer server.Close()

			client := NewRelationshipClient(server.URL)

			status, err := client.GetRelationshipStatus(context.Background(), "p1", "token")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestSendFriendRequest_PostsPersonID(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/relationships/requests", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "p1", body["person_id"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "sent"}`))
	}))
	defer server.Close()

	client := NewRelationshipClient(server.URL)

	// Act
	result, err := client.SendFriendRequest(context.Background(), "p1", "token")

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "sent", result.Message)
}

func TestListPendingRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/relationships/requests/pending", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"requests": [
				{"id": "req-7", "requester_id": "p1"},
				{"id": "req-9", "requester_id": "p2"}
			]
		}`))
	}))
	defer server.Close()

	client := NewRelationshipClient(server.URL)

	requests, err := client.ListPendingRequests(context.Background(), "token")

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "req-7", requests[0].ID)
	assert.Equal(t, "p1", requests[0].RequesterID)
}

func TestAcceptFriendRequest_UsesRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/relationships/requests/req-7/accept", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewRelationshipClient(server.URL)

	result, err := client.AcceptFriendRequest(context.Background(), "req-7", "token")

	require.NoError(t, err)
	assert.True(t, result.Success)
}
