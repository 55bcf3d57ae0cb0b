package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/services/discovery"
)

func TestRelationshipWorkflow_RefreshCommitsForBoundPerson(t *testing.T) {
	// Arrange
	gw := &fakeGateway{
		getRelationshipFn: func(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
			return models.RelationshipFriends, nil
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")

	// Act
	status := w.Refresh(context.Background(), "p1", "token")

	// Assert
	assert.Equal(t, models.RelationshipFriends, status)
	assert.Equal(t, models.RelationshipFriends, w.Status())
}

func TestRelationshipWorkflow_RefreshDiscardedAfterRebind(t *testing.T) {
	// Arrange
	gw := &fakeGateway{
		getRelationshipFn: func(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
			return models.RelationshipFriends, nil
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")

	// The selection moved to another person before the result landed
	w.Reset("p2")

	// Act
	w.Refresh(context.Background(), "p1", "token")

	// Assert: the stale result for p1 never touches p2's state
	assert.Equal(t, models.RelationshipNone, w.Status())
}

func TestRelationshipWorkflow_RefreshErrorDefaultsToNone(t *testing.T) {
	gw := &fakeGateway{
		getRelationshipFn: func(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
			return models.RelationshipNone, errors.New("service unavailable")
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")

	status := w.Refresh(context.Background(), "p1", "token")

	assert.Equal(t, models.RelationshipNone, status)
}

func TestRelationshipWorkflow_SendRequestSuccess(t *testing.T) {
	gw := &fakeGateway{}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")

	status, err := w.SendRequest(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, models.RelationshipPendingSent, status)
	assert.Equal(t, models.RelationshipPendingSent, w.Status())
}

func TestRelationshipWorkflow_SendRequestOnlyFromNone(t *testing.T) {
	gw := &fakeGateway{
		sendFriendRequestFn: func(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
			t.Fatal("gateway must not be called when the state is not none")
			return nil, nil
		},
		getRelationshipFn: func(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
			return models.RelationshipFriends, nil
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")
	w.Refresh(context.Background(), "p1", "token")

	status, err := w.SendRequest(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, models.RelationshipFriends, status)
}

func TestRelationshipWorkflow_SendRequestWithoutSelection(t *testing.T) {
	w := NewRelationshipWorkflow(&fakeGateway{})

	_, err := w.SendRequest(context.Background(), "token")

	assert.ErrorIs(t, err, discovery.ErrNoSelection)
}

func TestRelationshipWorkflow_SendRequestFailureKeepsNone(t *testing.T) {
	gw := &fakeGateway{
		sendFriendRequestFn: func(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
			return nil, errors.New("service unavailable")
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")

	_, err := w.SendRequest(context.Background(), "token")

	assert.Error(t, err)
	assert.Equal(t, models.RelationshipNone, w.Status())
}

func TestRelationshipWorkflow_ConcurrentSendRejected(t *testing.T) {
	// Arrange: the first send blocks until released
	release := make(chan struct{})
	entered := make(chan struct{})
	gw := &fakeGateway{
		sendFriendRequestFn: func(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
			close(entered)
			<-release
			return &models.ActionResult{Success: true}, nil
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.SendRequest(context.Background(), "token")
	}()
	<-entered

	// Act: a second trigger while the first is in flight
	_, err := w.SendRequest(context.Background(), "token")

	// Assert
	assert.ErrorIs(t, err, discovery.ErrActionInFlight)

	close(release)
	<-done
	assert.Equal(t, models.RelationshipPendingSent, w.Status())
}

func TestRelationshipWorkflow_AcceptSuccess(t *testing.T) {
	// Arrange: p1 already sent us a request
	gw := &fakeGateway{
		getRelationshipFn: func(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
			return models.RelationshipPendingReceived, nil
		},
		listPendingFn: func(ctx context.Context, authToken string) ([]models.PendingRequest, error) {
			return []models.PendingRequest{
				{ID: "req-9", RequesterID: "other"},
				{ID: "req-7", RequesterID: "p1"},
			}, nil
		},
		acceptFriendRequestFn: func(ctx context.Context, requestID, authToken string) (*models.ActionResult, error) {
			assert.Equal(t, "req-7", requestID)
			return &models.ActionResult{Success: true}, nil
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")
	w.Refresh(context.Background(), "p1", "token")

	// Act
	status, err := w.AcceptIncoming(context.Background(), "token")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipFriends, status)
	assert.Equal(t, models.RelationshipFriends, w.Status())
}

func TestRelationshipWorkflow_AcceptWithoutMatchingPendingIsReportedNoop(t *testing.T) {
	// Arrange: the request disappeared between refresh and accept
	gw := &fakeGateway{
		getRelationshipFn: func(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
			return models.RelationshipPendingReceived, nil
		},
		listPendingFn: func(ctx context.Context, authToken string) ([]models.PendingRequest, error) {
			return []models.PendingRequest{{ID: "req-9", RequesterID: "other"}}, nil
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")
	w.Refresh(context.Background(), "p1", "token")

	// Act
	status, err := w.AcceptIncoming(context.Background(), "token")

	// Assert: reported, not fatal, and the state is unchanged
	assert.ErrorIs(t, err, discovery.ErrNotFound)
	assert.Equal(t, models.RelationshipPendingReceived, status)
	assert.Equal(t, models.RelationshipPendingReceived, w.Status())
}

func TestRelationshipWorkflow_AcceptOnlyFromPendingReceived(t *testing.T) {
	gw := &fakeGateway{
		listPendingFn: func(ctx context.Context, authToken string) ([]models.PendingRequest, error) {
			t.Fatal("gateway must not be called when nothing is pending")
			return nil, nil
		},
	}
	w := NewRelationshipWorkflow(gw)
	w.Reset("p1")

	status, err := w.AcceptIncoming(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, models.RelationshipNone, status)
}
