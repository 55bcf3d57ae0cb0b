package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/roadmate/roadmate/internal/pkg/logger"
	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/services/discovery"
)

// RelationshipWorkflow tracks the friendship-request state between the
// viewer and the currently selected person. The state is scoped to one
// selection at a time: Reset rebinds the workflow to a new person and a
// stale Refresh result for a previous person is discarded.
//
// Mutating actions are serialized: while one send/accept is in flight,
// further triggers are rejected with ErrActionInFlight.
type RelationshipWorkflow struct {
	gw discovery.DiscoveryGW

	mu       sync.Mutex
	personID string
	status   models.RelationshipStatus
	inFlight bool
}

// NewRelationshipWorkflow creates a workflow with no bound person
func NewRelationshipWorkflow(gw discovery.DiscoveryGW) *RelationshipWorkflow {
	return &RelationshipWorkflow{
		gw:     gw,
		status: models.RelationshipNone,
	}
}

// Reset binds the workflow to a new person and clears the status to none
func (w *RelationshipWorkflow) Reset(personID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.personID = personID
	w.status = models.RelationshipNone
	w.inFlight = false
}

// Status returns the current relationship status
func (w *RelationshipWorkflow) Status() models.RelationshipStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Refresh queries the remote status for personID and commits it only if
// the workflow is still bound to that person. Any fetch error defaults
// the status to none; it is never left hanging.
func (w *RelationshipWorkflow) Refresh(ctx context.Context, personID, authToken string) models.RelationshipStatus {
	status, err := w.gw.GetRelationshipStatus(ctx, personID, authToken)
	if err != nil {
		logger.Debug("relationship status fetch failed, defaulting to none",
			logger.String("person_id", personID),
			logger.Err(err))
		status = models.RelationshipNone
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.personID != personID {
		// Selection moved on while the fetch was in flight
		return w.status
	}
	w.status = status
	return w.status
}

// SendRequest sends a friend request to the bound person. Permitted only
// from none; on success the state moves to pending-sent, on failure it
// stays at none and the error is returned for user-visible messaging.
func (w *RelationshipWorkflow) SendRequest(ctx context.Context, authToken string) (models.RelationshipStatus, error) {
	w.mu.Lock()
	if w.personID == "" {
		w.mu.Unlock()
		return models.RelationshipNone, discovery.ErrNoSelection
	}
	if w.inFlight {
		status := w.status
		w.mu.Unlock()
		return status, discovery.ErrActionInFlight
	}
	if w.status != models.RelationshipNone {
		status := w.status
		w.mu.Unlock()
		return status, nil
	}
	w.inFlight = true
	personID := w.personID
	w.mu.Unlock()

	defer w.clearInFlight()

	result, err := w.gw.SendFriendRequest(ctx, personID, authToken)
	if err != nil {
		return models.RelationshipNone, fmt.Errorf("failed to send friend request: %w", err)
	}
	if !result.Success {
		return models.RelationshipNone, fmt.Errorf("friend request rejected: %s", result.Message)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.personID == personID {
		w.status = models.RelationshipPendingSent
	}
	return models.RelationshipPendingSent, nil
}

// AcceptIncoming confirms a pending request from the bound person.
// Permitted only from pending-received. The pending record is resolved by
// a list lookup on the requester id; when no matching record exists the
// action is a reported no-op and the state is unchanged.
func (w *RelationshipWorkflow) AcceptIncoming(ctx context.Context, authToken string) (models.RelationshipStatus, error) {
	w.mu.Lock()
	if w.personID == "" {
		w.mu.Unlock()
		return models.RelationshipNone, discovery.ErrNoSelection
	}
	if w.inFlight {
		status := w.status
		w.mu.Unlock()
		return status, discovery.ErrActionInFlight
	}
	if w.status != models.RelationshipPendingReceived {
		status := w.status
		w.mu.Unlock()
		return status, nil
	}
	w.inFlight = true
	personID := w.personID
	w.mu.Unlock()

	defer w.clearInFlight()

	pending, err := w.gw.ListPendingRequests(ctx, authToken)
	if err != nil {
		return models.RelationshipPendingReceived, fmt.Errorf("failed to list pending requests: %w", err)
	}

	requestID := ""
	for _, req := range pending {
		if req.RequesterID == personID {
			requestID = req.ID
			break
		}
	}
	if requestID == "" {
		return models.RelationshipPendingReceived, discovery.ErrNotFound
	}

	result, err := w.gw.AcceptFriendRequest(ctx, requestID, authToken)
	if err != nil {
		return models.RelationshipPendingReceived, fmt.Errorf("failed to accept friend request: %w", err)
	}
	if !result.Success {
		return models.RelationshipPendingReceived, fmt.Errorf("accept rejected: %s", result.Message)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.personID == personID {
		w.status = models.RelationshipFriends
	}
	return models.RelationshipFriends, nil
}

func (w *RelationshipWorkflow) clearInFlight() {
	w.mu.Lock()
	w.inFlight = false
	w.mu.Unlock()
}
