package models

// RelationshipStatus is the friendship-request state between the viewer
// and a selected person entity.
type RelationshipStatus string

const (
	RelationshipNone            RelationshipStatus = "none"
	RelationshipPendingSent     RelationshipStatus = "pending_sent"
	RelationshipPendingReceived RelationshipStatus = "pending_received"
	RelationshipFriends         RelationshipStatus = "friends"
)

// PendingRequest is an incoming friend request awaiting confirmation
type PendingRequest struct {
	ID          string `json:"id"`
	RequesterID string `json:"requester_id"`
}

// ActionResult is the outcome of a user-initiated remote action, carrying
// an optional message for user-visible feedback.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
