package discovery

import (
	"context"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

// SessionHandle identifies one OpenSession call. Teardown passes it back
// so a superseded connection cannot close the session that replaced its own.
type SessionHandle uint64

// DiscoveryUC represents the discovery engine usecase interface. All
// session-scoped operations are keyed by the authenticated user id.
type DiscoveryUC interface {
	// Session lifecycle
	OpenSession(ctx context.Context, userID string, provider LocationProvider, sink EventSink) (SessionHandle, error)
	CloseSession(userID string, handle SessionHandle)

	// Map state
	SwitchCategory(ctx context.Context, userID string, category models.Category) error
	Search(userID string, query string) ([]models.Entity, error)
	SelectMarker(ctx context.Context, userID, entityID string) error
	Dismiss(userID string) error

	// Selection actions
	SendFriendRequest(ctx context.Context, userID string) (*models.ActionResult, error)
	AcceptFriendRequest(ctx context.Context, userID string) (*models.ActionResult, error)
	BlockSelected(ctx context.Context, userID string) (*models.ActionResult, error)
	SendMeetingRequest(ctx context.Context, userID string) (*models.ActionResult, error)
	FlagEmergency(ctx context.Context, userID string) error

	// Deep-link focus events (viewport only, never selection)
	HandleFocus(event models.FocusEvent)

	// One-shot manual query, usable without an open session
	Nearby(ctx context.Context, userID string, loc models.GeoLocation, category models.Category) ([]models.Entity, error)
}
