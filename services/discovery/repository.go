package discovery

import (
	"context"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

// MarkerCache holds the last successfully fetched collections so transient
// remote failures never clear the map to empty.
type MarkerCache interface {
	SetEntities(ctx context.Context, userID string, category models.Category, cell string, entities []models.Entity) error
	GetEntities(ctx context.Context, userID string, category models.Category, cell string) ([]models.Entity, error)
	SetSignals(ctx context.Context, userID string, signals []models.EmergencySignal) error
	GetSignals(ctx context.Context, userID string) ([]models.EmergencySignal, error)
}

// CredentialStore resolves stored credentials (auth tokens for the
// collaborator services) per user. Returns ErrNotFound when absent.
type CredentialStore interface {
	Get(ctx context.Context, userID, name string) (string, error)
}

// CredentialAuthToken is the credential name under which the collaborator
// auth token is stored.
const CredentialAuthToken = "auth_token"
