package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roadmate/roadmate/internal/pkg/database"
	"github.com/roadmate/roadmate/services/discovery"
)

// CredentialRepo resolves stored per-user credentials from Postgres
type CredentialRepo struct {
	db *database.PostgresClient
}

// NewCredentialRepo creates a new credential repository
func NewCredentialRepo(db *database.PostgresClient) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Get returns the named credential value for a user, or ErrNotFound
func (r *CredentialRepo) Get(ctx context.Context, userID, name string) (string, error) {
	query := `
		SELECT value
		FROM user_credentials
		WHERE user_id = $1 AND name = $2`

	var value string
	err := r.db.GetDB().GetContext(ctx, &value, query, userID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", discovery.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}
	return value, nil
}
