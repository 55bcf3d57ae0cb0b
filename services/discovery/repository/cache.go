package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/roadmate/roadmate/internal/pkg/constants"
	"github.com/roadmate/roadmate/internal/pkg/database"
	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/services/discovery"
)

// MarkerCacheRepo stores last-good marker collections in Redis so a
// transient collaborator failure serves stale data instead of an empty map.
type MarkerCacheRepo struct {
	client *database.RedisClient
	ttl    time.Duration
}

// NewMarkerCacheRepo creates a new marker cache repository
func NewMarkerCacheRepo(client *database.RedisClient, cfg models.DiscoveryConfig) *MarkerCacheRepo {
	return &MarkerCacheRepo{
		client: client,
		ttl:    time.Duration(cfg.CacheTTLSecs) * time.Second,
	}
}

// SetEntities caches an entity collection for a user, category and geohash cell
func (r *MarkerCacheRepo) SetEntities(ctx context.Context, userID string, category models.Category, cell string, entities []models.Entity) error {
	data, err := json.Marshal(entities)
	if err != nil {
		return fmt.Errorf("failed to marshal entity collection: %w", err)
	}

	key := fmt.Sprintf(constants.KeyNearbyCache, userID, category, cell)
	if err := r.client.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to cache entity collection: %w", err)
	}
	return nil
}

// GetEntities returns the cached collection, or ErrNotFound when the key
// is absent or expired.
func (r *MarkerCacheRepo) GetEntities(ctx context.Context, userID string, category models.Category, cell string) ([]models.Entity, error) {
	key := fmt.Sprintf(constants.KeyNearbyCache, userID, category, cell)

	data, err := r.client.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, discovery.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached entity collection: %w", err)
	}

	var entities []models.Entity
	if err := json.Unmarshal([]byte(data), &entities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached entity collection: %w", err)
	}
	return entities, nil
}

// SetSignals caches the SOS signal set for a user
func (r *MarkerCacheRepo) SetSignals(ctx context.Context, userID string, signals []models.EmergencySignal) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("failed to marshal signal set: %w", err)
	}

	key := fmt.Sprintf(constants.KeySOSCache, userID)
	if err := r.client.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to cache signal set: %w", err)
	}
	return nil
}

// GetSignals returns the cached SOS signal set, or ErrNotFound
func (r *MarkerCacheRepo) GetSignals(ctx context.Context, userID string) ([]models.EmergencySignal, error) {
	key := fmt.Sprintf(constants.KeySOSCache, userID)

	data, err := r.client.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, discovery.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached signal set: %w", err)
	}

	var signals []models.EmergencySignal
	if err := json.Unmarshal([]byte(data), &signals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached signal set: %w", err)
	}
	return signals, nil
}
