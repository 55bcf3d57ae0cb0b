package usecase

import (
	"context"
	"fmt"

	"github.com/roadmate/roadmate/internal/pkg/logger"
	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/internal/utils"
	"github.com/roadmate/roadmate/services/discovery"
)

// NearbyFetcher invokes the remote query matching a category and returns
// normalized entities. Fetches are fail-soft: on a remote error the last
// good collection cached for the same area is returned instead, so a
// transient network error never flashes an empty map.
type NearbyFetcher struct {
	gw    discovery.DiscoveryGW
	cache discovery.MarkerCache
	cfg   models.DiscoveryConfig
}

// NewNearbyFetcher creates a fetcher
func NewNearbyFetcher(gw discovery.DiscoveryGW, cache discovery.MarkerCache, cfg models.DiscoveryConfig) *NearbyFetcher {
	return &NearbyFetcher{gw: gw, cache: cache, cfg: cfg}
}

// Fetch queries the remote service for a category around loc. The auth
// token is only used by the person search; place categories query a fixed
// radius without authentication.
func (f *NearbyFetcher) Fetch(ctx context.Context, userID string, loc models.GeoLocation, category models.Category, authToken string) ([]models.Entity, error) {
	spec, ok := CategorySpecFor(category)
	if !ok {
		return nil, discovery.ErrInvalidCategory
	}

	var entities []models.Entity
	var err error
	if spec.Kind == models.KindPerson {
		entities, err = f.gw.GetNearbyPersons(ctx, loc, authToken)
	} else {
		entities, err = f.gw.GetNearbyPlaces(ctx, loc, category, f.cfg.PlaceRadiusM)
	}

	cell := utils.EncodeCell(loc)
	if err != nil {
		cached, cacheErr := f.cache.GetEntities(ctx, userID, category, cell)
		if cacheErr != nil || cached == nil {
			return nil, fmt.Errorf("nearby fetch failed for %s: %w", category, err)
		}
		logger.Debug("nearby fetch failed, serving cached collection",
			logger.String("category", string(category)),
			logger.Int("cached", len(cached)),
			logger.Err(err))
		return cached, nil
	}

	entities = f.normalize(entities, loc, spec)

	if cacheErr := f.cache.SetEntities(ctx, userID, category, cell, entities); cacheErr != nil {
		logger.Warn("failed to cache nearby collection",
			logger.String("category", string(category)),
			logger.Err(cacheErr))
	}

	return entities, nil
}

// Signals queries the SOS registry around loc, with the same fail-soft
// cache fallback as Fetch.
func (f *NearbyFetcher) Signals(ctx context.Context, userID string, loc models.GeoLocation) ([]models.EmergencySignal, error) {
	signals, err := f.gw.GetActiveSignals(ctx, loc)
	if err != nil {
		cached, cacheErr := f.cache.GetSignals(ctx, userID)
		if cacheErr != nil || cached == nil {
			return nil, fmt.Errorf("emergency registry fetch failed: %w", err)
		}
		return cached, nil
	}

	if cacheErr := f.cache.SetSignals(ctx, userID, signals); cacheErr != nil {
		logger.Warn("failed to cache emergency signals",
			logger.Err(cacheErr))
	}

	return signals, nil
}

// normalize drops entities that cannot be rendered and fills in derived
// fields. An entity without coordinates is dropped here, never erased
// from any backing store; a missing distance is computed from loc when
// coordinates allow it.
func (f *NearbyFetcher) normalize(entities []models.Entity, loc models.GeoLocation, spec CategorySpec) []models.Entity {
	result := make([]models.Entity, 0, len(entities))
	for _, e := range entities {
		// The upstream services use the zero pair for "no coordinates"
		if e.Location.Latitude == 0 && e.Location.Longitude == 0 {
			continue
		}
		e.Category = spec.Category
		e.Kind = spec.Kind
		e.MarkerStyle = spec.MarkerStyle
		if e.DistanceKm == nil {
			d := utils.CalculateDistanceKm(loc, e.Location)
			e.DistanceKm = &d
		}
		result = append(result, e)
	}
	return result
}
