package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/roadmate/roadmate/internal/pkg/logger"
	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/internal/utils"
	"github.com/roadmate/roadmate/services/discovery"
)

// LocationTracker acquires and streams the device position with
// throttling. It owns the last known position used by every other
// component; when no live location is available it degrades silently to
// the caller-supplied default.
//
// State machine: only the first accepted fix after Start triggers the
// initial side effects (auto-center, first nearby fetch). The transition
// is recorded in initialFetchDone, exactly once per tracker lifetime.
type LocationTracker struct {
	provider   discovery.LocationProvider
	cfg        models.TrackerConfig
	defaultPos models.Position

	onFirstFix func(models.Position)
	onFix      func(models.Position)

	mu               sync.Mutex
	watching         bool
	cancelWatch      func()
	last             *models.Position
	lastEmit         time.Time
	initialFetchDone bool
}

// NewLocationTracker creates a tracker. onFirstFix runs once for the first
// accepted fix; onFix runs for every accepted fix including the first.
func NewLocationTracker(
	provider discovery.LocationProvider,
	cfg models.TrackerConfig,
	defaultPos models.Position,
	onFirstFix func(models.Position),
	onFix func(models.Position),
) *LocationTracker {
	return &LocationTracker{
		provider:   provider,
		cfg:        cfg,
		defaultPos: defaultPos,
		onFirstFix: onFirstFix,
		onFix:      onFix,
	}
}

// Start begins the continuous watch. Permission denial, a disabled
// location service, or a watch failure all degrade to "no live location"
// without surfacing an error; the rest of the engine keeps operating on
// the default position.
func (t *LocationTracker) Start(ctx context.Context) {
	enabled, err := t.provider.ServiceEnabled(ctx)
	if err != nil || !enabled {
		logger.Debug("location service unavailable, using default position",
			logger.Err(err))
		return
	}

	granted, err := t.provider.RequestPermission(ctx)
	if err != nil || !granted {
		logger.Debug("location permission not granted, using default position",
			logger.Err(err))
		return
	}

	cancel, err := t.provider.Watch(ctx, discovery.WatchConfig{
		Accuracy:          t.cfg.Accuracy,
		MinIntervalSecs:   t.cfg.MinIntervalSecs,
		MinDistanceMeters: t.cfg.MinDistanceMeters,
	}, t.handleFix)
	if err != nil {
		logger.Warn("location watch failed to start",
			logger.Err(err))
		return
	}

	t.mu.Lock()
	t.watching = true
	t.cancelWatch = cancel
	t.mu.Unlock()
}

// Stop releases the watch subscription
func (t *LocationTracker) Stop() {
	t.mu.Lock()
	cancel := t.cancelWatch
	t.watching = false
	t.cancelWatch = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Live reports whether a watch subscription is active
func (t *LocationTracker) Live() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.watching
}

// Current returns the last known position, or the default when no fix
// has been accepted yet.
func (t *LocationTracker) Current() models.Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last != nil {
		return *t.last
	}
	return t.defaultPos
}

// InitialFetchDone reports whether the first-fix side effects have run
func (t *LocationTracker) InitialFetchDone() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialFetchDone
}

// handleFix throttles and stores an incoming fix. Providers are asked to
// honor the thresholds but are not trusted to: a fix arriving sooner than
// the minimum interval, or without the minimum movement, is dropped.
func (t *LocationTracker) handleFix(p models.Position) {
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}

	t.mu.Lock()

	if t.last != nil {
		interval := time.Duration(t.cfg.MinIntervalSecs) * time.Second
		if p.Timestamp.Sub(t.lastEmit) < interval {
			t.mu.Unlock()
			return
		}
		moved := utils.CalculateDistanceMeters(t.last.GeoLocation(), p.GeoLocation())
		if moved < t.cfg.MinDistanceMeters {
			t.mu.Unlock()
			return
		}
	}

	first := t.last == nil && !t.initialFetchDone
	if first {
		t.initialFetchDone = true
	}
	t.last = &p
	t.lastEmit = p.Timestamp
	t.mu.Unlock()

	if first && t.onFirstFix != nil {
		t.onFirstFix(p)
	}
	if t.onFix != nil {
		t.onFix(p)
	}
}
