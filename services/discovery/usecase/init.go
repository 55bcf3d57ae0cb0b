package usecase

import (
	"context"
	"sync"

	"github.com/roadmate/roadmate/internal/pkg/logger"
	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/services/discovery"
)

// DiscoveryUC implements the discovery usecase. It keeps one live
// Session per connected user and routes every operation to it.
type DiscoveryUC struct {
	cfg   *models.Config
	gw    discovery.DiscoveryGW
	cache discovery.MarkerCache
	creds discovery.CredentialStore

	mu         sync.RWMutex
	sessions   map[string]*Session
	lastHandle uint64
}

// NewDiscoveryUC creates a new discovery usecase
func NewDiscoveryUC(
	cfg *models.Config,
	gw discovery.DiscoveryGW,
	cache discovery.MarkerCache,
	creds discovery.CredentialStore,
) *DiscoveryUC {
	return &DiscoveryUC{
		cfg:      cfg,
		gw:       gw,
		cache:    cache,
		creds:    creds,
		sessions: make(map[string]*Session),
	}
}

// OpenSession creates and starts the engine session for a user. A second
// open for the same user replaces the previous session, so a reconnecting
// device never talks to a stale engine. The returned handle must be passed
// back to CloseSession.
func (uc *DiscoveryUC) OpenSession(ctx context.Context, userID string, provider discovery.LocationProvider, sink discovery.EventSink) (discovery.SessionHandle, error) {
	session := newSession(userID, uc.cfg, uc.gw, uc.cache, uc.creds, provider, sink)

	uc.mu.Lock()
	uc.lastHandle++
	session.handle = discovery.SessionHandle(uc.lastHandle)
	if old, ok := uc.sessions[userID]; ok {
		old.stop()
	}
	uc.sessions[userID] = session
	uc.mu.Unlock()

	session.start()
	logger.Info("discovery session opened", logger.String("user_id", userID))
	return session.handle, nil
}

// CloseSession stops and removes the user's session. A handle from a
// superseded connection no longer matches the registered session and the
// call is a no-op, so the replacement session survives the old
// connection's teardown.
func (uc *DiscoveryUC) CloseSession(userID string, handle discovery.SessionHandle) {
	uc.mu.Lock()
	session, ok := uc.sessions[userID]
	if ok && session.handle == handle {
		delete(uc.sessions, userID)
	} else {
		ok = false
	}
	uc.mu.Unlock()

	if ok {
		session.stop()
		logger.Info("discovery session closed", logger.String("user_id", userID))
	}
}

func (uc *DiscoveryUC) session(userID string) (*Session, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	session, ok := uc.sessions[userID]
	if !ok {
		return nil, discovery.ErrSessionNotFound
	}
	return session, nil
}

// SwitchCategory activates a marker category for the user's session
func (uc *DiscoveryUC) SwitchCategory(ctx context.Context, userID string, category models.Category) error {
	session, err := uc.session(userID)
	if err != nil {
		return err
	}
	return session.SwitchCategory(ctx, category)
}

// Search applies a free-text query and returns the rendered marker list
func (uc *DiscoveryUC) Search(userID string, query string) ([]models.Entity, error) {
	session, err := uc.session(userID)
	if err != nil {
		return nil, err
	}
	return session.Search(query), nil
}

// SelectMarker moves the user's selection to a rendered entity
func (uc *DiscoveryUC) SelectMarker(ctx context.Context, userID, entityID string) error {
	session, err := uc.session(userID)
	if err != nil {
		return err
	}
	return session.SelectMarker(ctx, entityID)
}

// Dismiss clears the user's selection
func (uc *DiscoveryUC) Dismiss(userID string) error {
	session, err := uc.session(userID)
	if err != nil {
		return err
	}
	session.Dismiss()
	return nil
}

// SendFriendRequest sends a friend request to the selected person
func (uc *DiscoveryUC) SendFriendRequest(ctx context.Context, userID string) (*models.ActionResult, error) {
	session, err := uc.session(userID)
	if err != nil {
		return nil, err
	}
	return session.SendFriendRequest(ctx)
}

// AcceptFriendRequest accepts the pending request from the selected person
func (uc *DiscoveryUC) AcceptFriendRequest(ctx context.Context, userID string) (*models.ActionResult, error) {
	session, err := uc.session(userID)
	if err != nil {
		return nil, err
	}
	return session.AcceptFriendRequest(ctx)
}

// BlockSelected blocks the selected person and removes their marker
func (uc *DiscoveryUC) BlockSelected(ctx context.Context, userID string) (*models.ActionResult, error) {
	session, err := uc.session(userID)
	if err != nil {
		return nil, err
	}
	return session.BlockSelected(ctx)
}

// SendMeetingRequest sends a meeting request to the selected person
func (uc *DiscoveryUC) SendMeetingRequest(ctx context.Context, userID string) (*models.ActionResult, error) {
	session, err := uc.session(userID)
	if err != nil {
		return nil, err
	}
	return session.SendMeetingRequest(ctx)
}

// FlagEmergency publishes an emergency flag from the user's session
func (uc *DiscoveryUC) FlagEmergency(ctx context.Context, userID string) error {
	session, err := uc.session(userID)
	if err != nil {
		return err
	}
	return session.FlagEmergency(ctx)
}

// HandleFocus routes a deep-link focus event to the target user's
// session. Events for users without a session are dropped silently; the
// app will center itself on its next first fix anyway.
func (uc *DiscoveryUC) HandleFocus(event models.FocusEvent) {
	session, err := uc.session(event.UserID)
	if err != nil {
		logger.Debug("focus event for inactive session dropped",
			logger.String("user_id", event.UserID))
		return
	}
	session.Focus(event.Latitude, event.Longitude)
}

// Nearby runs a one-shot fetch without session state, for the REST
// surface. It shares the fetcher's cache fallback with session fetches.
func (uc *DiscoveryUC) Nearby(ctx context.Context, userID string, loc models.GeoLocation, category models.Category) ([]models.Entity, error) {
	if !category.Valid() {
		return nil, discovery.ErrInvalidCategory
	}

	token, err := uc.creds.Get(ctx, userID, discovery.CredentialAuthToken)
	if err != nil {
		token = ""
	}

	fetcher := NewNearbyFetcher(uc.gw, uc.cache, uc.cfg.Discovery)
	return fetcher.Fetch(ctx, userID, loc, category, token)
}
