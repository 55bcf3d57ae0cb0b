package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/roadmate/roadmate/internal/pkg/logger"
	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/services/discovery"
)

// Session is the live map-state engine for one connected user. It owns
// the tracker, the marker set, the selection and relationship state and
// the active category; everything else derives from those.
//
// All remote calls run on goroutines that re-check relevance (category
// generation, selection sequence) before committing, so a stale result
// can never overwrite a newer state.
type Session struct {
	userID string
	handle discovery.SessionHandle
	cfg    *models.Config
	gw     discovery.DiscoveryGW
	creds  discovery.CredentialStore
	sink   discovery.EventSink

	tracker      *LocationTracker
	markers      *MarkerSet
	selection    *SelectionController
	relationship *RelationshipWorkflow
	viewport     *ViewportController
	fetcher      *NearbyFetcher

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	query      string
	fetchSeq   uint64
	lastIssued map[models.Category]uint64
}

func newSession(
	userID string,
	cfg *models.Config,
	gw discovery.DiscoveryGW,
	cache discovery.MarkerCache,
	creds discovery.CredentialStore,
	provider discovery.LocationProvider,
	sink discovery.EventSink,
) *Session {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		userID:       userID,
		cfg:          cfg,
		gw:           gw,
		creds:        creds,
		sink:         sink,
		markers:      NewMarkerSet(models.CategoryNomads),
		selection:    NewSelectionController(),
		relationship: NewRelationshipWorkflow(gw),
		viewport:     NewViewportController(sink),
		fetcher:      NewNearbyFetcher(gw, cache, cfg.Discovery),
		ctx:          ctx,
		cancel:       cancel,
		lastIssued:   make(map[models.Category]uint64),
	}

	defaultPos := models.Position{
		Latitude:  cfg.Discovery.DefaultLatitude,
		Longitude: cfg.Discovery.DefaultLongitude,
		Timestamp: time.Now(),
	}
	s.tracker = NewLocationTracker(provider, cfg.Tracker, defaultPos, s.onFirstFix, s.onFix)

	return s
}

// start launches the tracker handshake. Providers may block until the
// device answers the permission prompt, so the handshake runs off the
// caller's goroutine.
func (s *Session) start() {
	go s.tracker.Start(s.ctx)
}

func (s *Session) stop() {
	s.tracker.Stop()
	s.cancel()
}

// onFirstFix runs the initial side effects, exactly once per session:
// auto-center the viewport, fetch the default category and the SOS
// registry. Later fixes only update the stored position.
func (s *Session) onFirstFix(pos models.Position) {
	s.viewport.OnFirstFix(pos)
	s.issueFetch(s.markers.ActiveCategory())
	s.fetchSignals()

	if refresh := s.cfg.Discovery.EmergencyRefreshSecs; refresh > 0 {
		go s.refreshSignalsLoop(time.Duration(refresh) * time.Second)
	}
}

func (s *Session) onFix(models.Position) {
	// Position is already stored by the tracker; nothing else reacts
	// to fixes after the first one.
}

// refreshSignalsLoop periodically re-polls the SOS registry. Only runs
// when explicitly enabled; the default policy fetches once per session.
func (s *Session) refreshSignalsLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.fetchSignals()
		}
	}
}

// issueFetch starts an asynchronous nearby fetch for a category. The
// result commits only if no newer fetch was issued for that category and
// the category is still active when it resolves.
func (s *Session) issueFetch(category models.Category) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.lastIssued[category] = seq
	s.mu.Unlock()

	go func() {
		token, err := s.optionalAuthToken(s.ctx)
		if err != nil {
			logger.Warn("credential lookup failed for nearby fetch",
				logger.String("user_id", s.userID),
				logger.Err(err))
		}

		loc := s.tracker.Current().GeoLocation()
		entities, err := s.fetcher.Fetch(s.ctx, s.userID, loc, category, token)
		if err != nil {
			// Fail-soft: the marker set keeps whatever it last had
			logger.Warn("nearby fetch failed, keeping previous collection",
				logger.String("user_id", s.userID),
				logger.String("category", string(category)),
				logger.Err(err))
			return
		}

		s.mu.Lock()
		stale := s.lastIssued[category] != seq || s.markers.ActiveCategory() != category
		s.mu.Unlock()
		if stale {
			logger.Debug("discarding stale nearby fetch result",
				logger.String("category", string(category)))
			return
		}

		s.markers.SetEntities(category, entities)
		s.pushMarkers()
	}()
}

func (s *Session) fetchSignals() {
	go func() {
		loc := s.tracker.Current().GeoLocation()
		signals, err := s.fetcher.Signals(s.ctx, s.userID, loc)
		if err != nil {
			logger.Warn("emergency registry fetch failed, keeping previous signals",
				logger.String("user_id", s.userID),
				logger.Err(err))
			return
		}
		s.markers.SetSignals(signals)
		s.pushMarkers()
	}()
}

// SwitchCategory atomically activates a category, re-centers the camera
// and issues the fetch for the new collection.
func (s *Session) SwitchCategory(ctx context.Context, category models.Category) error {
	spec, ok := CategorySpecFor(category)
	if !ok {
		return discovery.ErrInvalidCategory
	}

	s.markers.SetActive(category)
	s.viewport.OnCategorySwitch(s.tracker.Current(), spec)
	s.issueFetch(category)

	// Show the last good collection for this category immediately
	s.pushMarkers()
	return nil
}

// Search stores the query and returns the derived rendered list
func (s *Session) Search(query string) []models.Entity {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
	return s.Rendered()
}

// Rendered derives the current filtered, distance-sorted marker list
func (s *Session) Rendered() []models.Entity {
	s.mu.Lock()
	query := s.query
	s.mu.Unlock()
	return FilterAndSort(s.markers.Rendered(), query)
}

func (s *Session) pushMarkers() {
	s.sink.MarkersUpdated(s.Rendered())
}

// SelectMarker moves the selection to a rendered entity. Selecting a
// person while the social category is active resets the relationship
// state to none and refreshes it asynchronously.
func (s *Session) SelectMarker(ctx context.Context, entityID string) error {
	entity, ok := s.markers.Get(entityID)
	if !ok {
		return discovery.ErrNotFound
	}

	seq := s.selection.Select(entity)

	if entity.Kind != models.KindPerson || entity.EmergencyActive ||
		s.markers.ActiveCategory() != models.CategoryNomads {
		return nil
	}

	s.relationship.Reset(entity.ID)
	s.sink.RelationshipUpdated(models.RelationshipNone)

	go func() {
		token, err := s.authToken(s.ctx)
		if err != nil {
			// Without a credential the status simply stays none
			return
		}
		status := s.relationship.Refresh(s.ctx, entity.ID, token)
		if s.selection.IsCurrent(seq) {
			s.sink.RelationshipUpdated(status)
		}
	}()

	return nil
}

// Dismiss returns the selection to Idle
func (s *Session) Dismiss() {
	s.selection.Clear()
	s.relationship.Reset("")
}

// Focus handles a deep-link focus event: the viewport re-centers and an
// open detail state is dismissed, but focus never forces a selection.
func (s *Session) Focus(lat, lng float64) {
	if _, ok := s.selection.Current(); ok {
		s.Dismiss()
	}
	s.viewport.OnFocus(lat, lng)
}

// SendFriendRequest sends a friend request for the selected person
func (s *Session) SendFriendRequest(ctx context.Context) (*models.ActionResult, error) {
	if err := s.requireSelectedPerson(); err != nil {
		return nil, err
	}
	token, err := s.authToken(ctx)
	if err != nil {
		return nil, err
	}

	status, err := s.relationship.SendRequest(ctx, token)
	if errors.Is(err, discovery.ErrActionInFlight) {
		// Concurrent triggers are ignored while one is pending
		return &models.ActionResult{Success: false, Message: "request already in progress"}, nil
	}
	if err != nil {
		return nil, err
	}

	s.sink.RelationshipUpdated(status)
	return &models.ActionResult{Success: true}, nil
}

// AcceptFriendRequest confirms the pending request from the selected person
func (s *Session) AcceptFriendRequest(ctx context.Context) (*models.ActionResult, error) {
	if err := s.requireSelectedPerson(); err != nil {
		return nil, err
	}
	token, err := s.authToken(ctx)
	if err != nil {
		return nil, err
	}

	status, err := s.relationship.AcceptIncoming(ctx, token)
	if errors.Is(err, discovery.ErrActionInFlight) {
		return &models.ActionResult{Success: false, Message: "request already in progress"}, nil
	}
	if err != nil {
		return nil, err
	}

	s.sink.RelationshipUpdated(status)
	return &models.ActionResult{Success: true}, nil
}

// BlockSelected blocks the selected person and removes their marker. The
// selection returns to Idle so the next render cannot show the blocked
// entity.
func (s *Session) BlockSelected(ctx context.Context) (*models.ActionResult, error) {
	if err := s.requireSelectedPerson(); err != nil {
		return nil, err
	}
	entity, _ := s.selection.Current()
	token, err := s.authToken(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.gw.BlockUser(ctx, entity.ID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to block user: %w", err)
	}
	if !result.Success {
		return result, nil
	}

	s.markers.Remove(entity.ID)
	if current, ok := s.selection.Current(); ok && current.ID == entity.ID {
		s.Dismiss()
	}
	s.pushMarkers()

	return result, nil
}

// SendMeetingRequest asks the notification service to deliver a meeting
// request to the selected person.
func (s *Session) SendMeetingRequest(ctx context.Context) (*models.ActionResult, error) {
	if err := s.requireSelectedPerson(); err != nil {
		return nil, err
	}
	entity, _ := s.selection.Current()
	token, err := s.authToken(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.gw.SendMeetingRequest(ctx, entity.ID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to send meeting request: %w", err)
	}
	return result, nil
}

// FlagEmergency publishes an emergency flag for the selected entity, or
// for the user themselves when nothing is selected.
func (s *Session) FlagEmergency(ctx context.Context) error {
	targetID := s.userID
	if entity, ok := s.selection.Current(); ok {
		targetID = entity.ID
	}

	event := &models.EmergencyFlagEvent{
		UserID:    s.userID,
		TargetID:  targetID,
		Location:  s.tracker.Current().GeoLocation(),
		Timestamp: models.Now(),
	}
	if err := s.gw.PublishEmergencyFlag(ctx, event); err != nil {
		return fmt.Errorf("failed to publish emergency flag: %w", err)
	}

	logger.Info("emergency flagged",
		logger.String("user_id", s.userID),
		logger.String("target_id", targetID))
	return nil
}

func (s *Session) requireSelectedPerson() error {
	entity, ok := s.selection.Current()
	if !ok {
		return discovery.ErrNoSelection
	}
	if entity.Kind != models.KindPerson {
		return discovery.ErrNotFound
	}
	return nil
}

// authToken resolves the stored collaborator token; its absence blocks
// the authenticated action.
func (s *Session) authToken(ctx context.Context) (string, error) {
	token, err := s.creds.Get(ctx, s.userID, discovery.CredentialAuthToken)
	if errors.Is(err, discovery.ErrNotFound) {
		return "", discovery.ErrMissingCredential
	}
	if err != nil {
		return "", fmt.Errorf("credential lookup failed: %w", err)
	}
	return token, nil
}

// optionalAuthToken resolves the token when present; absence is fine for
// unauthenticated queries.
func (s *Session) optionalAuthToken(ctx context.Context) (string, error) {
	token, err := s.creds.Get(ctx, s.userID, discovery.CredentialAuthToken)
	if errors.Is(err, discovery.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}
