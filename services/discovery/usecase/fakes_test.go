package usecase

import (
	"context"
	"sync"

	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/services/discovery"
)

// fakeGateway implements discovery.DiscoveryGW with overridable behavior
// per operation. Unset operations return empty results.
type fakeGateway struct {
	getNearbyPersonsFn    func(ctx context.Context, loc models.GeoLocation, authToken string) ([]models.Entity, error)
	getNearbyPlacesFn     func(ctx context.Context, loc models.GeoLocation, category models.Category, radiusM int) ([]models.Entity, error)
	getActiveSignalsFn    func(ctx context.Context, loc models.GeoLocation) ([]models.EmergencySignal, error)
	getRelationshipFn     func(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error)
	sendFriendRequestFn   func(ctx context.Context, personID, authToken string) (*models.ActionResult, error)
	listPendingFn         func(ctx context.Context, authToken string) ([]models.PendingRequest, error)
	acceptFriendRequestFn func(ctx context.Context, requestID, authToken string) (*models.ActionResult, error)
	blockUserFn           func(ctx context.Context, personID, authToken string) (*models.ActionResult, error)
	sendMeetingRequestFn  func(ctx context.Context, personID, authToken string) (*models.ActionResult, error)
	publishEmergencyFn    func(ctx context.Context, event *models.EmergencyFlagEvent) error
}

func (f *fakeGateway) GetNearbyPersons(ctx context.Context, loc models.GeoLocation, authToken string) ([]models.Entity, error) {
	if f.getNearbyPersonsFn != nil {
		return f.getNearbyPersonsFn(ctx, loc, authToken)
	}
	return nil, nil
}

func (f *fakeGateway) GetNearbyPlaces(ctx context.Context, loc models.GeoLocation, category models.Category, radiusM int) ([]models.Entity, error) {
	if f.getNearbyPlacesFn != nil {
		return f.getNearbyPlacesFn(ctx, loc, category, radiusM)
	}
	return nil, nil
}

func (f *fakeGateway) GetActiveSignals(ctx context.Context, loc models.GeoLocation) ([]models.EmergencySignal, error) {
	if f.getActiveSignalsFn != nil {
		return f.getActiveSignalsFn(ctx, loc)
	}
	return nil, nil
}

func (f *fakeGateway) GetRelationshipStatus(ctx context.Context, personID, authToken string) (models.RelationshipStatus, error) {
	if f.getRelationshipFn != nil {
		return f.getRelationshipFn(ctx, personID, authToken)
	}
	return models.RelationshipNone, nil
}

func (f *fakeGateway) SendFriendRequest(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	if f.sendFriendRequestFn != nil {
		return f.sendFriendRequestFn(ctx, personID, authToken)
	}
	return &models.ActionResult{Success: true}, nil
}

func (f *fakeGateway) ListPendingRequests(ctx context.Context, authToken string) ([]models.PendingRequest, error) {
	if f.listPendingFn != nil {
		return f.listPendingFn(ctx, authToken)
	}
	return nil, nil
}

func (f *fakeGateway) AcceptFriendRequest(ctx context.Context, requestID, authToken string) (*models.ActionResult, error) {
	if f.acceptFriendRequestFn != nil {
		return f.acceptFriendRequestFn(ctx, requestID, authToken)
	}
	return &models.ActionResult{Success: true}, nil
}

func (f *fakeGateway) BlockUser(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	if f.blockUserFn != nil {
		return f.blockUserFn(ctx, personID, authToken)
	}
	return &models.ActionResult{Success: true}, nil
}

func (f *fakeGateway) SendMeetingRequest(ctx context.Context, personID, authToken string) (*models.ActionResult, error) {
	if f.sendMeetingRequestFn != nil {
		return f.sendMeetingRequestFn(ctx, personID, authToken)
	}
	return &models.ActionResult{Success: true}, nil
}

func (f *fakeGateway) PublishEmergencyFlag(ctx context.Context, event *models.EmergencyFlagEvent) error {
	if f.publishEmergencyFn != nil {
		return f.publishEmergencyFn(ctx, event)
	}
	return nil
}

// fakeCache is an in-memory discovery.MarkerCache
type fakeCache struct {
	mu       sync.Mutex
	entities map[string][]models.Entity
	signals  map[string][]models.EmergencySignal
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entities: make(map[string][]models.Entity),
		signals:  make(map[string][]models.EmergencySignal),
	}
}

func (f *fakeCache) entityKey(userID string, category models.Category, cell string) string {
	return userID + "|" + string(category) + "|" + cell
}

func (f *fakeCache) SetEntities(ctx context.Context, userID string, category models.Category, cell string, entities []models.Entity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entities[f.entityKey(userID, category, cell)] = entities
	return nil
}

func (f *fakeCache) GetEntities(ctx context.Context, userID string, category models.Category, cell string) ([]models.Entity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entities, ok := f.entities[f.entityKey(userID, category, cell)]
	if !ok {
		return nil, discovery.ErrNotFound
	}
	return entities, nil
}

func (f *fakeCache) SetSignals(ctx context.Context, userID string, signals []models.EmergencySignal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signals[userID] = signals
	return nil
}

func (f *fakeCache) GetSignals(ctx context.Context, userID string) ([]models.EmergencySignal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	signals, ok := f.signals[userID]
	if !ok {
		return nil, discovery.ErrNotFound
	}
	return signals, nil
}

// fakeCredentials is an in-memory discovery.CredentialStore
type fakeCredentials struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeCredentials() *fakeCredentials {
	return &fakeCredentials{values: make(map[string]string)}
}

func (f *fakeCredentials) set(userID, name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[userID+"|"+name] = value
}

func (f *fakeCredentials) Get(ctx context.Context, userID, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.values[userID+"|"+name]
	if !ok {
		return "", discovery.ErrNotFound
	}
	return value, nil
}

// fakeSink records engine output and signals each push on a channel so
// tests can wait for asynchronous commits.
type fakeSink struct {
	mu            sync.Mutex
	markers       [][]models.Entity
	cameras       []models.CameraIntent
	relationships []models.RelationshipStatus

	markersCh chan []models.Entity
	cameraCh  chan models.CameraIntent
	statusCh  chan models.RelationshipStatus
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		markersCh: make(chan []models.Entity, 32),
		cameraCh:  make(chan models.CameraIntent, 32),
		statusCh:  make(chan models.RelationshipStatus, 32),
	}
}

func (f *fakeSink) MarkersUpdated(entities []models.Entity) {
	f.mu.Lock()
	f.markers = append(f.markers, entities)
	f.mu.Unlock()
	f.markersCh <- entities
}

func (f *fakeSink) CameraMove(intent models.CameraIntent) {
	f.mu.Lock()
	f.cameras = append(f.cameras, intent)
	f.mu.Unlock()
	f.cameraCh <- intent
}

func (f *fakeSink) RelationshipUpdated(status models.RelationshipStatus) {
	f.mu.Lock()
	f.relationships = append(f.relationships, status)
	f.mu.Unlock()
	f.statusCh <- status
}

func (f *fakeSink) cameraCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cameras)
}

// fakeProvider is a scriptable discovery.LocationProvider. The watch
// registers its callback and closes watchStarted; tests then push fixes
// through emit.
type fakeProvider struct {
	enabled bool
	granted bool

	mu           sync.Mutex
	onFix        func(models.Position)
	watchStarted chan struct{}
}

func newFakeProvider(enabled, granted bool) *fakeProvider {
	return &fakeProvider{
		enabled:      enabled,
		granted:      granted,
		watchStarted: make(chan struct{}),
	}
}

func (f *fakeProvider) ServiceEnabled(ctx context.Context) (bool, error) {
	return f.enabled, nil
}

func (f *fakeProvider) RequestPermission(ctx context.Context) (bool, error) {
	return f.granted, nil
}

func (f *fakeProvider) Watch(ctx context.Context, cfg discovery.WatchConfig, onFix func(models.Position)) (func(), error) {
	f.mu.Lock()
	f.onFix = onFix
	f.mu.Unlock()
	close(f.watchStarted)

	return func() {
		f.mu.Lock()
		f.onFix = nil
		f.mu.Unlock()
	}, nil
}

func (f *fakeProvider) emit(p models.Position) {
	f.mu.Lock()
	onFix := f.onFix
	f.mu.Unlock()
	if onFix != nil {
		onFix(p)
	}
}
