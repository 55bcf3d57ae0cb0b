package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/services/discovery"
)

// wsLocationProvider adapts the device connection into the engine's
// location source. The device answers the handshake with a single
// location.enable event carrying the service and permission state;
// ServiceEnabled and RequestPermission block until it arrives.
type wsLocationProvider struct {
	ready     chan struct{}
	readyOnce sync.Once

	mu             sync.Mutex
	serviceEnabled bool
	granted        bool
	onFix          func(models.Position)
}

func newWSLocationProvider() *wsLocationProvider {
	return &wsLocationProvider{ready: make(chan struct{})}
}

// HandleEnable records the device's answer and unblocks the handshake
func (p *wsLocationProvider) HandleEnable(serviceEnabled, granted bool) {
	p.mu.Lock()
	p.serviceEnabled = serviceEnabled
	p.granted = granted
	p.mu.Unlock()

	p.readyOnce.Do(func() { close(p.ready) })
}

// HandleFix forwards a device fix to the active watch, if any
func (p *wsLocationProvider) HandleFix(lat, lng float64, ts time.Time) {
	p.mu.Lock()
	onFix := p.onFix
	p.mu.Unlock()

	if onFix != nil {
		onFix(models.Position{Latitude: lat, Longitude: lng, Timestamp: ts})
	}
}

func (p *wsLocationProvider) ServiceEnabled(ctx context.Context) (bool, error) {
	select {
	case <-p.ready:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.serviceEnabled, nil
}

func (p *wsLocationProvider) RequestPermission(ctx context.Context) (bool, error) {
	select {
	case <-p.ready:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.granted, nil
}

func (p *wsLocationProvider) Watch(ctx context.Context, cfg discovery.WatchConfig, onFix func(models.Position)) (func(), error) {
	p.mu.Lock()
	p.onFix = onFix
	p.mu.Unlock()

	cancel := func() {
		p.mu.Lock()
		p.onFix = nil
		p.mu.Unlock()
	}
	return cancel, nil
}
