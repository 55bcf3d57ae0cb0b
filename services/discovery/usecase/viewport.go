package usecase

import (
	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/services/discovery"
)

// ViewportController derives map camera intents from position changes,
// category switches and deep-link focus requests. It is fire-and-forget:
// intents are emitted to the sink and nothing waits on the animation.
type ViewportController struct {
	sink discovery.EventSink
}

// NewViewportController creates a controller emitting to sink
func NewViewportController(sink discovery.EventSink) *ViewportController {
	return &ViewportController{sink: sink}
}

// OnFirstFix centers tightly on the first live position
func (v *ViewportController) OnFirstFix(pos models.Position) {
	v.sink.CameraMove(models.CameraIntent{
		Center:     pos.GeoLocation(),
		Zoom:       zoomFirstFix,
		DurationMs: cameraMoveDuration.Milliseconds(),
	})
}

// OnCategorySwitch re-centers on the current position with the
// category's zoom level
func (v *ViewportController) OnCategorySwitch(pos models.Position, spec CategorySpec) {
	v.sink.CameraMove(models.CameraIntent{
		Center:     pos.GeoLocation(),
		Zoom:       spec.Zoom,
		DurationMs: cameraMoveDuration.Milliseconds(),
	})
}

// OnFocus centers tightly on an externally supplied coordinate,
// regardless of the active category
func (v *ViewportController) OnFocus(lat, lng float64) {
	v.sink.CameraMove(models.CameraIntent{
		Center:     models.GeoLocation{Latitude: lat, Longitude: lng},
		Zoom:       zoomFocus,
		DurationMs: cameraMoveDuration.Milliseconds(),
	})
}
