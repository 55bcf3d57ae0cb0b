package usecase

import (
	"time"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

// CategorySpec is the static per-category configuration: which entity
// kind serves it, how the camera reacts to it, and how its markers look.
// The remote query selector for place categories lives on models.Category
// so the gateway shares it without importing this package.
type CategorySpec struct {
	Category    models.Category
	Kind        models.EntityKind
	Zoom        float64
	MarkerStyle string
}

// Camera policy. The social category gets a wide view; place categories
// get a tighter one reflecting the fixed search radius.
const (
	zoomFirstFix = 15.0
	zoomFocus    = 16.0
	zoomSocial   = 11.0
	zoomPlace    = 13.0

	cameraMoveDuration = 600 * time.Millisecond
)

var catalog = map[models.Category]CategorySpec{
	models.CategoryNomads: {
		Category:    models.CategoryNomads,
		Kind:        models.KindPerson,
		Zoom:        zoomSocial,
		MarkerStyle: "nomad",
	},
	models.CategoryMechanics: {
		Category:    models.CategoryMechanics,
		Kind:        models.KindPlace,
		Zoom:        zoomPlace,
		MarkerStyle: "mechanic",
	},
	models.CategoryMarkets: {
		Category:    models.CategoryMarkets,
		Kind:        models.KindPlace,
		Zoom:        zoomPlace,
		MarkerStyle: "market",
	},
	models.CategoryFuel: {
		Category:    models.CategoryFuel,
		Kind:        models.KindPlace,
		Zoom:        zoomPlace,
		MarkerStyle: "fuel",
	},
}

// CategorySpecFor returns the static spec for a category
func CategorySpecFor(c models.Category) (CategorySpec, bool) {
	spec, ok := catalog[c]
	return spec, ok
}
