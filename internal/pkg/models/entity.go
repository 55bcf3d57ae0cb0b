package models

import "strings"

// Category identifies one of the fixed nearby groupings. Exactly one
// category is active per session; SOS markers are category independent.
type Category string

const (
	CategoryNomads    Category = "nomads"
	CategoryMechanics Category = "mechanics"
	CategoryMarkets   Category = "markets"
	CategoryFuel      Category = "fuel"
)

// Categories lists every known category in display order
func Categories() []Category {
	return []Category{CategoryNomads, CategoryMechanics, CategoryMarkets, CategoryFuel}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryNomads, CategoryMechanics, CategoryMarkets, CategoryFuel:
		return true
	}
	return false
}

// PlaceType returns the places-service type filter for a place
// category. It is the single source for the remote query selector so
// the catalog and the gateway cannot drift apart.
func (c Category) PlaceType() (string, bool) {
	switch c {
	case CategoryMechanics:
		return "car_repair", true
	case CategoryMarkets:
		return "supermarket", true
	case CategoryFuel:
		return "gas_station", true
	}
	return "", false
}

// EntityKind distinguishes person entities from place entities
type EntityKind string

const (
	KindPerson EntityKind = "person"
	KindPlace  EntityKind = "place"
)

// Entity is the single normalized shape every remote nearby record is
// mapped into before it reaches the marker set or the rendered list.
type Entity struct {
	ID              string      `json:"id"`
	Kind            EntityKind  `json:"kind"`
	Category        Category    `json:"category"`
	DisplayName     string      `json:"display_name"`
	Location        GeoLocation `json:"location"`
	DistanceKm      *float64    `json:"distance_km,omitempty"`
	ImageRef        string      `json:"image_ref,omitempty"`
	VehicleLabel    string      `json:"vehicle_label,omitempty"`
	VehicleModel    string      `json:"vehicle_model,omitempty"`
	StatusText      string      `json:"status,omitempty"`
	Route           string      `json:"route,omitempty"`
	Address         string      `json:"address,omitempty"`
	OpenStatus      string      `json:"open_status,omitempty"`
	MarkerStyle     string      `json:"marker_style,omitempty"`
	EmergencyActive bool        `json:"emergency_active,omitempty"`
}

// SearchText returns the lowercase concatenation of every searchable field,
// used by the search pipeline for substring matching.
func (e *Entity) SearchText() string {
	parts := []string{
		e.DisplayName,
		e.VehicleLabel,
		e.VehicleModel,
		e.StatusText,
		e.Route,
		e.Address,
	}
	return strings.ToLower(strings.Join(parts, " "))
}
