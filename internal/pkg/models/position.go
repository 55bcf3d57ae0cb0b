package models

import "time"

// GeoLocation represents a geographic location
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Position is an immutable device position snapshot. A new fix supersedes
// the previous one; positions are never mutated in place.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// GeoLocation returns the coordinate pair of the position
func (p Position) GeoLocation() GeoLocation {
	return GeoLocation{Latitude: p.Latitude, Longitude: p.Longitude}
}

// PositionUpdate represents a raw location fix event from a device
type PositionUpdate struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}
