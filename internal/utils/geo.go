package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/roadmate/roadmate/internal/pkg/models"
)

// CellPrecision is the geohash precision used for cache cell keys.
// Precision 5 cells are roughly 5km x 5km, coarse enough that small
// position jitter keeps hitting the same cached collection.
const CellPrecision = 5

// EncodeCell converts a coordinate pair to its geohash cache cell
func EncodeCell(loc models.GeoLocation) string {
	return geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, CellPrecision)
}

// CalculateDistanceKm calculates the distance between two points in
// kilometers using the Haversine formula
func CalculateDistanceKm(p1, p2 models.GeoLocation) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// CalculateDistanceMeters calculates the distance between two points in meters
func CalculateDistanceMeters(p1, p2 models.GeoLocation) float64 {
	return CalculateDistanceKm(p1, p2) * 1000.0
}

// IsValidCoordinate reports whether a latitude/longitude pair is in range
func IsValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
