package constants

// Redis key prefixes
const (
	// KeyNearbyCache is the last-good entity collection per user, category
	// and geohash cell: nearby:{user_id}:{category}:{cell}
	KeyNearbyCache = "nearby:%s:%s:%s"

	// KeySOSCache is the last-good SOS signal set per user: sos:{user_id}
	KeySOSCache = "sos:%s"
)
