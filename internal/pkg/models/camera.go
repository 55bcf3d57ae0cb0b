package models

// CameraIntent is an animated map camera target. Intents are
// fire-and-forget: the viewport controller emits them without waiting
// for the client to finish the animation.
type CameraIntent struct {
	Center     GeoLocation `json:"center"`
	Zoom       float64     `json:"zoom"`
	DurationMs int64       `json:"duration_ms"`
}
