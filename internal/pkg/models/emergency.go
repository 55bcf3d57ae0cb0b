package models

import "time"

// EmergencySignal represents an active SOS signal near the user. Signals
// have their own lifecycle and are rendered regardless of the active category.
type EmergencySignal struct {
	ID       string      `json:"id"`
	Location GeoLocation `json:"location"`
	OwnerRef string      `json:"owner_ref"`
}

// ToEntity maps the signal into the shared marker shape so it can be
// unioned into the rendered list alongside category entities.
func (s *EmergencySignal) ToEntity() Entity {
	return Entity{
		ID:              s.ID,
		Kind:            KindPerson,
		DisplayName:     "SOS",
		Location:        s.Location,
		EmergencyActive: true,
	}
}

// EmergencyFlagEvent is published when a user flags an emergency for a
// selected entity, to be fanned out by the notification dispatcher.
type EmergencyFlagEvent struct {
	UserID    string      `json:"user_id"`
	TargetID  string      `json:"target_id"`
	Location  GeoLocation `json:"location"`
	Timestamp time.Time   `json:"timestamp"`
}

// FocusEvent is a deep-link focus request delivered from outside, e.g. a
// tapped SOS push notification. It only moves the viewport.
type FocusEvent struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
