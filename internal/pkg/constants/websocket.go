package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Inbound device events
	EventLocationEnable = "location.enable"
	EventLocationUpdate = "location.update"
	EventCategorySwitch = "category.switch"
	EventSearchQuery    = "search.query"
	EventMarkerSelect   = "marker.select"
	EventMarkerDismiss  = "marker.dismiss"
	EventFriendRequest  = "friend.request"
	EventFriendAccept   = "friend.accept"
	EventUserBlock      = "user.block"
	EventMeetingRequest = "meeting.request"
	EventSOSFlag        = "sos.flag"

	// Outbound engine events
	EventMarkersUpdated      = "markers.updated"
	EventCameraMove          = "camera.move"
	EventRelationshipUpdated = "relationship.updated"
	EventActionResult        = "action.result"
)

// WebSocket error codes
const (
	ErrorInvalidFormat     = "invalid_format"
	ErrorInvalidCategory   = "invalid_category"
	ErrorInvalidLocation   = "invalid_location"
	ErrorMissingCredential = "missing_credential"
	ErrorActionFailed      = "action_failed"
	ErrorNoSelection       = "no_selection"
)
