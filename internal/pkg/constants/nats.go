package constants

// NATS Subjects
const (
	// Notification dispatcher
	SubjectFocusRequested = "notifications.focus"
	SubjectSOSFlagged     = "sos.flagged"
)
