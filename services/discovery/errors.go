package discovery

import "errors"

var (
	// ErrNotFound indicates a lookup matched nothing. Treated as a benign
	// no-op by the workflows, never as a fatal condition.
	ErrNotFound = errors.New("not found")

	// ErrMissingCredential indicates an authenticated action was attempted
	// without a stored auth token. The action is blocked, not retried
	// unauthenticated.
	ErrMissingCredential = errors.New("missing credential")

	// ErrInvalidCategory indicates an unknown category identifier
	ErrInvalidCategory = errors.New("invalid category")

	// ErrNoSelection indicates a selection-scoped action with nothing selected
	ErrNoSelection = errors.New("no entity selected")

	// ErrActionInFlight indicates a mutating relationship action was
	// triggered while another one is still pending for the same selection
	ErrActionInFlight = errors.New("action already in flight")

	// ErrSessionNotFound indicates no open session for the user
	ErrSessionNotFound = errors.New("session not found")
)
