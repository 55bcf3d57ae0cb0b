package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmate/roadmate/services/discovery"
)

func TestDiscoveryUC_StaleCloseKeepsReplacementSession(t *testing.T) {
	// Arrange: a reconnect replaces the first session under the same user
	uc := NewDiscoveryUC(sessionConfig(), &fakeGateway{}, newFakeCache(), newFakeCredentials())
	ctx := context.Background()

	h1, err := uc.OpenSession(ctx, "u1", newFakeProvider(false, false), newFakeSink())
	require.NoError(t, err)

	h2, err := uc.OpenSession(ctx, "u1", newFakeProvider(false, false), newFakeSink())
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)

	// Act: the old connection's read loop exits and runs its teardown
	uc.CloseSession("u1", h1)

	// Assert: the replacement session still serves the live connection
	_, err = uc.Search("u1", "")
	assert.NoError(t, err)

	// Teardown with the current handle removes the session for real
	uc.CloseSession("u1", h2)
	_, err = uc.Search("u1", "")
	assert.ErrorIs(t, err, discovery.ErrSessionNotFound)
}

func TestDiscoveryUC_CloseSessionUnknownUserIsNoop(t *testing.T) {
	uc := NewDiscoveryUC(sessionConfig(), &fakeGateway{}, newFakeCache(), newFakeCredentials())

	assert.NotPanics(t, func() {
		uc.CloseSession("ghost", 1)
	})
}
