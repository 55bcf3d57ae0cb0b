package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

func TestManager_RemoveClientKeepsReplacement(t *testing.T) {
	// Arrange: a reconnect registers a second client under the same user
	m := NewManager(models.JWTConfig{Secret: "test-secret"})
	first := &models.WebSocketClient{UserID: "u1"}
	second := &models.WebSocketClient{UserID: "u1"}
	m.AddClient(first)
	m.AddClient(second)

	// Act: the stale connection's teardown runs after the replacement
	m.RemoveClient(first)

	// Assert: the live client is still registered
	got, ok := m.GetClient("u1")
	require.True(t, ok)
	assert.Same(t, second, got)

	// Removing the current client drops the registration
	m.RemoveClient(second)
	_, ok = m.GetClient("u1")
	assert.False(t, ok)
}
