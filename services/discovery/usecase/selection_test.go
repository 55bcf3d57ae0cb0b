package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

func TestSelectionController_SelectAndClear(t *testing.T) {
	s := NewSelectionController()

	_, ok := s.Current()
	assert.False(t, ok)

	s.Select(models.Entity{ID: "p1"})
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "p1", current.ID)

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestSelectionController_SequenceInvalidatesLateResults(t *testing.T) {
	s := NewSelectionController()

	seq1 := s.Select(models.Entity{ID: "p1"})
	assert.True(t, s.IsCurrent(seq1))

	// A new selection invalidates results issued for the previous one
	seq2 := s.Select(models.Entity{ID: "p2"})
	assert.False(t, s.IsCurrent(seq1))
	assert.True(t, s.IsCurrent(seq2))

	// Clearing invalidates everything
	s.Clear()
	assert.False(t, s.IsCurrent(seq2))
}
