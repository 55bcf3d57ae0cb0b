package usecase

import (
	"sync"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

// SelectionController is the state machine for the currently inspected
// entity: Idle (nothing selected) or Detail (exactly one selected).
// Every transition bumps a sequence number so asynchronous results issued
// for an earlier selection can be recognized and discarded.
type SelectionController struct {
	mu      sync.Mutex
	current *models.Entity
	seq     uint64
}

// NewSelectionController creates an Idle controller
func NewSelectionController() *SelectionController {
	return &SelectionController{}
}

// Select moves to Detail(entity) and returns the new selection sequence
func (s *SelectionController) Select(e models.Entity) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &e
	s.seq++
	return s.seq
}

// Clear moves to Idle
func (s *SelectionController) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.seq++
}

// Current returns the selected entity, if any
func (s *SelectionController) Current() (models.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Entity{}, false
	}
	return *s.current, true
}

// IsCurrent reports whether seq still identifies the live selection.
// Late async results call this before committing anything.
func (s *SelectionController) IsCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.seq == seq
}
