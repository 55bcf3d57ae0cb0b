package usecase

import (
	"sync"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

// MarkerSet holds the last successfully fetched entity collection per
// category plus the category-independent SOS signal set. The rendered
// marker list is always signals ∪ active-category entities.
type MarkerSet struct {
	mu         sync.RWMutex
	active     models.Category
	byCategory map[models.Category][]models.Entity
	signals    []models.EmergencySignal
}

// NewMarkerSet creates a marker set with the given active category
func NewMarkerSet(active models.Category) *MarkerSet {
	return &MarkerSet{
		active:     active,
		byCategory: make(map[models.Category][]models.Entity),
	}
}

// ActiveCategory returns the currently active category
func (m *MarkerSet) ActiveCategory() models.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// SetActive switches the active category. The switch is atomic: consumers
// never observe a mix of two categories.
func (m *MarkerSet) SetActive(category models.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = category
}

// SetEntities replaces only the given category's collection
func (m *MarkerSet) SetEntities(category models.Category, entities []models.Entity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byCategory[category] = entities
}

// Entities returns the collection last stored for a category
func (m *MarkerSet) Entities(category models.Category) []models.Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byCategory[category]
}

// SetSignals replaces the SOS signal set
func (m *MarkerSet) SetSignals(signals []models.EmergencySignal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signals = signals
}

// Signals returns the current SOS signal set
func (m *MarkerSet) Signals() []models.EmergencySignal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.signals
}

// Remove deletes an entity from whichever collection contains it.
// Removing an absent id is a no-op, not an error.
func (m *MarkerSet) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for category, entities := range m.byCategory {
		for i, e := range entities {
			if e.ID == id {
				m.byCategory[category] = append(entities[:i:i], entities[i+1:]...)
				break
			}
		}
	}
}

// Rendered returns the displayable marker list: SOS signals first, then
// the active category's entities.
func (m *MarkerSet) Rendered() []models.Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := m.byCategory[m.active]
	rendered := make([]models.Entity, 0, len(m.signals)+len(active))
	for i := range m.signals {
		rendered = append(rendered, m.signals[i].ToEntity())
	}
	rendered = append(rendered, active...)
	return rendered
}

// Get looks up a rendered entity by id
func (m *MarkerSet) Get(id string) (models.Entity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.signals {
		if m.signals[i].ID == id {
			return m.signals[i].ToEntity(), true
		}
	}
	for _, e := range m.byCategory[m.active] {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entity{}, false
}
