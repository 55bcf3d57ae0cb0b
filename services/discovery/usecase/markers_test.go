package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

func TestMarkerSet_RenderedShowsSignalsAndActiveCategory(t *testing.T) {
	// Arrange
	m := NewMarkerSet(models.CategoryNomads)
	m.SetEntities(models.CategoryNomads, []models.Entity{{ID: "p1"}, {ID: "p2"}})
	m.SetEntities(models.CategoryFuel, []models.Entity{{ID: "f1"}})
	m.SetSignals([]models.EmergencySignal{{ID: "sos1"}})

	// Act
	rendered := m.Rendered()

	// Assert
	require.Len(t, rendered, 3)
	assert.Equal(t, "sos1", rendered[0].ID)
	assert.True(t, rendered[0].EmergencyActive)
	assert.Equal(t, "p1", rendered[1].ID)
	assert.Equal(t, "p2", rendered[2].ID)
}

func TestMarkerSet_SwitchKeepsOtherCollections(t *testing.T) {
	m := NewMarkerSet(models.CategoryNomads)
	m.SetEntities(models.CategoryNomads, []models.Entity{{ID: "p1"}})
	m.SetEntities(models.CategoryFuel, []models.Entity{{ID: "f1"}})

	m.SetActive(models.CategoryFuel)

	rendered := m.Rendered()
	require.Len(t, rendered, 1)
	assert.Equal(t, "f1", rendered[0].ID)

	// The previous category's collection survives the switch
	assert.Len(t, m.Entities(models.CategoryNomads), 1)
}

func TestMarkerSet_RemoveIsIdempotent(t *testing.T) {
	m := NewMarkerSet(models.CategoryNomads)
	m.SetEntities(models.CategoryNomads, []models.Entity{{ID: "p1"}, {ID: "p2"}})

	m.Remove("p1")
	m.Remove("p1")
	m.Remove("never-existed")

	rendered := m.Rendered()
	require.Len(t, rendered, 1)
	assert.Equal(t, "p2", rendered[0].ID)
}

func TestMarkerSet_GetResolvesSignalsAndEntities(t *testing.T) {
	m := NewMarkerSet(models.CategoryNomads)
	m.SetEntities(models.CategoryNomads, []models.Entity{{ID: "p1", DisplayName: "Emre"}})
	m.SetSignals([]models.EmergencySignal{{ID: "sos1"}})

	entity, ok := m.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Emre", entity.DisplayName)

	signal, ok := m.Get("sos1")
	require.True(t, ok)
	assert.True(t, signal.EmergencyActive)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMarkerSet_GetIgnoresInactiveCategories(t *testing.T) {
	m := NewMarkerSet(models.CategoryNomads)
	m.SetEntities(models.CategoryFuel, []models.Entity{{ID: "f1"}})

	_, ok := m.Get("f1")

	assert.False(t, ok)
}
