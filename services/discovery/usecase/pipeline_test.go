package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

func km(v float64) *float64 {
	return &v
}

func TestFilterAndSort_BlankQueryPassesEverything(t *testing.T) {
	// Arrange
	entities := []models.Entity{
		{ID: "a", DisplayName: "Ayşe", DistanceKm: km(2.0)},
		{ID: "b", DisplayName: "Mehmet", DistanceKm: km(1.0)},
	}

	// Act
	result := FilterAndSort(entities, "")

	// Assert
	assert.Len(t, result, 2)
	assert.Equal(t, "b", result[0].ID)
	assert.Equal(t, "a", result[1].ID)
}

func TestFilterAndSort_AllTokensMustMatch(t *testing.T) {
	// Arrange
	entities := []models.Entity{
		{ID: "a", DisplayName: "Emre", VehicleModel: "Honda Africa Twin", DistanceKm: km(1.0)},
		{ID: "b", DisplayName: "Emre", VehicleModel: "Yamaha Tenere", DistanceKm: km(2.0)},
		{ID: "c", DisplayName: "Deniz", VehicleModel: "Honda CB500X", DistanceKm: km(3.0)},
	}

	// Act
	result := FilterAndSort(entities, "emre honda")

	// Assert
	assert.Len(t, result, 1)
	assert.Equal(t, "a", result[0].ID)
}

func TestFilterAndSort_MatchingIsCaseInsensitive(t *testing.T) {
	entities := []models.Entity{
		{ID: "a", DisplayName: "Karadeniz Sahil Yolu", Route: "Trabzon"},
	}

	result := FilterAndSort(entities, "TRABZON")

	assert.Len(t, result, 1)
}

func TestFilterAndSort_UnknownDistanceSortsLast(t *testing.T) {
	// Arrange
	entities := []models.Entity{
		{ID: "unknown", DistanceKm: nil},
		{ID: "far", DistanceKm: km(3.2)},
		{ID: "near", DistanceKm: km(1.1)},
	}

	// Act
	result := FilterAndSort(entities, "")

	// Assert
	assert.Equal(t, "near", result[0].ID)
	assert.Equal(t, "far", result[1].ID)
	assert.Equal(t, "unknown", result[2].ID)
}

func TestFilterAndSort_TiesKeepInputOrder(t *testing.T) {
	entities := []models.Entity{
		{ID: "first", DistanceKm: km(2.0)},
		{ID: "second", DistanceKm: km(2.0)},
		{ID: "third", DistanceKm: nil},
		{ID: "fourth", DistanceKm: nil},
	}

	result := FilterAndSort(entities, "")

	assert.Equal(t, "first", result[0].ID)
	assert.Equal(t, "second", result[1].ID)
	assert.Equal(t, "third", result[2].ID)
	assert.Equal(t, "fourth", result[3].ID)
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	entities := []models.Entity{
		{ID: "far", DistanceKm: km(3.0)},
		{ID: "near", DistanceKm: km(1.0)},
	}

	FilterAndSort(entities, "")

	assert.Equal(t, "far", entities[0].ID)
	assert.Equal(t, "near", entities[1].ID)
}
