package gateway_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

func TestGetNearbyPersons_FlatCoordinates(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/persons/nearby", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "41.018200", r.URL.Query().Get("latitude"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"persons": [
				{
					"id": "p1",
					"full_name": "Emre",
					"vehicle_label": "Honda",
					"vehicle_model": "Africa Twin",
					"latitude": 41.02,
					"longitude": 28.98,
					"distance_km": 1.4
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewPersonsClient(server.URL)

	// Act
	entities, err := client.GetNearbyPersons(context.Background(),
		models.GeoLocation{Latitude: 41.0182, Longitude: 28.9784}, "token")

	// Assert
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "p1", entities[0].ID)
	assert.Equal(t, models.KindPerson, entities[0].Kind)
	assert.Equal(t, "Emre", entities[0].DisplayName)
	assert.Equal(t, 41.02, entities[0].Location.Latitude)
	require.NotNil(t, entities[0].DistanceKm)
	assert.Equal(t, 1.4, *entities[0].DistanceKm)
}

func TestGetNearbyPersons_NestedCoordinateTakesPrecedence(t *testing.T) {
	// Arrange: older deployments nest the coordinate object
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"persons": [
				{
					"id": "p1",
					"full_name": "Deniz",
					"coordinate": {"latitude": 41.05, "longitude": 29.01},
					"latitude": 0,
					"longitude": 0
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewPersonsClient(server.URL)

	// Act
	entities, err := client.GetNearbyPersons(context.Background(),
		models.GeoLocation{Latitude: 41.0182, Longitude: 28.9784}, "")

	// Assert
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, 41.05, entities[0].Location.Latitude)
	assert.Equal(t, 29.01, entities[0].Location.Longitude)
	assert.Nil(t, entities[0].DistanceKm)
}

func TestGetNearbyPersons_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPersonsClient(server.URL)

	_, err := client.GetNearbyPersons(context.Background(),
		models.GeoLocation{Latitude: 41.0182, Longitude: 28.9784}, "")

	assert.Error(t, err)
}
