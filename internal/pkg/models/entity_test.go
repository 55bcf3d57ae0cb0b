package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_PlaceType(t *testing.T) {
	tests := []struct {
		category Category
		want     string
		ok       bool
	}{
		{CategoryMechanics, "car_repair", true},
		{CategoryMarkets, "supermarket", true},
		{CategoryFuel, "gas_station", true},
		{CategoryNomads, "", false},
		{Category("helipads"), "", false},
	}

	for _, tt := range tests {
		got, ok := tt.category.PlaceType()
		assert.Equal(t, tt.want, got, "category %s", tt.category)
		assert.Equal(t, tt.ok, ok, "category %s", tt.category)
	}
}
