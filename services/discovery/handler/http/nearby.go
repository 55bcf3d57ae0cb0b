package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/roadmate/roadmate/internal/pkg/models"
	"github.com/roadmate/roadmate/internal/utils"
	"github.com/roadmate/roadmate/services/discovery"
)

// NearbyHandler serves the one-shot REST query surface. It shares the
// usecase's fetch pipeline but keeps no session state.
type NearbyHandler struct {
	discoveryUC discovery.DiscoveryUC
}

// NewNearbyHandler creates a new nearby HTTP handler
func NewNearbyHandler(discoveryUC discovery.DiscoveryUC) *NearbyHandler {
	return &NearbyHandler{discoveryUC: discoveryUC}
}

// GetNearby handles GET /nearby?latitude=..&longitude=..&category=..
func (h *NearbyHandler) GetNearby(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude must be a number")
	}
	if !utils.IsValidCoordinate(lat, lng) {
		return utils.BadRequestResponse(c, "coordinates out of range")
	}

	category := models.Category(c.QueryParam("category"))
	loc := models.GeoLocation{Latitude: lat, Longitude: lng}

	entities, err := h.discoveryUC.Nearby(c.Request().Context(), userID.String(), loc, category)
	if errors.Is(err, discovery.ErrInvalidCategory) {
		return utils.BadRequestResponse(c, "unknown category")
	}
	if err != nil {
		return utils.InternalServerErrorResponse(c, "nearby lookup failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "nearby entities retrieved", map[string]interface{}{
		"entities": entities,
	})
}
