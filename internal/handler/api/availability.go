package api

import (
	"errors"
	"net/http"

	resdto "tourbook/internal/handler/dto/response"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Tour availability calendar
// @Description All bookable dates of a tour with resolved pricing, ascending
// @Tags tours
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} map[string]string
// @Router /tours/{id}/availability [get]
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.availabilityQueries.GetCalendar(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tour not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// A tour with no upcoming departures is an empty calendar, not an error.
	c.JSON(http.StatusOK, resdto.FromAvailabilityViews(views))
}
