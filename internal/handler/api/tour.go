package api

import (
	"errors"
	"net/http"

	reqdto "tourbook/internal/handler/dto/request"
	resdto "tourbook/internal/handler/dto/response"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TourHandler struct {
	tourQueries  queries.TourQueries
	tourCommands commands.TourCommands
}

func NewTourHandler(tourQueries queries.TourQueries, tourCommands commands.TourCommands) *TourHandler {
	return &TourHandler{
		tourQueries:  tourQueries,
		tourCommands: tourCommands,
	}
}

// @Summary List tours
// @Tags tours
// @Produce json
// @Success 200 {array} resdto.TourListResponse
// @Router /tours [get]
func (h *TourHandler) List(c *gin.Context) {
	items, err := h.tourQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromTourListItems(items))
}

// @Summary Get tour
// @Tags tours
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} resdto.TourResponse
// @Failure 404 {object} map[string]string
// @Router /tours/{id} [get]
func (h *TourHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.tourQueries.GetByID(c.Request.Context(), id)
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
	c.JSON(http.StatusOK, resdto.FromTourView(view))
}

// @Summary Create tour
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTourRequest true "Tour definition"
// @Success 201 {object} resdto.TourResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/tours [post]
func (h *TourHandler) Create(c *gin.Context) {
	var req reqdto.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.tourCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTourView(view))
}

// @Summary Update tour
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Param request body reqdto.UpdateTourRequest true "Fields to change"
// @Success 200 {object} resdto.TourResponse
// @Failure 404 {object} map[string]string
// @Router /admin/tours/{id} [patch]
func (h *TourHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.tourCommands.Update(c.Request.Context(), id, req.ToInput())
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
	c.JSON(http.StatusOK, resdto.FromTourView(view))
}

// @Summary Add departure
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Param request body reqdto.DepartureRequest true "Departure definition"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/tours/{id}/departures [post]
func (h *TourHandler) AddDeparture(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.DepartureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	departureID, err := h.tourCommands.AddDeparture(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTourNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tour not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": departureID.String()})
}

// @Summary Remove departure
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Param departureId path string true "Departure ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/tours/{id}/departures/{departureId} [delete]
func (h *TourHandler) RemoveDeparture(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	departureID, ok := parseUUIDParam(c, "departureId")
	if !ok {
		return
	}

	if err := h.tourCommands.RemoveDeparture(c.Request.Context(), id, departureID); err != nil {
		if errors.Is(err, errs.ErrDepartureNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Departure not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return uuid.Nil, false
	}
	return id, true
}
