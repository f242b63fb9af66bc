package api

import (
	"errors"
	"net/http"

	"tourbook/internal/domain/booking"
	reqdto "tourbook/internal/handler/dto/request"
	resdto "tourbook/internal/handler/dto/response"
	"tourbook/internal/handler/middleware"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit booking
// @Description Validate, price and persist a booking for a bookable date
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Cart-Key header string false "Cart key; minted when absent"
// @Param request body reqdto.SubmitBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Submit(c.Request.Context(), req.ToInput(middleware.GetCartKey(c)))
	if err != nil {
		var fieldErr *booking.FieldError
		switch {
		case errors.As(err, &fieldErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fieldErr.Reason,
				"field": fieldErr.Field,
			})
		case errors.Is(err, errs.ErrTourNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tour not found",
			})
		case errors.Is(err, errs.ErrDateUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Selected date is not available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking by reference
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{reference} [get]
func (h *BookingHandler) GetByReference(c *gin.Context) {
	view, err := h.bookingQueries.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings of a tour
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Success 200 {array} resdto.BookingResponse
// @Router /admin/tours/{id}/bookings [get]
func (h *BookingHandler) ListByTour(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.bookingQueries.ListByTour(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Update booking status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{reference}/status [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	status := booking.Status(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown status",
		})
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), c.Param("reference"), status)
	h.renderTransition(c, view, err)
}

// @Summary Update payment status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Param request body reqdto.UpdatePaymentStatusRequest true "Target payment status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{reference}/payment-status [put]
func (h *BookingHandler) UpdatePaymentStatus(c *gin.Context) {
	var req reqdto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	status := booking.PaymentStatus(req.PaymentStatus)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown payment status",
		})
		return
	}

	view, err := h.bookingCommands.UpdatePaymentStatus(c.Request.Context(), c.Param("reference"), status)
	h.renderTransition(c, view, err)
}

func (h *BookingHandler) renderTransition(c *gin.Context, view *queries.BookingView, err error) {
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Transition not allowed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
