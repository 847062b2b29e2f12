package api

import (
	"errors"
	"net/http"

	reqdto "campo-agenda/internal/handler/dto/request"
	resdto "campo-agenda/internal/handler/dto/response"
	"campo-agenda/internal/handler/httperr"
	"campo-agenda/internal/usecase/commands"
	"campo-agenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

// @Summary Create booking
// @Description Book a field slot, one-off or recurring
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.bookingCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List all bookings, optionally filtered by field
// @Tags bookings
// @Produce json
// @Param fieldId query string false "Field ID filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var (
		views []*queries.BookingView
		err   error
	)
	if fieldIDStr := c.Query("fieldId"); fieldIDStr != "" {
		fieldID, parseErr := uuid.Parse(fieldIDStr)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid field ID format", nil)
			return
		}
		views, err = h.bookingQueries.ListByField(c.Request.Context(), fieldID)
	} else {
		views, err = h.bookingQueries.List(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Reschedule the slot or update owner details
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.bookingCommands.Update(c.Request.Context(), id, req); err != nil {
		h.writeCommandError(c, err)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Description Cancel a booking and release its occupancies
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrFieldNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested slot conflicts with an existing booking", nil)
	case errors.Is(err, commands.ErrDuplicateBooking):
		httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate booking", nil)
	case errors.Is(err, commands.ErrBookingValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
