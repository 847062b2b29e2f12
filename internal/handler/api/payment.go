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
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	bookingQueries  queries.BookingQueries
	billingQueries  queries.BillingQueries
}

func NewPaymentHandler(
	paymentCommands commands.PaymentCommands,
	bookingQueries queries.BookingQueries,
	billingQueries queries.BillingQueries,
) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		bookingQueries:  bookingQueries,
		billingQueries:  billingQueries,
	}
}

// @Summary Register payment
// @Description Record a payment against a booking
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.RegisterPaymentRequest true "Payment request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/payments [post]
func (h *PaymentHandler) RegisterPayment(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.paymentCommands.Register(c.Request.Context(), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrPaymentValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Payment validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List payments
// @Tags payments
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	views, err := h.bookingQueries.ListPayments(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

// @Summary Billing status
// @Description Current cycle state of a booking: paid, overdue or not yet due
// @Tags payments
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BillingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/billing [get]
func (h *PaymentHandler) BillingStatus(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.billingQueries.Status(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBillingStatusView(view))
}
