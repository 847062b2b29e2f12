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

type StudentHandler struct {
	studentCommands commands.StudentCommands
	studentQueries  queries.StudentQueries
}

func NewStudentHandler(
	studentCommands commands.StudentCommands,
	studentQueries queries.StudentQueries,
) *StudentHandler {
	return &StudentHandler{
		studentCommands: studentCommands,
		studentQueries:  studentQueries,
	}
}

// @Summary Enroll student
// @Description Add a student to a recurring class booking's roster
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.EnrollStudentRequest true "Student request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/students [post]
func (h *StudentHandler) EnrollStudent(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.studentCommands.Enroll(c.Request.Context(), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrStudentValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Student validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List students
// @Description Roster of a class booking
// @Tags students
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.StudentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	views, err := h.studentQueries.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStudentViews(views))
}

// @Summary Get student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} resdto.StudentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /students/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.studentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStudentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Student not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStudentView(view))
}

// @Summary Update student
// @Description Partial update of a student's personal details
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body reqdto.UpdateStudentRequest true "Student request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /students/{id} [patch]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.studentCommands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrStudentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Student not found", nil)
		case errors.Is(err, commands.ErrStudentValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Student validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove student
// @Tags students
// @Param id path string true "Student ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.studentCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrStudentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Student not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Register student payment
// @Description Record a monthly fee payment for a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body reqdto.RegisterPaymentRequest true "Payment request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /students/{id}/payments [post]
func (h *StudentHandler) RegisterStudentPayment(c *gin.Context) {
	studentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.studentCommands.RegisterPayment(c.Request.Context(), studentID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStudentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Student not found", nil)
		case errors.Is(err, commands.ErrPaymentValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Payment validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List student payments
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {array} resdto.StudentPaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /students/{id}/payments [get]
func (h *StudentHandler) ListStudentPayments(c *gin.Context) {
	studentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	views, err := h.studentQueries.ListPayments(c.Request.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStudentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Student not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStudentPaymentViews(views))
}

// @Summary Student billing status
// @Description Current monthly cycle state of a student, anchored to enrollment
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} resdto.StudentBillingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /students/{id}/billing [get]
func (h *StudentHandler) StudentBilling(c *gin.Context) {
	studentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.studentQueries.BillingStatus(c.Request.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStudentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Student not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStudentBillingView(view))
}
