package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "campo-agenda/internal/handler/dto/response"
	"campo-agenda/internal/handler/httperr"
	"campo-agenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{scheduleQueries: scheduleQueries}
}

// @Summary Day schedule
// @Description All occupancies of a field on one date, recurring bookings expanded
// @Tags schedule
// @Produce json
// @Param id path string true "Field ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/schedule [get]
func (h *ScheduleHandler) DaySchedule(c *gin.Context) {
	fieldID, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.scheduleQueries.DaySchedule(c.Request.Context(), fieldID, c.Query("date"))
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayScheduleView(view))
}

// @Summary Free slots
// @Description Bookable slots of a field on one date within operating hours
// @Tags schedule
// @Produce json
// @Param id path string true "Field ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param slot_minutes query int false "Slot length in minutes (default from config)"
// @Success 200 {array} resdto.FreeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/free-slots [get]
func (h *ScheduleHandler) FreeSlots(c *gin.Context) {
	fieldID, ok := parseIDParam(c)
	if !ok {
		return
	}

	slotMinutes := 0
	if raw := c.Query("slot_minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("slot_minutes must be a positive integer"), "Invalid slot_minutes", nil)
			return
		}
		slotMinutes = parsed
	}

	views, err := h.scheduleQueries.FreeSlots(c.Request.Context(), fieldID, c.Query("date"), slotMinutes)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFreeSlotViews(views))
}

func (h *ScheduleHandler) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidQueryDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date", nil)
	case errors.Is(err, queries.ErrFieldNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
