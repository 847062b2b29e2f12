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

type ConfigHandler struct {
	configCommands commands.ConfigCommands
	configQueries  queries.ConfigQueries
}

func NewConfigHandler(configCommands commands.ConfigCommands, configQueries queries.ConfigQueries) *ConfigHandler {
	return &ConfigHandler{
		configCommands: configCommands,
		configQueries:  configQueries,
	}
}

// @Summary Get operating hours
// @Tags config
// @Produce json
// @Success 200 {object} resdto.OperatingHoursResponse
// @Router /config/operating-hours [get]
func (h *ConfigHandler) GetOperatingHours(c *gin.Context) {
	view, err := h.configQueries.OperatingHours(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOperatingHoursView(view))
}

// @Summary Set operating hours
// @Tags config
// @Accept json
// @Produce json
// @Param request body reqdto.SetOperatingHoursRequest true "Operating hours"
// @Success 200 {object} resdto.OperatingHoursResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /config/operating-hours [put]
func (h *ConfigHandler) SetOperatingHours(c *gin.Context) {
	var req reqdto.SetOperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.configCommands.SetOperatingHours(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, commands.ErrConfigValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Config validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OperatingHoursResponse{Open: req.Open, Close: req.Close})
}

// @Summary Get prices
// @Tags config
// @Produce json
// @Success 200 {array} resdto.PriceResponse
// @Router /config/prices [get]
func (h *ConfigHandler) GetPrices(c *gin.Context) {
	views, err := h.configQueries.Prices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceViews(views))
}

// @Summary Set price
// @Description Upsert the price for one booking class
// @Tags config
// @Accept json
// @Param request body reqdto.SetPriceRequest true "Price"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /config/prices [put]
func (h *ConfigHandler) SetPrice(c *gin.Context) {
	var req reqdto.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.configCommands.SetPrice(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, commands.ErrConfigValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Config validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
