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

type FieldHandler struct {
	fieldCommands commands.FieldCommands
	fieldQueries  queries.FieldQueries
}

func NewFieldHandler(fieldCommands commands.FieldCommands, fieldQueries queries.FieldQueries) *FieldHandler {
	return &FieldHandler{
		fieldCommands: fieldCommands,
		fieldQueries:  fieldQueries,
	}
}

// @Summary Create field
// @Description Register a new rentable field
// @Tags fields
// @Accept json
// @Produce json
// @Param request body reqdto.CreateFieldRequest true "Field request"
// @Success 201 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /fields [post]
func (h *FieldHandler) CreateField(c *gin.Context) {
	var req reqdto.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.fieldCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrFieldValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Field validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.fieldQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFieldView(view))
}

// @Summary List fields
// @Tags fields
// @Produce json
// @Success 200 {array} resdto.FieldResponse
// @Router /fields [get]
func (h *FieldHandler) ListFields(c *gin.Context) {
	views, err := h.fieldQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldViews(views))
}

// @Summary Get field
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [get]
func (h *FieldHandler) GetField(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.fieldQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrFieldNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldView(view))
}

// @Summary Rename field
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param request body reqdto.UpdateFieldRequest true "Field request"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /fields/{id} [put]
func (h *FieldHandler) UpdateField(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.fieldCommands.Rename(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrFieldNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
		case errors.Is(err, commands.ErrFieldValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Field validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.fieldQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldView(view))
}

// @Summary Delete field
// @Tags fields
// @Param id path string true "Field ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [delete]
func (h *FieldHandler) DeleteField(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.fieldCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrFieldNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Field not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
