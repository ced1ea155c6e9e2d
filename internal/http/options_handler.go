package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/rate-service/internal/carrier/ups"
	"github.com/guttosm/rate-service/internal/domain/dto"
	"github.com/guttosm/rate-service/internal/service"
)

// OptionsHandler provides HTTP handlers for shipping option routes.
type OptionsHandler struct {
	optionsService service.ShippingOptionsService
	ratesHandler   *Handler
}

// NewOptionsHandler creates a new OptionsHandler instance.
func NewOptionsHandler(optionsService service.ShippingOptionsService, ratesHandler *Handler) *OptionsHandler {
	return &OptionsHandler{
		optionsService: optionsService,
		ratesHandler:   ratesHandler,
	}
}

// ListOptions handles GET /api/options requests.
//
// @Summary      List shipping options
// @Description  Returns the configured shipping options
// @Tags         Shipping Options
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        active query bool false "Only return active options"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Shipping options"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/options [get]
func (h *OptionsHandler) ListOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	activeOnly := c.Query("active") == "true"
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	docs, err := h.optionsService.ListOptions(c.Request.Context(), activeOnly, limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(docs)
}

// GetOption handles GET /api/options/:id requests.
//
// @Summary      Get a shipping option
// @Description  Returns one shipping option by its stable id
// @Tags         Shipping Options
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        id path string true "Shipping option id"
// @Success      200 {object} dto.SuccessResponse "Shipping option"
// @Failure      404 {object} dto.ErrorResponse "Shipping option not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/options/{id} [get]
func (h *OptionsHandler) GetOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opt, err := h.optionsService.GetOption(c.Request.Context(), c.Param("id"))
	if err == service.ErrOptionNotFound {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, err)
		return
	}
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(opt)
}

// CreateOption handles POST /api/options requests.
//
// @Summary      Create a shipping option
// @Description  Stores a new shipping option configuration
// @Tags         Shipping Options
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        request body dto.ShippingOptionRequest true "Shipping option configuration"
// @Success      201 {object} dto.SuccessResponse "Created shipping option"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/options [post]
func (h *OptionsHandler) CreateOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ShippingOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}
	if req.OptionID == "" {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, nil)
		return
	}

	doc, err := h.optionsService.CreateOption(c.Request.Context(), req.ToDocument())
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	h.invalidateOptionCache()
	builder.SuccessCreated(doc)
}

// UpdateOption handles PUT /api/options/:id requests.
//
// @Summary      Update a shipping option
// @Description  Replaces the mutable fields of an existing shipping option
// @Tags         Shipping Options
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        id path string true "Shipping option id"
// @Param        request body dto.ShippingOptionRequest true "Shipping option configuration"
// @Success      200 {object} dto.SuccessResponse "Updated shipping option"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Shipping option not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/options/{id} [put]
func (h *OptionsHandler) UpdateOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ShippingOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	doc, err := h.optionsService.UpdateOption(c.Request.Context(), c.Param("id"), req.ToDocument())
	if err == service.ErrOptionNotFound {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, err)
		return
	}
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	h.invalidateOptionCache()
	builder.SuccessOK(doc)
}

// DeleteOption handles DELETE /api/options/:id requests.
//
// @Summary      Delete a shipping option
// @Description  Removes a shipping option configuration
// @Tags         Shipping Options
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        id path string true "Shipping option id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Shipping option not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/options/{id} [delete]
func (h *OptionsHandler) DeleteOption(c *gin.Context) {
	builder := NewResponseBuilder(c)

	optionID := c.Param("id")
	err := h.optionsService.DeleteOption(c.Request.Context(), optionID)
	if err == service.ErrOptionNotFound {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, err)
		return
	}
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	h.invalidateOptionCache()
	builder.SuccessOK(gin.H{"deleted": optionID})
}

// GetParameterOptions handles GET /api/parameters/:name requests.
//
// @Summary      List carrier parameter values
// @Description  Returns the selectable values for a carrier configuration parameter (delivery_service, pickup_type, container_type, customer_classification, dimensions_unit, weight_unit, origination_state)
// @Tags         Shipping Options
// @Accept       json
// @Produce      json
// @Param        name path string true "Parameter name"
// @Success      200 {object} dto.SuccessResponse "Parameter values"
// @Failure      404 {object} dto.ErrorResponse "Unknown parameter name"
// @Router       /api/parameters/{name} [get]
func (h *OptionsHandler) GetParameterOptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	name := c.Param("name")
	options := ups.ParameterOptions(name)
	if options == nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, nil)
		return
	}

	builder.SuccessOK(gin.H{
		"name":    name,
		"options": options,
	})
}

func (h *OptionsHandler) invalidateOptionCache() {
	if h.ratesHandler != nil {
		h.ratesHandler.InvalidateOptionCache()
	}
}
