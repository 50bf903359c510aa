package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cutlery/internal/model"
	"cutlery/internal/service"
)

// HomeDesignHandler proxies home design orders to the partner service.
type HomeDesignHandler struct {
	svc service.HomeDesignService
	log *zap.Logger
}

// NewHomeDesignHandler creates a home design handler.
func NewHomeDesignHandler(svc service.HomeDesignService, log *zap.Logger) *HomeDesignHandler {
	return &HomeDesignHandler{svc: svc, log: log}
}

// Create godoc
// @Summary Order a home design
// @Description The design name is prefixed with the caller's username before it is forwarded.
// @Tags home-design
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param desainname formData string true "Design name"
// @Param deskripsi formData string true "Description"
// @Param tanggalpesan formData string true "Order date"
// @Param status formData string true "Status"
// @Param namadesainer formData string true "Designer name"
// @Param nohp formData string true "Phone number"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /home-design/create [post]
func (h *HomeDesignHandler) Create(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return fail(c, h.log, err)
	}

	var design model.Design
	if err := c.Bind(&design); err != nil {
		return invalidRequest(err)
	}
	if err := c.Validate(&design); err != nil {
		return invalidRequest(err)
	}

	body, err := h.svc.Create(c.Request().Context(), design, user)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// List godoc
// @Summary List own home designs
// @Tags home-design
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /home-design/ [get]
func (h *HomeDesignHandler) List(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	designs, err := h.svc.List(c.Request().Context(), user)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, designs)
}
