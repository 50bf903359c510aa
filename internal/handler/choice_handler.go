package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cutlery/internal/model"
	"cutlery/internal/service"
)

// ChoiceHandler lists the reference values a requirement may use.
type ChoiceHandler struct {
	svc service.CatalogService
}

// NewChoiceHandler creates a choice handler.
func NewChoiceHandler(svc service.CatalogService) *ChoiceHandler {
	return &ChoiceHandler{svc: svc}
}

// Metals godoc
// @Summary List metals
// @Tags choices
// @Produce json
// @Success 200 {array} model.CatalogEntry
// @Router /choices/metals [get]
func (h *ChoiceHandler) Metals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List(model.CategoryMetals))
}

// Handles godoc
// @Summary List handles
// @Tags choices
// @Produce json
// @Success 200 {array} model.CatalogEntry
// @Router /choices/handles [get]
func (h *ChoiceHandler) Handles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List(model.CategoryHandles))
}

// Types godoc
// @Summary List cutlery types
// @Tags choices
// @Produce json
// @Success 200 {array} model.CatalogEntry
// @Router /choices/types [get]
func (h *ChoiceHandler) Types(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.List(model.CategoryCutleryTypes))
}
