package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cutlery/internal/model"
	"cutlery/internal/service"
)

// RequirementHandler serves requirement CRUD.
type RequirementHandler struct {
	svc service.RequirementService
	log *zap.Logger
}

// NewRequirementHandler creates a requirement handler.
func NewRequirementHandler(svc service.RequirementService, log *zap.Logger) *RequirementHandler {
	return &RequirementHandler{svc: svc, log: log}
}

// List godoc
// @Summary List requirements
// @Description Admins see every requirement, other users only their own.
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Requirement
// @Failure 401 {object} errors.ErrorResponse
// @Router /requirements [get]
func (h *RequirementHandler) List(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	reqs, err := h.svc.List(c.Request().Context(), user)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, reqs)
}

// Get godoc
// @Summary Get requirement by id
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requirement ID"
// @Success 200 {object} model.Requirement
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /requirements/{id} [get]
func (h *RequirementHandler) Get(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	req, err := h.svc.Get(c.Request().Context(), id, user)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, req)
}

// Create godoc
// @Summary Create requirement
// @Description Regular users send requirement_user_data; admins send requirement_admin_data with an owner username.
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateRequirementRequest true "Requirement payload"
// @Success 200 {object} model.Requirement
// @Failure 422 {object} errors.ErrorResponse
// @Router /requirements/new [post]
func (h *RequirementHandler) Create(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return fail(c, h.log, err)
	}

	var payload model.CreateRequirementRequest
	if err := c.Bind(&payload); err != nil {
		return invalidRequest(err)
	}
	if payload.User != nil {
		if err := c.Validate(payload.User); err != nil {
			return invalidRequest(err)
		}
	}
	if payload.Admin != nil {
		if err := c.Validate(payload.Admin); err != nil {
			return invalidRequest(err)
		}
	}

	req, err := h.svc.Create(c.Request().Context(), payload, user)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, req)
}

// Update godoc
// @Summary Edit requirement
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requirement ID"
// @Param request body model.RequirementInput true "New values"
// @Success 200 {object} model.Requirement
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /requirements/edit/{id} [put]
func (h *RequirementHandler) Update(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, h.log, err)
	}

	var in model.RequirementInput
	if err := c.Bind(&in); err != nil {
		return invalidRequest(err)
	}
	if err := c.Validate(&in); err != nil {
		return invalidRequest(err)
	}

	req, err := h.svc.Update(c.Request().Context(), id, in, user)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, req)
}

// Delete godoc
// @Summary Delete requirement
// @Description Remaining requirements are renumbered 1..N.
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requirement ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /requirements/delete/{id} [delete]
func (h *RequirementHandler) Delete(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id, user); err != nil {
		return fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Requirement deleted successfully"})
}
