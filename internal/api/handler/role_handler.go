package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

// RoleHandler exposes the persisted role copies. Creation seeds a role's
// grants from the static registry; only the grants of an existing copy can
// be edited afterwards.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type createRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type updateGrantsRequest struct {
	Grants []string `json:"grants" validate:"required,min=1,dive,required"`
}

// Create persists a registry role.
//
// @Summary      Create a role from the registry
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role name"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  errorEnvelope
// @Failure      409   {object}  errorEnvelope
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.Create(c.Request().Context(), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// List returns all persisted roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Role
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Get returns one role by name.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Role name"
// @Success      200   {object}  domain.Role
// @Failure      404   {object}  errorEnvelope
// @Router       /roles/{name} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.service.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// UpdateGrants replaces a persisted role's grant list.
//
// @Summary      Update a role's grants
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string               true  "Role name"
// @Param        body  body      updateGrantsRequest  true  "New grant list"
// @Success      200   {object}  domain.Role
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /roles/{name} [put]
func (h *RoleHandler) UpdateGrants(c echo.Context) error {
	var req updateGrantsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.UpdateGrants(c.Request().Context(), c.Param("name"), req.Grants)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Delete removes a persisted role copy. Users keep their permissions
// snapshot; the registry itself is untouched.
//
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Role name"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorEnvelope
// @Router       /roles/{name} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if _, err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role deleted"})
}
