package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

// ProjectHandler handles project creation, assignment and listing.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	ProjectName string `json:"project_name" validate:"required"`
	Description string `json:"description"  validate:"required"`
}

type assignFreelancersRequest struct {
	FreelancerIDs []string `json:"freelancer_ids" validate:"required,min=1,dive,required"`
}

// Create registers a new project.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorEnvelope
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		ProjectName: req.ProjectName,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// AssignFreelancers adds freelancers to a project. Every id must belong to
// an existing user holding the freelancer role.
//
// @Summary      Assign freelancers to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Project id"
// @Param        body  body      assignFreelancersRequest  true  "Freelancer ids"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /projects/{id}/freelancers [put]
func (h *ProjectHandler) AssignFreelancers(c echo.Context) error {
	var req assignFreelancersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.AssignFreelancers(c.Request().Context(), c.Param("id"), req.FreelancerIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// List returns all projects with their assignees resolved to summaries.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ProjectWithFreelancers
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}
