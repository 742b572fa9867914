package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/time-tracking-api/internal/api/metrics"
	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

// WorkingHoursHandler handles hour logging and the approval workflow.
type WorkingHoursHandler struct {
	service ports.WorkingHoursService
}

func NewWorkingHoursHandler(service ports.WorkingHoursService) *WorkingHoursHandler {
	return &WorkingHoursHandler{service: service}
}

type workEntryRequest struct {
	Date        string  `json:"date"        validate:"required"`
	Hours       float64 `json:"hours"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

type logHoursRequest struct {
	ProjectID   string             `json:"project_id"   validate:"required"`
	WorkEntries []workEntryRequest `json:"work_entries" validate:"required,min=1,dive"`
}

type approvalRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// Log submits a sheet of work entries. The caller's identity, not the
// payload, decides which freelancer the hours belong to.
//
// @Summary      Log working hours
// @Tags         working-hours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logHoursRequest  true  "Work entries for a project"
// @Success      201   {object}  domain.WorkingHours
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /working-hours [post]
func (h *WorkingHoursHandler) Log(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req logHoursRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entries := make([]domain.WorkEntry, 0, len(req.WorkEntries))
	for _, e := range req.WorkEntries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		}
		entries = append(entries, domain.WorkEntry{
			Date:        date,
			Hours:       e.Hours,
			Description: e.Description,
		})
	}

	sheet, err := h.service.Log(c.Request().Context(), ports.LogHoursInput{
		FreelancerID: id.UserID,
		ProjectID:    req.ProjectID,
		Entries:      entries,
	})
	if err != nil {
		return err
	}

	metrics.HoursLoggedTotal.Add(sheet.TotalHours)
	return c.JSON(http.StatusCreated, sheet)
}

// ListOwn returns the caller's own sheets.
//
// @Summary      List own working hours
// @Tags         working-hours
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.WorkingHours
// @Router       /working-hours [get]
func (h *WorkingHoursHandler) ListOwn(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	sheets, err := h.service.ListOwn(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sheets)
}

// ApprovalRequests returns all sheets still awaiting a decision.
//
// @Summary      List pending approval requests
// @Tags         working-hours
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.WorkingHours
// @Router       /working-hours/approval-requests [get]
func (h *WorkingHoursHandler) ApprovalRequests(c echo.Context) error {
	sheets, err := h.service.ApprovalRequests(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sheets)
}

// Approve records the reviewer's decision on a sheet.
//
// @Summary      Approve or reject a sheet
// @Tags         working-hours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Working hours id"
// @Param        body  body      approvalRequest  true  "Decision"
// @Success      200   {object}  domain.WorkingHours
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /working-hours/{id}/approval [put]
func (h *WorkingHoursHandler) Approve(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req approvalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sheet, err := h.service.ApproveOrReject(c.Request().Context(), c.Param("id"), domain.ApprovalStatus(req.Status), id.UserID)
	if err != nil {
		return err
	}

	metrics.ApprovalDecisionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, sheet)
}
