package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

// CommunicationHandler handles the three-level comment thread attached to
// working-hours sheets.
type CommunicationHandler struct {
	service ports.CommunicationService
}

func NewCommunicationHandler(service ports.CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{service: service}
}

type createCommentRequest struct {
	WorkingHoursID string `json:"workinghours_entry_id" validate:"required"`
	Comment        string `json:"comment"               validate:"required"`
}

type createReplyRequest struct {
	CommentID string `json:"comment_id" validate:"required"`
	Reply     string `json:"reply"      validate:"required"`
}

type createReplyCommentRequest struct {
	ReplyID string `json:"reply_id" validate:"required"`
	Comment string `json:"comment"  validate:"required"`
}

// CreateComment attaches a comment to a working-hours sheet.
//
// @Summary      Comment on a working hours sheet
// @Tags         communication
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /comments [post]
func (h *CommunicationHandler) CreateComment(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.CreateComment(c.Request().Context(), id.UserID, req.WorkingHoursID, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// CreateReply answers a comment.
//
// @Summary      Reply to a comment
// @Tags         communication
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReplyRequest  true  "Reply"
// @Success      201   {object}  domain.Reply
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /replies [post]
func (h *CommunicationHandler) CreateReply(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.service.CreateReply(c.Request().Context(), id.UserID, req.CommentID, req.Reply)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reply)
}

// CreateReplyComment adds the third level of the thread: a comment on a reply.
//
// @Summary      Comment on a reply
// @Tags         communication
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReplyCommentRequest  true  "Reply comment"
// @Success      201   {object}  domain.ReplyComment
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /reply-comments [post]
func (h *CommunicationHandler) CreateReplyComment(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReplyCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rc, err := h.service.ReplyToReply(c.Request().Context(), id.UserID, req.ReplyID, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rc)
}
