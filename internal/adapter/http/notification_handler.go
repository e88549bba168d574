package http

import (
	"net/http"
	"strconv"

	"goldloan-backend/internal/usecase/notify"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ svc *notify.Service }

func NewNotificationHandler(svc *notify.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) List(c echo.Context) error {
	out, err := h.svc.ListForRecipient(c.Request().Context(), actorFrom(c).UserID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	if err := h.svc.MarkRead(c.Request().Context(), id, actorFrom(c).UserID); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
