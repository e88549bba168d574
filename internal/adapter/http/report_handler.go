package http

import (
	"net/http"
	"strconv"
	"time"

	"goldloan-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	uc         *report.Usecase
	windowDays int
}

func NewReportHandler(uc *report.Usecase, demandWindowDays int) *ReportHandler {
	return &ReportHandler{uc: uc, windowDays: demandWindowDays}
}

// parseDateParam accepts `YYYY-MM-DD`; empty means today.
func parseDateParam(c echo.Context, name string) (time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Now(), true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (h *ReportHandler) DayBook(c echo.Context) error {
	date, ok := parseDateParam(c, "date")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
	}
	book, err := h.uc.DayBook(c.Request().Context(), actorFrom(c), c.QueryParam("branch_id"), date)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *ReportHandler) FinancialStats(c echo.Context) error {
	stats, err := h.uc.FinancialStats(c.Request().Context(), actorFrom(c), c.QueryParam("branch_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) DemandList(c echo.Context) error {
	windowDays := h.windowDays
	if raw := c.QueryParam("window_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "window_days must be a non-negative integer"})
		}
		windowDays = n
	}
	out, err := h.uc.DemandList(c.Request().Context(), actorFrom(c), c.QueryParam("branch_id"), windowDays)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) BusinessReport(c echo.Context) error {
	out, err := h.uc.BusinessReport(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
