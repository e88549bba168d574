package http

import (
	"net/http"
	"time"

	"goldloan-backend/internal/usecase/voucher"

	"github.com/labstack/echo/v4"
)

type VoucherHandler struct{ uc *voucher.Usecase }

func NewVoucherHandler(uc *voucher.Usecase) *VoucherHandler { return &VoucherHandler{uc: uc} }

type voucherReq struct {
	Type        string  `json:"type"        validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Amount      float64 `json:"amount"      validate:"required,gt=0,dec2"`
	Description string  `json:"description"`
	// Accept canonical date `YYYY-MM-DD`; empty means today.
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *VoucherHandler) bindInput(c echo.Context) (voucher.Input, bool, error) {
	var req voucherReq
	if err := c.Bind(&req); err != nil {
		return voucher.Input{}, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return voucher.Input{}, false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	var day time.Time
	if req.Date != "" {
		day, _ = time.Parse("2006-01-02", req.Date)
	}
	return voucher.Input{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        day,
	}, true, nil
}

func (h *VoucherHandler) Create(c echo.Context) error {
	in, ok, resp := h.bindInput(c)
	if !ok {
		return resp
	}
	v, err := h.uc.Create(c.Request().Context(), actorFrom(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *VoucherHandler) Get(c echo.Context) error {
	v, err := h.uc.Get(c.Request().Context(), c.Param("voucher_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VoucherHandler) Update(c echo.Context) error {
	in, ok, resp := h.bindInput(c)
	if !ok {
		return resp
	}
	v, err := h.uc.Update(c.Request().Context(), c.Param("voucher_id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VoucherHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("voucher_id")); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VoucherHandler) List(c echo.Context) error {
	date, ok := parseDateParam(c, "date")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
	}
	if c.QueryParam("date") == "" {
		date = time.Time{} // no window: all vouchers in scope
	}
	out, err := h.uc.List(c.Request().Context(), actorFrom(c), c.QueryParam("branch_id"), date)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
