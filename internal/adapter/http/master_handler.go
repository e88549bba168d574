package http

import (
	"net/http"
	"strconv"
	"time"

	"goldloan-backend/internal/usecase/master"

	"github.com/labstack/echo/v4"
)

type MasterHandler struct{ uc *master.Usecase }

func NewMasterHandler(uc *master.Usecase) *MasterHandler { return &MasterHandler{uc: uc} }

type goldRateReq struct {
	// Accept canonical date `YYYY-MM-DD`; empty means today.
	Date           string  `json:"date"              validate:"omitempty,datetime=2006-01-02"`
	RatePerGram22K float64 `json:"rate_per_gram_22k" validate:"required,gt=0,dec2"`
	RatePerGram20K float64 `json:"rate_per_gram_20k" validate:"required,gt=0,dec2"`
	RatePerGram18K float64 `json:"rate_per_gram_18k" validate:"required,gt=0,dec2"`
}

func (h *MasterHandler) AddGoldRate(c echo.Context) error {
	var req goldRateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var day time.Time
	if req.Date != "" {
		day, _ = time.Parse("2006-01-02", req.Date)
	}

	r, err := h.uc.AddGoldRate(c.Request().Context(), master.GoldRateInput{
		Date:           day,
		RatePerGram22K: req.RatePerGram22K,
		RatePerGram20K: req.RatePerGram20K,
		RatePerGram18K: req.RatePerGram18K,
		UpdatedBy:      actorFrom(c).UserID,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *MasterHandler) LatestGoldRate(c echo.Context) error {
	r, err := h.uc.LatestGoldRate(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *MasterHandler) DeleteGoldRate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	if err := h.uc.DeleteGoldRate(c.Request().Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type schemeReq struct {
	SchemeName        string  `json:"scheme_name"         validate:"required"`
	InterestRate      float64 `json:"interest_rate"       validate:"required,gt=0,dec2"`
	TenureMonths      int     `json:"tenure_months"       validate:"required,gt=0"`
	MaxLoanPercentage float64 `json:"max_loan_percentage" validate:"required,gt=0,lte=100,dec2"`
	PreInterestMonths int     `json:"pre_interest_months" validate:"gte=0"`
	PenalInterestRate float64 `json:"penal_interest_rate" validate:"gte=0,dec2"`
	OverdueFine       float64 `json:"overdue_fine"        validate:"gte=0,dec2"`
	Description       string  `json:"description"`
}

func (h *MasterHandler) AddScheme(c echo.Context) error {
	var req schemeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	s, err := h.uc.AddScheme(c.Request().Context(), master.SchemeInput(req))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *MasterHandler) GetScheme(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	s, err := h.uc.GetScheme(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *MasterHandler) ListSchemes(c echo.Context) error {
	out, err := h.uc.ListSchemes(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MasterHandler) UpdateScheme(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	var req schemeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	s, err := h.uc.UpdateScheme(c.Request().Context(), id, master.SchemeInput(req))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *MasterHandler) DeactivateScheme(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	if err := h.uc.DeactivateScheme(c.Request().Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
