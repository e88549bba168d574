package http

import (
	"net/http"
	"strings"

	loanDomain "goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/usecase/origination"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *origination.Usecase }

func NewLoanHandler(uc *origination.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type loanItemReq struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	NetWeight   float64  `json:"net_weight"  validate:"required,gt=0"`
	Purity      string   `json:"purity"      validate:"required,purity"`
	Photos      []string `json:"photos"`
}

type createLoanReq struct {
	CustomerID        string        `json:"customer_id"         validate:"required,hex32"`
	SchemeID          uint64        `json:"scheme_id"           validate:"required"`
	Items             []loanItemReq `json:"items"               validate:"required,min=1,dive"`
	LoanAmount        float64       `json:"loan_amount"         validate:"required,gt=0,dec2"`
	PreInterestAmount float64       `json:"pre_interest_amount" validate:"gte=0,dec2"`
	UseOverride       bool          `json:"use_override"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	items := make([]origination.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, origination.ItemInput{
			Name:        it.Name,
			Description: it.Description,
			NetWeight:   it.NetWeight,
			Purity:      it.Purity,
			Photos:      it.Photos,
		})
	}

	l, err := h.uc.CreateLoan(c.Request().Context(), actorFrom(c), origination.CreateLoanInput{
		CustomerID:          req.CustomerID,
		SchemeID:            req.SchemeID,
		Items:               items,
		RequestedLoanAmount: req.LoanAmount,
		PreInterestAmount:   req.PreInterestAmount,
		UseOverride:         req.UseOverride,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	detail, err := h.uc.GetLoan(c.Request().Context(), loanID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *LoanHandler) DashboardStats(c echo.Context) error {
	stats, err := h.uc.DashboardStats(c.Request().Context(), actorFrom(c), c.QueryParam("branch_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	var statuses []loanDomain.Status
	if raw := c.QueryParam("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, loanDomain.Status(strings.TrimSpace(s)))
		}
	}
	loans, err := h.uc.ListLoans(c.Request().Context(), actorFrom(c), c.QueryParam("branch_id"), statuses)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}
