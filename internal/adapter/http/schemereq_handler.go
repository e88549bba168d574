package http

import (
	"net/http"

	schemereqDomain "goldloan-backend/internal/domain/schemereq"
	"goldloan-backend/internal/usecase/schemereq"

	"github.com/labstack/echo/v4"
)

type SchemeRequestHandler struct{ uc *schemereq.Usecase }

func NewSchemeRequestHandler(uc *schemereq.Usecase) *SchemeRequestHandler {
	return &SchemeRequestHandler{uc: uc}
}

type createSchemeRequestReq struct {
	CustomerRef          uint64   `json:"customer_ref"           validate:"required"`
	SchemeRef            uint64   `json:"scheme_ref"             validate:"required"`
	ProposedInterestRate float64  `json:"proposed_interest_rate" validate:"required,gt=0,dec2"`
	ProposedTenureMonths int      `json:"proposed_tenure_months" validate:"required,gt=0"`
	ProposedMaxLoanPct   *float64 `json:"proposed_max_loan_percentage" validate:"omitempty,gt=0,lte=100,dec2"`
	Reason               string   `json:"reason"                 validate:"required"`
}

func (h *SchemeRequestHandler) Create(c echo.Context) error {
	var req createSchemeRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	r, err := h.uc.Create(c.Request().Context(), actorFrom(c), schemereq.CreateInput{
		CustomerRef:          req.CustomerRef,
		SchemeRef:            req.SchemeRef,
		ProposedInterestRate: req.ProposedInterestRate,
		ProposedTenureMonths: req.ProposedTenureMonths,
		ProposedMaxLoanPct:   req.ProposedMaxLoanPct,
		Reason:               req.Reason,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

type reviewSchemeRequestReq struct {
	Action       string `json:"action" validate:"required,oneof=approve reject"`
	AdminComment string `json:"admin_comment"`
}

func (h *SchemeRequestHandler) Review(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req reviewSchemeRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	r, err := h.uc.Review(c.Request().Context(), actorFrom(c), requestID, schemereq.ReviewInput{
		Approve:      req.Action == "approve",
		AdminComment: req.AdminComment,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *SchemeRequestHandler) Get(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	r, err := h.uc.Get(c.Request().Context(), requestID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *SchemeRequestHandler) List(c echo.Context) error {
	status := schemereqDomain.Status(c.QueryParam("status"))
	out, err := h.uc.List(c.Request().Context(), actorFrom(c), status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
