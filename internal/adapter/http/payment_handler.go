package http

import (
	"net/http"
	"time"

	paymentDomain "goldloan-backend/internal/domain/payment"
	"goldloan-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type addPaymentReq struct {
	LoanID string  `json:"loan_id"      validate:"required"`
	Amount float64 `json:"amount"       validate:"required,gt=0,dec2"`
	Type   string  `json:"type"         validate:"required,oneof=interest principal full_settlement"`
	Mode   string  `json:"payment_mode" validate:"omitempty,oneof=cash online bank_transfer"`
	// Accept canonical date `YYYY-MM-DD`; empty means today.
	PaymentDate string `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	Remarks     string `json:"remarks"`
}

func (h *PaymentHandler) AddPayment(c echo.Context) error {
	var req addPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var when time.Time
	if req.PaymentDate != "" {
		when, _ = time.Parse("2006-01-02", req.PaymentDate)
	}

	p, err := h.uc.AddPayment(c.Request().Context(), actorFrom(c), payment.AddPaymentInput{
		LoanID:      req.LoanID,
		Amount:      req.Amount,
		Type:        paymentDomain.Type(req.Type),
		Mode:        paymentDomain.Mode(req.Mode),
		PaymentDate: when,
		Remarks:     req.Remarks,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) ListByLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	list, err := h.uc.ListByLoan(c.Request().Context(), loanID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
