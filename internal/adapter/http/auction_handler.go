package http

import (
	"net/http"

	"goldloan-backend/internal/usecase/auction"

	"github.com/labstack/echo/v4"
)

type AuctionHandler struct{ uc *auction.Usecase }

func NewAuctionHandler(uc *auction.Usecase) *AuctionHandler { return &AuctionHandler{uc: uc} }

type recordSaleReq struct {
	SaleAmount    float64 `json:"sale_amount"    validate:"required,gt=0,dec2"`
	BidderName    string  `json:"bidder_name"    validate:"required"`
	BidderContact string  `json:"bidder_contact"`
	Remarks       string  `json:"remarks"`
}

func (h *AuctionHandler) RecordSale(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req recordSaleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	l, err := h.uc.RecordSale(c.Request().Context(), actorFrom(c), loanID, auction.RecordSaleInput{
		SaleAmount:    req.SaleAmount,
		BidderName:    req.BidderName,
		BidderContact: req.BidderContact,
		Remarks:       req.Remarks,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *AuctionHandler) EligibleLoans(c echo.Context) error {
	loans, err := h.uc.EligibleLoans(c.Request().Context(), actorFrom(c), c.QueryParam("branch_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}
