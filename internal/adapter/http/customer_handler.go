package http

import (
	"net/http"

	"goldloan-backend/internal/usecase/customer"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct{ uc *customer.Usecase }

func NewCustomerHandler(uc *customer.Usecase) *CustomerHandler { return &CustomerHandler{uc: uc} }

type customerReq struct {
	Name         string `json:"name"    validate:"required"`
	Email        string `json:"email"   validate:"omitempty,email"`
	Phone        string `json:"phone"   validate:"required"`
	Address      string `json:"address" validate:"required"`
	AadharNumber string `json:"aadhar_number"`
	PanNumber    string `json:"pan_number"`
	Nominee      string `json:"nominee"`
	Photo        string `json:"photo"`
	AadharCard   string `json:"aadhar_card"`
	PanCard      string `json:"pan_card"`
}

func (h *CustomerHandler) bindInput(c echo.Context) (customer.CreateInput, bool, error) {
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return customer.CreateInput{}, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return customer.CreateInput{}, false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return customer.CreateInput(req), true, nil
}

func (h *CustomerHandler) Create(c echo.Context) error {
	in, ok, resp := h.bindInput(c)
	if !ok {
		return resp
	}
	out, err := h.uc.Create(c.Request().Context(), actorFrom(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	in, ok, resp := h.bindInput(c)
	if !ok {
		return resp
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("customer_id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("customer_id")); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CustomerHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), actorFrom(c), c.QueryParam("branch_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
