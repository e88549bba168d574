package http

import (
	"net/http"

	"goldloan-backend/internal/usecase/branch"

	"github.com/labstack/echo/v4"
)

type BranchHandler struct{ uc *branch.Usecase }

func NewBranchHandler(uc *branch.Usecase) *BranchHandler { return &BranchHandler{uc: uc} }

type branchReq struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address" validate:"required"`
}

func (h *BranchHandler) Create(c echo.Context) error {
	var req branchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Create(c.Request().Context(), branch.Input(req))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BranchHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("branch_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BranchHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BranchHandler) Update(c echo.Context) error {
	var req branchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("branch_id"), branch.Input(req))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BranchHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("branch_id")); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
