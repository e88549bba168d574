package http

import (
	"net/http"
	"strings"

	"goldloan-backend/internal/adapter/middleware"
	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func actorFrom(c echo.Context) actor.Actor {
	a, _ := c.Get(middleware.ActorContextKey).(actor.Actor)
	return a
}

// domainError maps the tagged failure kinds onto HTTP statuses. Untagged
// errors are logged in full and reported generically.
func domainError(c echo.Context, err error) error {
	switch {
	case apperr.IsNotFound(err):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperr.IsValidation(err):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.IsConflict(err):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
