package http

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"lendwise/internal/domain/loan"
	"lendwise/internal/domain/user"
)

// domainError maps a usecase error to an HTTP response: 404 for absent
// entities, 400 for bad input, 409 for operations invalid in the current
// state, 503 when storage is unreachable, 500 otherwise.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound), errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrValidation), errors.Is(err, user.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, loan.ErrNotFundable),
		errors.Is(err, loan.ErrExceedsRemaining),
		errors.Is(err, loan.ErrNotEligible):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn),
		isNetError(err):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// isNetError reports whether the chain contains a network-level failure,
// e.g. a refused or dropped MySQL connection surfacing as *net.OpError.
func isNetError(err error) bool {
	var ne net.Error
	return errors.As(err, &ne)
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
