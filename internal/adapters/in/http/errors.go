package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto HTTP status codes. Validation failures
// are the caller's fault, missing aggregates are 404, and every refused
// state transition is a conflict. An integrity fault means the ledger
// itself is inconsistent and surfaces as a server error.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrStaleState),
		errors.Is(err, driver.ErrDriverUnavailable),
		errors.Is(err, cash.ErrOrderNotEligible),
		errors.Is(err, cash.ErrDoubleCollection):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrIntegrityFault):
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// writeBadRequest reports a malformed request body or parameter.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
