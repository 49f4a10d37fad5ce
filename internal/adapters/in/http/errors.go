package http

import (
	"errors"
	"net/http"

	"procserve/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Stable error code tokens of the HTTP surface.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeOutOfTurn        = "OUT_OF_TURN"
	CodeOrderCancelled   = "ORDER_CANCELLED"
	CodeInternal         = "INTERNAL"
)

// respondError maps domain errors onto HTTP responses. Out-of-turn and
// cancelled-order failures share the 409 status with plain conflicts but
// carry their own code token so clients can tell them apart.
func respondError(ctx echo.Context, err error) error {
	status, code := classifyError(err)
	return ctx.JSON(status, Error{Code: code, Message: err.Error()})
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden, CodeUnauthorized
	case errors.Is(err, errs.ErrOutOfTurn):
		return http.StatusConflict, CodeOutOfTurn
	case errors.Is(err, errs.ErrOrderCancelled):
		return http.StatusConflict, CodeOrderCancelled
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, CodeValidationFailed
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: CodeValidationFailed, Message: message})
}
