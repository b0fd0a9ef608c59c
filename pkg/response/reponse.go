package response

import (
	"errors"
	"net/http"

	apperrors "collabwish/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Envelope is the legacy wire format the React client consumes. Business
// failures ride on HTTP 200 with a human-readable message; Code is the
// structured addition so callers no longer have to string-match messages.
type Envelope struct {
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

func OK(c echo.Context, message string, payload interface{}) error {
	return c.JSON(http.StatusOK, Envelope{
		Message: message,
		Payload: payload,
	})
}

func Created(c echo.Context, message string, payload interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{
		Message: message,
		Payload: payload,
	})
}

// DataInsufficient is the legacy response for any missing required field.
func DataInsufficient(c echo.Context) error {
	return Error(c, apperrors.ValidationFailed("data insufficient"))
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return DataInsufficient(c)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperrors.CodeInternal {
			return c.JSON(http.StatusInternalServerError, Envelope{
				Message: appErr.Message,
				Code:    appErr.Code,
			})
		}
		// NotFound, Conflict, NoOp, ValidationFailed: HTTP 200 for
		// compatibility with the original API.
		return c.JSON(http.StatusOK, Envelope{
			Message: appErr.Message,
			Code:    appErr.Code,
		})
	}

	return c.JSON(http.StatusInternalServerError, Envelope{
		Message: "Internal server error",
		Code:    apperrors.CodeInternal,
	})
}
