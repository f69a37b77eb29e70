package controller

import (
	"errors"
	"net/http"

	"github.com/gatherly/backend/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the body of every failure: a single detail field
// describing the cause.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler maps the dto error taxonomy onto HTTP statuses. Internal
// failures are logged and hidden behind a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpError *echo.HTTPError
	if errors.As(err, &httpError) {
		detail := http.StatusText(httpError.Code)
		if message, ok := httpError.Message.(string); ok {
			detail = message
		}
		_ = c.JSON(httpError.Code, ErrorResponse{Detail: detail})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dto.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, dto.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, dto.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, dto.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, dto.ErrNotFound):
		status = http.StatusNotFound
	}

	detail := err.Error()
	if status == http.StatusInternalServerError {
		logrus.Errorf("Internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		detail = "internal server error"
	}

	_ = c.JSON(status, ErrorResponse{Detail: detail})
}
