package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rousage/coffeeshop/internal/appvalidator"
)

// HTTPError is the envelope of every error response
type HTTPError struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

// HTTPValidationError is returned when the request body fails validation
type HTTPValidationError struct {
	HTTPError
	Errors appvalidator.ValidationError `json:"errors"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "unauthorized",
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

func statusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}

	return strings.ToLower(http.StatusText(code))
}

func newHTTPError(code int) HTTPError {
	return HTTPError{Success: false, Error: code, Message: statusMessage(code)}
}

// errorHandler renders every error returned by a handler or middleware
// in the shared envelope.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = echo.ErrInternalServerError.WithInternal(err)
	}

	logEvent := s.logger.Debug()
	if he.Code >= http.StatusInternalServerError {
		logEvent = s.logger.Error()
	}
	logEvent.Err(err).Int("status", he.Code).Str("path", c.Path()).Msg("request failed")

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, newHTTPError(he.Code))
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to write error response")
	}
}

func (s *Server) failedValidationError(c echo.Context, err error) error {
	if appValidator, ok := c.Echo().Validator.(*appvalidator.AppValidator); ok {
		return c.JSON(http.StatusBadRequest, HTTPValidationError{
			HTTPError: newHTTPError(http.StatusBadRequest),
			Errors:    appValidator.Map(err),
		})
	}

	return echo.ErrBadRequest
}
