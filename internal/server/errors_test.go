package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rousage/coffeeshop/internal/appvalidator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	s := &Server{logger: zerolog.New(io.Discard)}
	e := echo.New()

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{name: "bad request", err: echo.NewHTTPError(http.StatusBadRequest, "syntax error"), expectedStatus: http.StatusBadRequest, expectedMessage: "bad request"},
		{name: "unauthorized", err: echo.ErrUnauthorized, expectedStatus: http.StatusUnauthorized, expectedMessage: "Unauthorized"},
		{name: "forbidden", err: echo.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMessage: "unauthorized"},
		{name: "not found", err: echo.ErrNotFound, expectedStatus: http.StatusNotFound, expectedMessage: "resource not found"},
		{name: "unprocessable", err: echo.NewHTTPError(http.StatusUnprocessableEntity, "drink title already exists"), expectedStatus: http.StatusUnprocessableEntity, expectedMessage: "unprocessable"},
		{name: "too many requests", err: echo.ErrTooManyRequests, expectedStatus: http.StatusTooManyRequests, expectedMessage: "too many requests"},
		{name: "plain error", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/drinks", nil)
			res := httptest.NewRecorder()
			c := e.NewContext(req, res)

			s.errorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, res.Code)

			var actual HTTPError
			require.NoError(t, json.NewDecoder(res.Body).Decode(&actual), "error decoding response body")
			assert.Equal(t, HTTPError{Success: false, Error: tt.expectedStatus, Message: tt.expectedMessage}, actual)
		})
	}
}

func TestErrorHandler_Head(t *testing.T) {
	s := &Server{logger: zerolog.New(io.Discard)}
	e := echo.New()

	req := httptest.NewRequest(http.MethodHead, "/drinks", nil)
	res := httptest.NewRecorder()

	s.errorHandler(echo.ErrNotFound, e.NewContext(req, res))

	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Empty(t, res.Body.String())
}

func TestFailedValidationError(t *testing.T) {
	s := &Server{logger: zerolog.New(io.Discard)}
	e := echo.New()
	e.Validator = appvalidator.New()

	req := httptest.NewRequest(http.MethodPost, "/drinks", nil)
	res := httptest.NewRecorder()
	c := e.NewContext(req, res)

	err := c.Validate(&CreateDrinkDTO{Title: "latte"})
	require.Error(t, err)

	require.NoError(t, s.failedValidationError(c, err))
	assert.Equal(t, http.StatusBadRequest, res.Code)

	var actual HTTPValidationError
	require.NoError(t, json.NewDecoder(res.Body).Decode(&actual), "error decoding response body")
	assert.Equal(t, "bad request", actual.Message)
	assert.Equal(t, appvalidator.ValidationError{"recipe": "recipe is required"}, actual.Errors)
}
