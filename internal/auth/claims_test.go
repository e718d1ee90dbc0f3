package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCustomClaims(t *testing.T) {
	claims := CustomClaims{
		Scope:       "openid profile",
		Permissions: []string{string(GetDrinksDetail), string(PostDrinks)},
	}

	assert.True(t, claims.HasScope("openid"))
	assert.True(t, claims.HasScope("profile"))
	assert.False(t, claims.HasScope("email"))

	assert.True(t, claims.HasPermission(GetDrinksDetail))
	assert.True(t, claims.HasPermission(PostDrinks))
	assert.False(t, claims.HasPermission(DeleteDrinks))
}

func TestGetUserID(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name       string
		claims     *validator.ValidatedClaims
		expectedID string
		expectedOK bool
	}{
		{name: "no claims"},
		{name: "empty subject", claims: &validator.ValidatedClaims{}},
		{name: "with subject", claims: &validator.ValidatedClaims{RegisteredClaims: validator.RegisteredClaims{Subject: "auth0|barista"}}, expectedID: "auth0|barista", expectedOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if tt.claims != nil {
				setClaimsToContext(c, tt.claims)
			}

			userID, ok := GetUserID(c)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedID, userID)
		})
	}
}
