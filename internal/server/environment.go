package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rousage/coffeeshop/internal/environment"
)

// getEnvironmentHandler godoc
//
//	@Summary		Client environment
//	@Description	Settings the front-end bootstraps with: API server URL and Auth0 application parameters
//	@Tags			Environment
//	@Produce		json
//	@Success		200	{object}	environment.Document	"Environment"
//	@Router			/environment [get]
func (s *Server) getEnvironmentHandler(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set("X-Environment-Build", environment.BuildMode)

	return c.JSON(http.StatusOK, s.env)
}
