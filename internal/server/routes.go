package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rousage/coffeeshop/internal/appvalidator"
	"github.com/rousage/coffeeshop/internal/auth"
	"github.com/rousage/coffeeshop/internal/generator"
	appotel "github.com/rousage/coffeeshop/internal/otel"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/time/rate"

	_ "github.com/rousage/coffeeshop/docs"
)

//	@title			Coffee Shop API
//	@version		1.0
//	@description	Drinks menu of the coffee shop and the client environment it is served to

//	@license.name	MIT

//	@host		127.0.0.1:5000
//	@BasePath	/

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token
func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Validator = appvalidator.New()
	e.HTTPErrorHandler = s.errorHandler

	e.Use(otelecho.Middleware(appotel.ServiceName.Value.AsString()))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: generator.RequestID,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogLatency:       true,
		LogProtocol:      true,
		LogRemoteIP:      true,
		LogHost:          true,
		LogMethod:        true,
		LogURI:           true,
		LogRoutePath:     true,
		LogRequestID:     true,
		LogReferer:       true,
		LogUserAgent:     true,
		LogStatus:        true,
		LogError:         true,
		LogContentLength: true,
		LogResponseSize:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logEvent := s.logger.Info()
			if v.Error != nil {
				logEvent = s.logger.Error()
			}

			logEvent.
				Int64("latency", v.Latency.Milliseconds()).
				Str("protocol", v.Protocol).
				Str("remote_ip", v.RemoteIP).
				Str("host", v.Host).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("route", v.RoutePath).
				Str("request_id", v.RequestID).
				Str("referer", v.Referer).
				Str("user_agent", v.UserAgent).
				Int("status", v.Status).
				Str("content_length", v.ContentLength).
				Int64("response_size", v.ResponseSize)

			if v.Error != nil {
				logEvent.
					Err(v.Error).
					Msg("")
			} else {
				logEvent.Msg("request")
			}

			return nil
		},
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))

	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(s.cfg.Server.LimiterRPS),
			Burst:     s.cfg.Server.LimiterBurst,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.ErrTooManyRequests
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.cfg.Server.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.PersistAuthorization(true), echoSwagger.SyntaxHighlight(true)))

	e.GET("/health", s.healthHandler)
	e.GET("/environment", s.getEnvironmentHandler)

	authMw := s.authMw
	requirePermission := func(permission auth.Permission) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{authMw.Authenticate, authMw.RequireAuthentication, authMw.RequirePermission(permission)}
	}

	e.GET("/drinks", s.getDrinksHandler)
	e.GET("/drinks-detail", s.getDrinksDetailHandler, requirePermission(auth.GetDrinksDetail)...)
	e.POST("/drinks", s.createDrinkHandler, requirePermission(auth.PostDrinks)...)
	e.PATCH("/drinks/:id", s.updateDrinkHandler, requirePermission(auth.PatchDrinks)...)
	e.DELETE("/drinks/:id", s.deleteDrinkHandler, requirePermission(auth.DeleteDrinks)...)

	if s.cfg.App.Env.IsDevelopment() {
		e.POST("/seed-database", s.seedDatabaseHandler)
	}

	return e
}
