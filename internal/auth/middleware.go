package auth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
	"github.com/rousage/coffeeshop/internal/config"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// KeyFunc returns the key used to verify token signatures.
type KeyFunc func(ctx context.Context) (interface{}, error)

type Option func(*AuthMiddleware)

// WithKeyFunc replaces the JWKS lookup against the tenant.
func WithKeyFunc(keyFunc KeyFunc) Option {
	return func(m *AuthMiddleware) {
		m.keyFunc = keyFunc
	}
}

type AuthMiddleware struct {
	cfg       config.Auth
	logger    zerolog.Logger
	keyFunc   KeyFunc
	validator *validator.Validator
}

func NewAuthMiddleware(cfg config.Auth, logger zerolog.Logger, opts ...Option) *AuthMiddleware {
	m := &AuthMiddleware{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(m)
	}

	issuerURL, err := url.Parse(fmt.Sprintf("https://%s/", cfg.Auth0Domain))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse the issuer url")
	}

	if m.keyFunc == nil {
		provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
		m.keyFunc = provider.KeyFunc
	}

	m.validator, err = validator.New(
		m.keyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{cfg.Auth0Audience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &CustomClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up the jwt validator")
	}

	return m
}

// Authenticate is a middleware that will check the validity of the JWT if it is present
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "auth.Authenticate")
		defer span.End()

		token, err := jwtmiddleware.AuthHeaderTokenExtractor(c.Request())
		if err != nil {
			span.SetStatus(codes.Error, "malformed authorization header")
			span.RecordError(err)
			return echo.ErrUnauthorized.WithInternal(err)
		}
		// If token is not present, just continue to the next handler.
		if token == "" {
			return next(c)
		}

		// Otherwise, validate the token.
		tokenInfo, err := m.validator.ValidateToken(ctx, token)
		if err != nil {
			span.SetStatus(codes.Error, "invalid token")
			span.RecordError(err)
			m.logger.Debug().Err(err).Msg("rejected token")
			return echo.ErrUnauthorized.WithInternal(err)
		}

		claims, ok := tokenInfo.(*validator.ValidatedClaims)
		if !ok {
			return echo.ErrUnauthorized
		}
		span.SetAttributes(attribute.String("userID", claims.RegisteredClaims.Subject))
		setClaimsToContext(c, claims)

		return next(c)
	}
}

func (m *AuthMiddleware) RequireAuthentication(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok || userID == "" {
			return echo.ErrUnauthorized
		}

		return next(c)
	}
}

// RequirePermission rejects requests whose token lacks the permission.
// It must run after RequireAuthentication.
func (m *AuthMiddleware) RequirePermission(permission Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := getCustomClaims(c)
			if claims == nil || !claims.HasPermission(permission) {
				m.logger.Debug().Str("permission", string(permission)).Msg("permission not found in token")
				return echo.ErrForbidden
			}

			return next(c)
		}
	}
}
