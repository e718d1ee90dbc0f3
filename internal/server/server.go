package server

import (
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rousage/coffeeshop/internal/auth"
	"github.com/rousage/coffeeshop/internal/cache"
	"github.com/rousage/coffeeshop/internal/config"
	"github.com/rousage/coffeeshop/internal/database"
	"github.com/rousage/coffeeshop/internal/environment"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

var (
	tracer = otel.Tracer("github.com/rousage/coffeeshop/internal/server")
	meter  = otel.Meter("github.com/rousage/coffeeshop/internal/server")
)

type Server struct {
	cfg         *config.Config
	logger      zerolog.Logger
	db          *pgxpool.Pool
	cache       *cache.Cache
	env         environment.Environment
	authMw      *auth.AuthMiddleware
	drinkWrites metric.Int64Counter
}

func New(cfg *config.Config) *http.Server {
	zerolog.TimestampFieldName = "timestamp"
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(cfg.App.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	env := environment.Current()
	if err := env.Validate(); err != nil {
		logger.Warn().Err(err).Msg("client environment is not usable by the front-end")
	}

	srv := newServer(
		cfg,
		logger,
		database.Connect(logger, cfg.Database),
		cache.New(cache.Connect(logger, cfg.Cache)),
	)

	// Declare Server config
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	srv.logger.Info().
		Str("addr", server.Addr).
		Str("mode", string(cfg.App.Env)).
		Str("environment", environment.BuildMode).
		Msg("server configured")

	return server
}

func newServer(cfg *config.Config, logger zerolog.Logger, db *pgxpool.Pool, c *cache.Cache, authOpts ...auth.Option) *Server {
	drinkWrites, err := meter.Int64Counter(
		"coffeeshop.drink.writes",
		metric.WithDescription("Number of drinks created, updated or deleted"),
	)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create drink writes counter")
		drinkWrites = noop.Int64Counter{}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		cache:       c,
		env:         environment.Current(),
		authMw:      auth.NewAuthMiddleware(cfg.Auth, logger, authOpts...),
		drinkWrites: drinkWrites,
	}
}
