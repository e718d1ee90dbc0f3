package config

import "fmt"

type Server struct {
	Host         string   `env:"HOST" envDefault:"127.0.0.1"`
	Port         int      `env:"PORT" envDefault:"5000"`
	AllowOrigins []string `env:"ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:8100"`
	LimiterRPS   float64  `env:"LIMITER_RPS" envDefault:"20"`
	LimiterBurst int      `env:"LIMITER_BURST" envDefault:"40"`
}

func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
