package config

type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}

type App struct {
	Env      Mode   `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}
