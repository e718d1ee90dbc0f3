package config

type Cache struct {
	Host string `env:"HOST,notEmpty"`
	Port int    `env:"PORT" envDefault:"6379"`
}
