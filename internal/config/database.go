package config

import (
	"fmt"
	"net/url"
)

type Database struct {
	Username string `env:"USERNAME,notEmpty"`
	Password string `env:"PASSWORD,notEmpty"`
	Host     string `env:"HOST,notEmpty"`
	Port     int    `env:"PORT" envDefault:"5432"`
	Database string `env:"DATABASE,notEmpty"`
	Schema   string `env:"SCHEMA" envDefault:"public"`
}

// ConnString returns a postgres:// connection string for the database.
func (d Database) ConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.Username, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Database,
		RawQuery: url.Values{"sslmode": {"disable"}, "search_path": {d.Schema}}.Encode(),
	}

	return u.String()
}
