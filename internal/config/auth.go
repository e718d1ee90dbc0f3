package config

type Auth struct {
	Auth0Domain   string `env:"DOMAIN"`
	Auth0Audience string `env:"AUDIENCE"`
	// Machine-to-machine credentials for the management API, optional
	Auth0ClientID     string `env:"CLIENT_ID"`
	Auth0ClientSecret string `env:"CLIENT_SECRET"`
}

func (a Auth) HasManagementCredentials() bool {
	return a.Auth0ClientID != "" && a.Auth0ClientSecret != ""
}
